package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"real-estate-publications/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// GormDB stores publications through GORM. It implements publication.Store.
type GormDB struct {
	db *gorm.DB
}

// NewGormDB opens a MySQL connection
func NewGormDB(host, port, user, password, dbname string, logLevel logger.LogLevel) (*GormDB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	db, err := gorm.Open(mysql.Open(dsn), gormConfig(logLevel))
	if err != nil {
		return nil, err
	}

	// Test connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}

func gormConfig(logLevel logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}
}

func (gdb *GormDB) Close() error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection is alive
func (gdb *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := gdb.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// InitSchema creates tables using GORM AutoMigrate
func (gdb *GormDB) InitSchema() error {
	return gdb.db.AutoMigrate(
		&models.Publication{},
		&models.PublicationImage{},
	)
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// ListPublications retrieves all publications with images, newest first
func (gdb *GormDB) ListPublications(ctx context.Context) ([]models.Publication, error) {
	var publications []models.Publication
	err := gdb.db.WithContext(ctx).
		Preload("Images", orderImages).
		Order("id DESC").
		Find(&publications).Error
	return publications, err
}

// GetPublication retrieves a publication by ID
func (gdb *GormDB) GetPublication(ctx context.Context, id int) (models.Publication, bool, error) {
	var p models.Publication
	err := gdb.db.WithContext(ctx).
		Preload("Images", orderImages).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Publication{}, false, nil
	}
	if err != nil {
		return models.Publication{}, false, err
	}
	return p, true, nil
}

// CreatePublication inserts a publication and its images in a transaction
func (gdb *GormDB) CreatePublication(ctx context.Context, p *models.Publication) error {
	images := p.Images
	return gdb.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		saved, err := savePublicationImages(tx, p.ID, images)
		if err != nil {
			return err
		}
		p.Images = saved
		return nil
	})
}

// UpdatePublication overwrites the scalar columns and replaces the image set.
// Returns false when the publication no longer exists.
func (gdb *GormDB) UpdatePublication(ctx context.Context, p *models.Publication) (bool, error) {
	found := true
	err := gdb.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// map form so zero values are written too
		res := tx.Model(&models.Publication{}).
			Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"property_type":  p.PropertyType,
				"operation_type": p.OperationType,
				"description":    p.Description,
				"room_count":     p.RoomCount,
				"area_m2":        p.AreaM2,
				"age_years":      p.AgeYears,
				"latitude":       p.Latitude,
				"longitude":      p.Longitude,
			})
		if res.Error != nil {
			return res.Error
		}

		// MySQL reports 0 affected rows when nothing changed, so check existence explicitly
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Publication{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				found = false
				return nil
			}
		}

		if err := tx.Where("publication_id = ?", p.ID).Delete(&models.PublicationImage{}).Error; err != nil {
			return err
		}
		saved, err := savePublicationImages(tx, p.ID, p.Images)
		if err != nil {
			return err
		}
		p.Images = saved
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// savePublicationImages inserts fresh image rows for a publication within a transaction
func savePublicationImages(tx *gorm.DB, publicationID int, images []models.PublicationImage) ([]models.PublicationImage, error) {
	saved := make([]models.PublicationImage, 0, len(images))
	for _, img := range images {
		saved = append(saved, models.PublicationImage{URL: img.URL, PublicationID: publicationID})
	}
	if len(saved) == 0 {
		return saved, nil
	}
	if err := tx.Create(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

// DeletePublication removes a publication and its images.
// Returns false when nothing was deleted.
func (gdb *GormDB) DeletePublication(ctx context.Context, id int) (bool, error) {
	var deleted int64
	err := gdb.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", id).Delete(&models.PublicationImage{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Publication{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// DeletePublications deletes the existing subset of ids with their images
// in one transaction and returns that subset
func (gdb *GormDB) DeletePublications(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return []int{}, nil
	}

	var existing []int
	err := gdb.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Publication{}).
			Where("id IN ?", ids).
			Order("id ASC").
			Pluck("id", &existing).Error; err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}

		if err := tx.Where("publication_id IN ?", existing).Delete(&models.PublicationImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", existing).Delete(&models.Publication{}).Error
	})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing = []int{}
	}
	return existing, nil
}

// Counts returns the number of stored publications and images
func (gdb *GormDB) Counts(ctx context.Context) (publications int64, images int64, err error) {
	db := gdb.db.WithContext(ctx)
	if err = db.Model(&models.Publication{}).Count(&publications).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Model(&models.PublicationImage{}).Count(&images).Error; err != nil {
		return 0, 0, err
	}
	return publications, images, nil
}
