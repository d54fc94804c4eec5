package models

// PublicationImage represents an image URL attached to a publication
type PublicationImage struct {
	ID            int    `gorm:"primaryKey;autoIncrement" json:"id"`
	URL           string `gorm:"column:url;type:text;not null" json:"url"`
	PublicationID int    `gorm:"not null;index:idx_publication_images_publication_id" json:"publication_id"`
}

// TableName specifies the table name for PublicationImage
func (PublicationImage) TableName() string {
	return "PublicationImages"
}
