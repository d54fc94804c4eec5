package database

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteGormDB opens a SQLite database file with foreign keys enabled.
// ":memory:" opens a private in-memory database.
func NewSQLiteGormDB(path string, logLevel logger.LogLevel) (*GormDB, error) {
	inMemory := path == "" || path == ":memory:"
	dsn := path
	if inMemory {
		dsn = "file::memory:"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logLevel))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; an in-memory database also lives on one connection
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return &GormDB{db: db}, nil
}
