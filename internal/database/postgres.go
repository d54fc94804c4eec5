package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is a raw PostgreSQL connection opened through lib/pq.
// The schema is created with explicit DDL before GORM takes over the connection.
type DB struct {
	conn *sql.DB
}

func NewDB(host, port, user, password, dbname, sslmode string) (*DB, error) {
	if sslmode == "" {
		sslmode = "disable"
	}
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}

	return &DB{conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// InitSchema creates the publication tables if they don't exist
func (db *DB) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS "Publications" (
		id BIGSERIAL PRIMARY KEY,
		property_type VARCHAR(100) NOT NULL,
		operation_type VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		room_count INTEGER NOT NULL DEFAULT 0,
		area_m2 INTEGER NOT NULL DEFAULT 0,
		age_years INTEGER NOT NULL DEFAULT 0,
		latitude NUMERIC NOT NULL,
		longitude NUMERIC NOT NULL
	);

	CREATE TABLE IF NOT EXISTS "PublicationImages" (
		id BIGSERIAL PRIMARY KEY,
		url TEXT NOT NULL,
		publication_id BIGINT NOT NULL REFERENCES "Publications"(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_publication_images_publication_id ON "PublicationImages"(publication_id);
	`
	_, err := db.conn.Exec(query)
	return err
}

// Gorm hands the lib/pq connection to GORM's postgres dialector
func (db *DB) Gorm(logLevel logger.LogLevel) (*GormDB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db.conn}), gormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm on postgres connection: %w", err)
	}
	return &GormDB{db: gdb}, nil
}
