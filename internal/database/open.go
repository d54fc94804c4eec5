package database

import (
	"fmt"
	"log/slog"
	"strconv"

	"real-estate-publications/internal/config"

	"gorm.io/gorm/logger"
)

// Open connects to the configured database and makes sure the schema exists
func Open(cfg config.DatabaseConfig, debug bool) (*GormDB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	switch cfg.Type {
	case config.DatabaseSQLite:
		slog.Info("using SQLite", "path", cfg.SQLite.Path)
		gdb, err := NewSQLiteGormDB(cfg.SQLite.Path, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := gdb.InitSchema(); err != nil {
			gdb.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return gdb, nil

	case config.DatabaseMySQL:
		m := cfg.MySQL
		slog.Info("using MySQL with GORM", "host", m.Host)
		gdb, err := NewGormDB(
			orDefault(m.Host, "mysql"),
			portOrDefault(m.Port, "3306"),
			orDefault(m.User, "realestate_user"),
			orDefault(m.Password, "realestate_pass"),
			orDefault(m.Database, "realestate_db"),
			logLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mysql: %w", err)
		}
		if err := gdb.InitSchema(); err != nil {
			gdb.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return gdb, nil

	case config.DatabasePostgres:
		p := cfg.Postgres
		slog.Info("using PostgreSQL", "host", p.Host)
		pg, err := NewDB(
			orDefault(p.Host, "db"),
			portOrDefault(p.Port, "5432"),
			orDefault(p.User, "realestate_user"),
			orDefault(p.Password, "realestate_pass"),
			orDefault(p.Database, "realestate_db"),
			p.SSLMode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := pg.InitSchema(); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		gdb, err := pg.Gorm(logLevel)
		if err != nil {
			pg.Close()
			return nil, err
		}
		return gdb, nil
	}

	return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func portOrDefault(port int, fallback string) string {
	if port <= 0 {
		return fallback
	}
	return strconv.Itoa(port)
}
