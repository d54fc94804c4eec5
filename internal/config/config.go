package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Search    SearchConfig    `yaml:"search"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
	Frontend  FrontendConfig  `yaml:"frontend"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port                  string   `yaml:"port"`
	BasePath              string   `yaml:"base_path"`
	AllowedOrigins        []string `yaml:"allowed_origins"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds"`
	ShutdownGraceSeconds  int      `yaml:"shutdown_grace_seconds"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite settings
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL connection settings
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// SearchConfig contains search index settings
type SearchConfig struct {
	Meilisearch MeilisearchConfig `yaml:"meilisearch"`
	ReindexCron string            `yaml:"reindex_cron"`
}

// MeilisearchConfig contains Meilisearch connection settings.
// An empty host disables the index mirror.
type MeilisearchConfig struct {
	Host   string `yaml:"host"`
	APIKey string `yaml:"api_key"`
	Index  string `yaml:"index"`
}

// RateLimitConfig limits mutating requests
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
	RequestsPerDay    int  `yaml:"requests_per_day"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json, text or color
	LogRequests bool   `yaml:"log_requests"`
}

// FrontendConfig points at a built single-page app to serve, if any
type FrontendConfig struct {
	DistDir string `yaml:"dist_dir"`
}

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabaseMySQL    = "mysql"
	DatabasePostgres = "postgres"
)

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  "8080",
			BasePath:              "/api",
			AllowedOrigins:        []string{"http://localhost:5173"},
			RequestTimeoutSeconds: 15,
			ShutdownGraceSeconds:  10,
		},
		Database: DatabaseConfig{
			Type:   DatabaseSQLite,
			SQLite: SQLiteConfig{Path: "publications.db"},
		},
		Search: SearchConfig{
			Meilisearch: MeilisearchConfig{Index: "publications"},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 120,
			RequestsPerHour:   3000,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "text",
			LogRequests: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(filepath string) (*Config, error) {
	// Start with default config
	config := DefaultConfig()

	if _, err := os.Stat(filepath); err == nil {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	config.ApplyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides configured values with environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = splitCSV(v)
	}
	if v := os.Getenv("DB_TYPE"); v != "" {
		c.Database.Type = strings.ToLower(v)
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Database.SQLite.Path = v
	}

	// DB_* apply to whichever server database is selected
	switch c.Database.Type {
	case DatabaseMySQL:
		m := &c.Database.MySQL
		m.Host = getEnv("DB_HOST", m.Host)
		m.Port = getEnvInt("DB_PORT", m.Port)
		m.User = getEnv("DB_USER", m.User)
		m.Password = getEnv("DB_PASSWORD", m.Password)
		m.Database = getEnv("DB_NAME", m.Database)
	case DatabasePostgres:
		p := &c.Database.Postgres
		p.Host = getEnv("DB_HOST", p.Host)
		p.Port = getEnvInt("DB_PORT", p.Port)
		p.User = getEnv("DB_USER", p.User)
		p.Password = getEnv("DB_PASSWORD", p.Password)
		p.Database = getEnv("DB_NAME", p.Database)
		p.SSLMode = getEnv("DB_SSLMODE", p.SSLMode)
	}

	c.Search.Meilisearch.Host = getEnv("MEILISEARCH_HOST", c.Search.Meilisearch.Host)
	c.Search.Meilisearch.APIKey = getEnv("MEILISEARCH_KEY", c.Search.Meilisearch.APIKey)
	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
	c.Frontend.DistDir = getEnv("FRONTEND_DIR", c.Frontend.DistDir)
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Database.Type {
	case DatabaseSQLite, DatabaseMySQL, DatabasePostgres:
	default:
		return fmt.Errorf("config: unsupported database type %q", c.Database.Type)
	}
	if c.Server.Port == "" {
		return errors.New("config: server port is required")
	}
	if c.Server.RequestTimeoutSeconds <= 0 {
		return errors.New("config: request_timeout_seconds must be positive")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return errors.New("config: allowed_origins must list at least one origin")
	}
	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("config: base_path %q must start with /", c.Server.BasePath)
	}
	return nil
}

// GetRequestTimeout returns the per-request deadline as a duration
func (c *ServerConfig) GetRequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GetShutdownGrace returns the graceful shutdown window as a duration
func (c *ServerConfig) GetShutdownGrace() time.Duration {
	if c.ShutdownGraceSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownGraceSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
