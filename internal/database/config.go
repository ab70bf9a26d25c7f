package database

import (
	"time"

	"estatedesk/internal/config"
)

// Config holds database connection settings
type Config struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	MigrationsDir   string
}

// NewConfig derives the database settings from the application configuration.
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		URL:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: time.Hour,
		MigrationsDir:   cfg.MigrationsDir,
	}
}

// MigrationsSource returns the golang-migrate source URL for the migrations directory.
func (c *Config) MigrationsSource() string {
	dir := c.MigrationsDir
	if dir == "" {
		dir = "migrations"
	}
	return "file://" + dir
}
