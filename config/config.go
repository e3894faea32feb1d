package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// Config holds every runtime setting. It is parsed once at startup and passed
// down explicitly; nothing else reads the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	DatabaseURL string `env:"DATABASE_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-flash-latest"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ConnectDatabase opens the configured database: a postgres DSN when
// DATABASE_URL is set, otherwise a local sqlite file for development.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return db, nil
	}

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "oracle.db"
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        dsn,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}

	// sqlite does not enforce foreign keys unless asked to
	db.Exec("PRAGMA foreign_keys = ON;")

	return db, nil
}
