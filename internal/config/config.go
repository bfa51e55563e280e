// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Data sources for the pages and the exporter.
const (
	SourceStore  = "store"
	SourceAPI    = "api"
	SourceStatic = "static"
)

// Config holds every setting read at startup.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	StoreDriver  string `env:"STORE_DRIVER" envDefault:"memory"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"atelier.db"`

	DataSource  string `env:"DATA_SOURCE" envDefault:"store"`
	APIBaseURL  string `env:"API_BASE_URL"`
	SnapshotDir string `env:"SNAPSHOT_DIR" envDefault:"out"`
	ExportDir   string `env:"EXPORT_DIR" envDefault:"out"`

	// Default to secure cookies; disable only for local development.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"true"`
	BcryptCost   int  `env:"BCRYPT_COST" envDefault:"12"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load reading from environ instead of the process environment
// when environ is non-nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	var err error
	if environ != nil {
		err = env.ParseWithOptions(&cfg, env.Options{Environment: environ})
	} else {
		err = env.Parse(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreSQLite, c.StoreDriver))
	}
	if c.StoreDriver == StoreSQLite && strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required with the sqlite store"))
	}
	switch c.DataSource {
	case SourceStore, SourceStatic:
	case SourceAPI:
		if strings.TrimSpace(c.APIBaseURL) == "" {
			errs = append(errs, errors.New("API_BASE_URL is required when DATA_SOURCE is api"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATA_SOURCE must be one of store, api, static, got %q", c.DataSource))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost))
	}
	if (c.AdminUsername == "") != (c.AdminPassword == "") {
		errs = append(errs, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

// ParseLevel maps LOG_LEVEL onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
