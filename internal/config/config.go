// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/zapponejosh/luach/internal/calendar"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	Env string `env:"ENV" envDefault:"development"` // development, staging, production

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // json, text

	// Calendar
	InIsrael       bool `env:"LUACH_IN_ISRAEL" envDefault:"false"`        // Israel yom tov and parsha schedule
	ModernHolidays bool `env:"LUACH_MODERN_HOLIDAYS" envDefault:"false"` // Yom Hashoah, Yom Haatzmaut, ...

	// Feed
	FeedName string `env:"LUACH_FEED_NAME" envDefault:"Luach"` // X-WR-CALNAME of generated feeds
	FeedDays int    `env:"LUACH_FEED_DAYS" envDefault:"365"`   // days covered by a feed
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// maxFeedDays caps a feed at roughly ten years.
const maxFeedDays = 3660

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all configuration values are in range.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if c.IsProduction() && c.LogFormat != "json" {
		errs = append(errs, errors.New("LOG_FORMAT must be json in production"))
	}

	if c.FeedName == "" {
		errs = append(errs, errors.New("LUACH_FEED_NAME is required"))
	}

	if c.FeedDays < 1 || c.FeedDays > maxFeedDays {
		errs = append(errs, fmt.Errorf("LUACH_FEED_DAYS must be between 1 and %d, got %d", maxFeedDays, c.FeedDays))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// CalendarOptions returns the location settings used by calendar lookups.
func (c *Config) CalendarOptions() calendar.Options {
	return calendar.Options{
		InIsrael:          c.InIsrael,
		UseModernHolidays: c.ModernHolidays,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}
