// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Display zones must resolve on hosts without zoneinfo

	"github.com/caarlos0/env/v11"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/text/language"
)

// Database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Details rendering formats.
const (
	DetailsFormatText     = "text"
	DetailsFormatMarkdown = "markdown"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver   string `env:"JOEWY_DB_DRIVER" envDefault:"sqlite"`
	DBPath     string `env:"JOEWY_DB_PATH" envDefault:"./data/joewy.db"`
	DBDSN      string `env:"JOEWY_DB_DSN"`
	ServerHost string `env:"JOEWY_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"JOEWY_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"JOEWY_ENV" envDefault:"development"`
	LogLevel   string `env:"JOEWY_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"JOEWY_LOG_FORMAT" envDefault:"text"`

	// Presentation
	SiteURL       string `env:"JOEWY_SITE_URL"`                         // Absolute base URL for canonical and share links
	ProductName   string `env:"JOEWY_PRODUCT_NAME" envDefault:"Joewy"`  // Suffix of every page title
	Locale        string `env:"JOEWY_LOCALE" envDefault:"en-US"`        // BCP 47 tag
	TimeZone      string `env:"JOEWY_TIMEZONE" envDefault:"UTC"`        // IANA zone used for display
	DetailsFormat string `env:"JOEWY_DETAILS_FORMAT" envDefault:"text"` // text or markdown

	// API
	CORSOrigins []string `env:"JOEWY_CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Seeding configuration
	DoSeed bool `env:"JOEWY_DO_SEED" envDefault:"false"` // Seed demo events into an empty table
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// LocaleTag returns the parsed locale. Load has already validated it.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// Location returns the display time zone. Load has already validated it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("JOEWY_DB_PATH must not be empty for the %s driver", DriverSQLite)
		}
	case DriverMySQL:
		if c.DBDSN == "" {
			return fmt.Errorf("JOEWY_DB_DSN is required for the %s driver", DriverMySQL)
		}
		if _, err := mysql.ParseDSN(c.DBDSN); err != nil {
			return fmt.Errorf("JOEWY_DB_DSN is not a valid MySQL DSN: %w", err)
		}
	default:
		return fmt.Errorf("JOEWY_DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverMySQL, c.DBDriver)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("JOEWY_LOCALE %q is not a valid language tag: %w", c.Locale, err)
	}

	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("JOEWY_TIMEZONE %q: %w", c.TimeZone, err)
	}

	switch c.DetailsFormat {
	case DetailsFormatText, DetailsFormatMarkdown:
	default:
		return fmt.Errorf("JOEWY_DETAILS_FORMAT must be %q or %q, got %q",
			DetailsFormatText, DetailsFormatMarkdown, c.DetailsFormat)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("JOEWY_LOG_FORMAT must be \"text\" or \"json\", got %q", c.LogFormat)
	}

	c.SiteURL = strings.TrimSuffix(c.SiteURL, "/")
	if c.ProductName == "" {
		c.ProductName = "Joewy"
	}

	return nil
}
