// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"

	"golang.org/x/text/language"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBDriver != DriverSQLite {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, DriverSQLite)
	}
	if cfg.DBPath != "./data/joewy.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/joewy.db")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.ProductName != "Joewy" {
		t.Errorf("ProductName = %q, want %q", cfg.ProductName, "Joewy")
	}
	if cfg.Locale != "en-US" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en-US")
	}
	if cfg.DetailsFormat != DetailsFormatText {
		t.Errorf("DetailsFormat = %q, want %q", cfg.DetailsFormat, DetailsFormatText)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "JOEWY_SERVER_HOST", "0.0.0.0")
	setEnv(t, "JOEWY_SERVER_PORT", "3000")
	setEnv(t, "JOEWY_ENV", "production")
	setEnv(t, "JOEWY_SITE_URL", "https://events.example.com/")
	setEnv(t, "JOEWY_PRODUCT_NAME", "Acme")
	setEnv(t, "JOEWY_LOCALE", "de-DE")
	setEnv(t, "JOEWY_TIMEZONE", "Europe/Berlin")
	setEnv(t, "JOEWY_DETAILS_FORMAT", "markdown")
	setEnv(t, "JOEWY_CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.SiteURL != "https://events.example.com" {
		t.Errorf("SiteURL = %q, want trailing slash trimmed", cfg.SiteURL)
	}
	if cfg.ProductName != "Acme" {
		t.Errorf("ProductName = %q, want %q", cfg.ProductName, "Acme")
	}
	if cfg.LocaleTag() != language.MustParse("de-DE") {
		t.Errorf("LocaleTag() = %v, want de-DE", cfg.LocaleTag())
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Errorf("Location() = %v, want Europe/Berlin", cfg.Location())
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.CORSOrigins)
	}
}

func TestLoad_MySQL(t *testing.T) {
	os.Clearenv()
	setEnv(t, "JOEWY_DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when JOEWY_DB_DSN is missing for mysql")
	}

	setEnv(t, "JOEWY_DB_DSN", "joewy:secret@tcp(127.0.0.1:3306)/joewy")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DBDriver != DriverMySQL {
		t.Errorf("DBDriver = %q, want %q", cfg.DBDriver, DriverMySQL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown driver", "JOEWY_DB_DRIVER", "postgres"},
		{"bad dsn", "JOEWY_DB_DSN", "not a dsn"},
		{"bad locale", "JOEWY_LOCALE", "not_a-locale!"},
		{"bad timezone", "JOEWY_TIMEZONE", "Mars/Olympus"},
		{"bad details format", "JOEWY_DETAILS_FORMAT", "html"},
		{"bad log format", "JOEWY_LOG_FORMAT", "xml"},
		{"bad port", "JOEWY_SERVER_PORT", "eighty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			if tt.name == "bad dsn" {
				setEnv(t, "JOEWY_DB_DRIVER", "mysql")
			}
			setEnv(t, tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load() should fail with %s=%q", tt.key, tt.value)
			}
		})
	}
}
