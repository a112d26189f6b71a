// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"time"
)

// Dialect identifies a supported SQL backend.
type Dialect struct {
	Name          string
	goose         string
	migrationsDir string
}

// Supported dialects.
var (
	SQLite = Dialect{Name: "sqlite", goose: "sqlite3", migrationsDir: "migrations/sqlite"}
	MySQL  = Dialect{Name: "mysql", goose: "mysql", migrationsDir: "migrations/mysql"}
)

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case SQLite.Name, "":
		return SQLite, nil
	case MySQL.Name:
		return MySQL, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// timeColumn returns an expression comparing column chronologically. SQLite
// stores timestamps as text, so rows written with an offset are normalized to
// UTC by datetime() before comparison. MySQL DATETIME columns compare natively.
func (d Dialect) timeColumn(column string) string {
	if d == SQLite {
		return "datetime(" + column + ")"
	}
	return column
}

// timeParam is the placeholder matching timeColumn.
func (d Dialect) timeParam() string {
	if d == SQLite {
		return "datetime(?)"
	}
	return "?"
}

// timeLayout is the canonical UTC text form of every stored timestamp.
// Fixed width keeps lexical and chronological order identical in SQLite.
const timeLayout = "2006-01-02 15:04:05"

// acceptedLayouts lists the forms a timestamp may come back in. Rows written
// by other tools and MySQL connections with parseTime enabled use RFC 3339.
var acceptedLayouts = []string{
	timeLayout,
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// FormatTime renders t in the stored timestamp form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ParseTime parses a stored timestamp. Values without an offset are UTC.
func ParseTime(s string) (time.Time, error) {
	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
