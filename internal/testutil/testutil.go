// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the event viewer.
package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/store"
)

// ReferenceTime is the fixed "now" shared by tests.
var ReferenceTime = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

// TestLogger creates a test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// DiscardLogger creates a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestDB creates a temporary SQLite database with migrations applied.
// The database is closed when the test finishes.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "joewy-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	return db
}

// InsertEvent stores e and returns its id, failing the test on error.
func InsertEvent(t *testing.T, db *sql.DB, e model.Event) int64 {
	t.Helper()

	id, err := store.InsertEvent(context.Background(), db, e)
	if err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	return id
}

// Event returns a fully populated event starting at start.
func Event(title string, start time.Time) model.Event {
	return model.Event{
		Title:             title,
		Details:           "Details for " + title,
		StartDatetime:     start,
		EndDatetime:       start.Add(2 * time.Hour),
		Location:          "Community Hall",
		Organizer:         "Joewy Team",
		ParticipantsCount: 12,
		Status:            model.EventStatusConfirmed,
		Tags:              []string{"community"},
		CreatedAt:         start.Add(-24 * time.Hour),
	}
}
