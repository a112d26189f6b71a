// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/joewy-events/internal/model"
)

// InsertEvent writes one event row and returns its id. The application itself
// is read-only; this is used by development seeding and tests.
func InsertEvent(ctx context.Context, db *sql.DB, e model.Event) (int64, error) {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := db.ExecContext(ctx, `INSERT INTO calendar
		(created_at, title, details, start_datetime, end_datetime, location, organizer,
		 participants_count, recurrence, status, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		FormatTime(created), e.Title, e.Details,
		FormatTime(e.StartDatetime), FormatTime(e.EndDatetime),
		e.Location, e.Organizer, e.ParticipantsCount, e.Recurrence, e.Status,
		encodeTags(e.Tags),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting event %q: %w", e.Title, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted event id: %w", err)
	}
	return id, nil
}

// Seed inserts demo events relative to now when doSeed is set and the
// calendar table is empty.
func Seed(ctx context.Context, db *sql.DB, doSeed bool, now time.Time) error {
	if !doSeed {
		slog.Info("database seeding disabled, skipping")
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calendar`).Scan(&count); err != nil {
		return fmt.Errorf("counting events: %w", err)
	}
	if count > 0 {
		slog.Info("calendar already has events, skipping seed", "count", count)
		return nil
	}

	day := now.UTC().Truncate(24 * time.Hour)
	demo := []model.Event{
		{
			Title:             "Team Offsite Planning",
			Details:           "Quarterly planning session.\nBring your roadmap drafts.",
			StartDatetime:     day.Add(24*time.Hour + 9*time.Hour),
			EndDatetime:       day.Add(24*time.Hour + 11*time.Hour + 30*time.Minute),
			Location:          "Main Conference Room",
			Organizer:         "planning@example.com",
			ParticipantsCount: 12,
			Status:            model.EventStatusConfirmed,
			Tags:              []string{"planning", "internal"},
		},
		{
			Title:             "Community Meetup",
			Details:           "Lightning talks and **open discussion**.",
			StartDatetime:     day.Add(3*24*time.Hour + 18*time.Hour),
			EndDatetime:       day.Add(3*24*time.Hour + 20*time.Hour),
			Location:          "Riverside Hub",
			Organizer:         "Community Team",
			ParticipantsCount: 1250,
			Recurrence:        "FREQ=MONTHLY;BYDAY=1TH",
			Status:            model.EventStatusTentative,
			Tags:              []string{"community", "talks"},
		},
		{
			Title:             "Product Launch Rehearsal",
			Details:           "Dry run of the launch keynote.",
			StartDatetime:     day.Add(5*24*time.Hour + 14*time.Hour),
			EndDatetime:       day.Add(5*24*time.Hour + 15*time.Hour),
			Location:          "Studio B",
			Organizer:         "launch@example.com",
			ParticipantsCount: 8,
			Status:            model.EventStatusCancelled,
		},
		{
			Title:             "Weekly Sync",
			StartDatetime:     day.Add(7*24*time.Hour + 10*time.Hour),
			EndDatetime:       day.Add(7*24*time.Hour + 10*time.Hour + 30*time.Minute),
			Location:          "Video call",
			Organizer:         "Engineering",
			ParticipantsCount: 6,
			Recurrence:        "RRULE:FREQ=WEEKLY;BYDAY=MO",
			Status:            "scheduled",
			Tags:              []string{"recurring"},
		},
	}

	for _, e := range demo {
		e.CreatedAt = now
		id, err := InsertEvent(ctx, db, e)
		if err != nil {
			return fmt.Errorf("seeding events: %w", err)
		}
		slog.Info("seeded demo event", "event_id", id, "title", e.Title)
	}

	return nil
}
