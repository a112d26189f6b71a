// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"cmp"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olegiv/joewy-events/internal/model"
)

const eventColumns = `id, created_at,
	COALESCE(title, ''), COALESCE(details, ''),
	start_datetime, end_datetime,
	COALESCE(location, ''), COALESCE(organizer, ''),
	COALESCE(participants_count, 0), COALESCE(recurrence, ''),
	COALESCE(status, ''), COALESCE(tags, '[]')`

const summaryColumns = `id, COALESCE(title, ''), start_datetime, end_datetime,
	COALESCE(location, ''), COALESCE(status, '')`

// EventRepository reads calendar events. It never writes.
type EventRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
	logger  *slog.Logger
}

// NewEventRepository creates a repository over db. A nil now uses time.Now.
func NewEventRepository(db *sql.DB, dialect Dialect, now func() time.Time, logger *slog.Logger) *EventRepository {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EventRepository{
		db:      db,
		dialect: dialect,
		now:     now,
		logger:  logger,
	}
}

// Ping checks that the backend is reachable.
func (r *EventRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return backendError("ping", err)
	}
	return nil
}

// ParseID parses a route id. Anything that is not a positive integer is ErrNotFound.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrNotFound, raw)
	}
	return id, nil
}

// GetByIDString parses raw and fetches the matching event.
func (r *EventRepository) GetByIDString(ctx context.Context, raw string) (model.Event, error) {
	id, err := ParseID(raw)
	if err != nil {
		return model.Event{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches exactly one event.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (model.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM calendar WHERE id = ?`, id)

	var (
		e                       model.Event
		created, start, end, tg string
	)
	err := row.Scan(&e.ID, &created, &e.Title, &e.Details, &start, &end,
		&e.Location, &e.Organizer, &e.ParticipantsCount, &e.Recurrence, &e.Status, &tg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return model.Event{}, backendError("get event", err)
	}

	if e.CreatedAt, err = ParseTime(created); err != nil {
		return model.Event{}, malformed(id, "created_at", err)
	}
	if e.StartDatetime, err = ParseTime(start); err != nil {
		return model.Event{}, malformed(id, "start_datetime", err)
	}
	if e.EndDatetime, err = ParseTime(end); err != nil {
		return model.Event{}, malformed(id, "end_datetime", err)
	}
	if e.Tags, err = decodeTags(tg); err != nil {
		return model.Event{}, malformed(id, "tags", err)
	}
	if e.ParticipantsCount < 0 {
		e.ParticipantsCount = 0
	}

	return e, nil
}

// ListUpcoming returns every event that has not ended yet, earliest start first.
// Rows with undecodable timestamps are skipped and logged.
func (r *EventRepository) ListUpcoming(ctx context.Context) ([]model.EventSummary, error) {
	now := r.now().UTC()

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+summaryColumns+` FROM calendar
		WHERE `+r.dialect.timeColumn("end_datetime")+` >= `+r.dialect.timeParam()+`
		ORDER BY `+r.dialect.timeColumn("start_datetime")+` ASC, id ASC`, FormatTime(now))
	if err != nil {
		return nil, backendError("list upcoming events", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]model.EventSummary, 0)
	for rows.Next() {
		var (
			s          model.EventSummary
			start, end string
		)
		if err := rows.Scan(&s.ID, &s.Title, &start, &end, &s.Location, &s.Status); err != nil {
			return nil, backendError("scan upcoming event", err)
		}

		var perr error
		if s.StartDatetime, perr = ParseTime(start); perr == nil {
			s.EndDatetime, perr = ParseTime(end)
		}
		if perr != nil {
			r.logger.Warn("skipping malformed event", "event_id", s.ID, "error", perr)
			continue
		}

		if !s.IsUpcoming(now) {
			continue
		}
		events = append(events, s)
	}
	if err := rows.Err(); err != nil {
		return nil, backendError("iterate upcoming events", err)
	}

	slices.SortStableFunc(events, func(a, b model.EventSummary) int {
		if c := a.StartDatetime.Compare(b.StartDatetime); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return events, nil
}

func decodeTags(raw string) ([]string, error) {
	tags := make([]string, 0)
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = make([]string, 0)
	}
	return tags, nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func malformed(id int64, column string, err error) error {
	return fmt.Errorf("%w: id %d column %s: %v", ErrMalformedRecord, id, column, err)
}
