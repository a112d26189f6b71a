// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"time"

	"github.com/olegiv/joewy-events/internal/model"
)

func summaryFixture(id int64, title string, start time.Time, status, location string) model.EventSummary {
	return model.EventSummary{
		ID:            id,
		Title:         title,
		StartDatetime: start,
		EndDatetime:   start.Add(time.Hour),
		Location:      location,
		Status:        status,
	}
}

func eventFixture(id int64, title string, start time.Time) model.Event {
	return model.Event{
		ID:                id,
		Title:             title,
		Details:           "Bring a friend.",
		StartDatetime:     start,
		EndDatetime:       start.Add(90 * time.Minute),
		Location:          "Rooftop",
		Organizer:         "Ada",
		ParticipantsCount: 1250,
		Recurrence:        "FREQ=WEEKLY",
		Status:            "Tentative",
		Tags:              []string{"launch", "social"},
	}
}
