// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the calendar event entities read from the backend store.
package model

import "time"

// Known event statuses. Any other value is displayed in the default bucket.
const (
	EventStatusConfirmed = "confirmed"
	EventStatusTentative = "tentative"
	EventStatusCancelled = "cancelled"
)

// Event is a calendar record with scheduling, location and organizer metadata.
type Event struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Title             string    `json:"title"`
	Details           string    `json:"details"`
	StartDatetime     time.Time `json:"start_datetime"`
	EndDatetime       time.Time `json:"end_datetime"`
	Location          string    `json:"location"`
	Organizer         string    `json:"organizer"`
	ParticipantsCount int       `json:"participants_count"`
	Recurrence        string    `json:"recurrence"`
	Status            string    `json:"status"`
	Tags              []string  `json:"tags"`
}

// EventSummary is the projection used by the upcoming events list.
type EventSummary struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
}

// Summary returns the list projection of the event.
func (e Event) Summary() EventSummary {
	return EventSummary{
		ID:            e.ID,
		Title:         e.Title,
		StartDatetime: e.StartDatetime,
		EndDatetime:   e.EndDatetime,
		Location:      e.Location,
		Status:        e.Status,
	}
}

// IsUpcoming reports whether the event has not ended at the given instant.
func (e EventSummary) IsUpcoming(now time.Time) bool {
	return !e.EndDatetime.Before(now)
}
