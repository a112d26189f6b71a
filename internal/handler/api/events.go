// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/joewy-events/internal/handler"
	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/presenter"
	"github.com/olegiv/joewy-events/internal/store"
)

// EventSummaryResponse represents a list row in API responses.
type EventSummaryResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Location      string    `json:"location,omitempty"`
	Status        string    `json:"status,omitempty"`
	StatusClass   string    `json:"status_class"`
	URL           string    `json:"url"`
}

// EventResponse represents a full event in API responses.
type EventResponse struct {
	ID                int64      `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	Title             string     `json:"title"`
	Details           string     `json:"details"`
	StartDatetime     time.Time  `json:"start_datetime"`
	EndDatetime       time.Time  `json:"end_datetime"`
	Location          string     `json:"location"`
	Organizer         string     `json:"organizer"`
	ParticipantsCount int        `json:"participants_count"`
	Recurrence        string     `json:"recurrence,omitempty"`
	NextOccurrence    *time.Time `json:"next_occurrence,omitempty"`
	Status            string     `json:"status"`
	StatusClass       string     `json:"status_class"`
	Tags              []string   `json:"tags"`
	URL               string     `json:"url"`
}

func summaryToResponse(s model.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		ID:            s.ID,
		Title:         s.Title,
		StartDatetime: s.StartDatetime.UTC(),
		EndDatetime:   s.EndDatetime.UTC(),
		Location:      s.Location,
		Status:        s.Status,
		StatusClass:   presenter.StatusColorClass(s.Status),
		URL:           presenter.EventURL(s.ID),
	}
}

func eventToResponse(e model.Event, now time.Time) EventResponse {
	resp := EventResponse{
		ID:                e.ID,
		CreatedAt:         e.CreatedAt.UTC(),
		Title:             e.Title,
		Details:           e.Details,
		StartDatetime:     e.StartDatetime.UTC(),
		EndDatetime:       e.EndDatetime.UTC(),
		Location:          e.Location,
		Organizer:         e.Organizer,
		ParticipantsCount: e.ParticipantsCount,
		Recurrence:        e.Recurrence,
		Status:            e.Status,
		StatusClass:       presenter.StatusColorClass(e.Status),
		Tags:              e.Tags,
		URL:               presenter.EventURL(e.ID),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if next := presenter.NextOccurrence(e, now); !next.IsZero() {
		next = next.UTC()
		resp.NextOccurrence = &next
	}
	return resp
}

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListUpcoming(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list upcoming events", "error", err)
		WriteInternalError(w, "Failed to retrieve events")
		return
	}

	data := make([]EventSummaryResponse, 0, len(events))
	for _, e := range events {
		data = append(data, summaryToResponse(e))
	}

	WriteSuccess(w, data, &Meta{Total: len(data)})
}

// GetEvent handles GET /api/events/{id}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	e, err := h.events.GetByIDString(r.Context(), rawID)
	if err != nil {
		handler.LogLookupError(r.Context(), h.logger, rawID, err)
		if errors.Is(err, store.ErrBackend) {
			WriteInternalError(w, "Failed to retrieve event")
			return
		}
		WriteNotFound(w, "Event not found")
		return
	}

	WriteSuccess(w, eventToResponse(e, h.now()), nil)
}
