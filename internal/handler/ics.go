// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/presenter"
	"github.com/olegiv/joewy-events/internal/share"
	"github.com/olegiv/joewy-events/internal/util"
)

// ContentTypeCalendar is the iCalendar media type.
const ContentTypeCalendar = "text/calendar; charset=utf-8"

// Calendar handles GET /event/{id}/calendar.ics with a single-event
// VCALENDAR download.
func (h *EventsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	e, ok := requireEvent(w, r, h.logger, rawID, h.events.GetByIDString, h.eventNotFound)
	if !ok {
		return
	}

	pageURL := share.AbsoluteURL(h.site.URL, r, presenter.EventURL(e.ID))
	body := BuildCalendar(e, h.site.Name, pageURL, h.now())

	filename := util.EventFilename(e.Title, e.ID, ".ics")
	w.Header().Set(HeaderContentType, ContentTypeCalendar)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// BuildCalendar serializes one event as an iCalendar document.
func BuildCalendar(e model.Event, productName, pageURL string, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//" + productName + "//Events//EN")

	host := "joewy"
	if i := strings.Index(pageURL, "://"); i >= 0 {
		host = strings.SplitN(pageURL[i+3:], "/", 2)[0]
	}
	ev := cal.AddEvent("event-" + strconv.FormatInt(e.ID, 10) + "@" + host)
	ev.SetDtStampTime(now.UTC())
	if !e.CreatedAt.IsZero() {
		ev.SetCreatedTime(e.CreatedAt.UTC())
	}
	ev.SetStartAt(e.StartDatetime.UTC())
	ev.SetEndAt(e.EndDatetime.UTC())
	ev.SetSummary(e.Title)
	if desc := calendarDescription(e); desc != "" {
		ev.SetDescription(desc)
	}
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}
	if pageURL != "" {
		ev.SetURL(pageURL)
	}
	if status, ok := calendarStatus(e.Status); ok {
		ev.SetStatus(status)
	}
	if rule := presenter.RecurrenceRule(e.Recurrence); rule != "" {
		ev.AddRrule(rule)
	}
	for _, tag := range e.Tags {
		ev.AddProperty(ical.ComponentPropertyCategories, tag)
	}

	return cal.Serialize()
}

func calendarDescription(e model.Event) string {
	desc := strings.TrimSpace(e.Details)
	if org := strings.TrimSpace(e.Organizer); org != "" {
		if desc != "" {
			desc += "\n\n"
		}
		desc += "Organizer: " + org
	}
	return desc
}

func calendarStatus(status string) (ical.ObjectStatus, bool) {
	switch strings.ToLower(status) {
	case model.EventStatusConfirmed:
		return ical.ObjectStatusConfirmed, true
	case model.EventStatusTentative:
		return ical.ObjectStatusTentative, true
	case model.EventStatusCancelled:
		return ical.ObjectStatusCancelled, true
	default:
		return "", false
	}
}
