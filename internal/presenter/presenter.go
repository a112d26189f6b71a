// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package presenter turns event records into display-ready values.
// The list page, the detail page, the JSON API and the iCalendar export all
// share it, so status styling and date formatting exist in one place.
package presenter

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/olegiv/joewy-events/internal/model"
)

// Status tokens: the CSS classes used for each status bucket.
const (
	StatusTokenNeutral   = "bg-gray-100 text-gray-800"
	StatusTokenConfirmed = "bg-green-100 text-green-800"
	StatusTokenTentative = "bg-yellow-100 text-yellow-800"
	StatusTokenCancelled = "bg-red-100 text-red-800"
	StatusTokenDefault   = "bg-blue-100 text-blue-800"
)

// Date and time layouts (en-US style).
const (
	LongDateLayout  = "Monday, January 2, 2006"
	ShortDateLayout = "Mon, Jan 2"
	TimeLayout      = "3:04 PM"

	TimeRangeSeparator = " - "
	ListDateSeparator  = " · "
)

// StatusColorClass maps a status to its style token. Matching is
// case-insensitive; only the empty status is neutral and every other value,
// whitespace included, falls through to the default token.
func StatusColorClass(status string) string {
	if status == "" {
		return StatusTokenNeutral
	}

	switch strings.ToLower(status) {
	case model.EventStatusConfirmed:
		return StatusTokenConfirmed
	case model.EventStatusTentative:
		return StatusTokenTentative
	case model.EventStatusCancelled:
		return StatusTokenCancelled
	default:
		return StatusTokenDefault
	}
}

// Config holds the presentation settings that were previously inlined literals.
type Config struct {
	Locale        language.Tag
	Location      *time.Location
	ProductName   string
	MarkdownNotes bool // Render details as sanitized Markdown instead of plain text
}

// Presenter formats events for display.
type Presenter struct {
	cfg     Config
	printer *message.Printer
}

// New creates a Presenter. Zero values fall back to en-US, UTC and "Joewy".
func New(cfg Config) *Presenter {
	if cfg.Locale == language.Und {
		cfg.Locale = language.AmericanEnglish
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ProductName == "" {
		cfg.ProductName = "Joewy"
	}
	return &Presenter{
		cfg:     cfg,
		printer: message.NewPrinter(cfg.Locale),
	}
}

// ProductName returns the configured product name.
func (p *Presenter) ProductName() string {
	return p.cfg.ProductName
}

// Lang returns the locale as an HTML lang attribute value.
func (p *Presenter) Lang() string {
	return p.cfg.Locale.String()
}

// Location returns the display time zone.
func (p *Presenter) Location() *time.Location {
	return p.cfg.Location
}

// FormatDate renders the long form, e.g. "Tuesday, March 4, 2026".
func (p *Presenter) FormatDate(t time.Time) string {
	return t.In(p.cfg.Location).Format(LongDateLayout)
}

// FormatShortDate renders the abbreviated form, e.g. "Tue, Mar 4".
func (p *Presenter) FormatShortDate(t time.Time) string {
	return t.In(p.cfg.Location).Format(ShortDateLayout)
}

// FormatTime renders a 12-hour clock time without a leading zero, e.g. "9:05 AM".
func (p *Presenter) FormatTime(t time.Time) string {
	return t.In(p.cfg.Location).Format(TimeLayout)
}

// FormatTimeRange renders "9:00 AM - 10:30 AM".
func (p *Presenter) FormatTimeRange(start, end time.Time) string {
	return p.FormatTime(start) + TimeRangeSeparator + p.FormatTime(end)
}

// FormatListDate renders the list row form, e.g. "Tue, Mar 4 · 9:00 AM".
func (p *Presenter) FormatListDate(t time.Time) string {
	return p.FormatShortDate(t) + ListDateSeparator + p.FormatTime(t)
}

// FormatParticipants renders "1,250 people" with locale digit grouping.
func (p *Presenter) FormatParticipants(n int) string {
	return p.printer.Sprintf("%d people", n)
}

// PageTitle returns "{title} | {product}", or "{fallback} | {product}" when title is blank.
func (p *Presenter) PageTitle(title, fallback string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = fallback
	}
	return title + " | " + p.cfg.ProductName
}

// SummaryView is a list row ready for rendering.
type SummaryView struct {
	ID          int64
	Title       string
	URL         string
	Location    string
	Status      string
	StatusClass string
	DateTimeISO string
	DateLabel   string
}

// EventView is a detail page ready for rendering.
type EventView struct {
	ID             int64
	Title          string
	URL            string
	Status         string
	StatusClass    string
	Date           string
	TimeRange      string
	StartISO       string
	EndISO         string
	Location       string
	Details        template.HTML
	Organizer      string
	Participants   string
	Recurrence     string
	NextOccurrence string
	Tags           []string
}

// EventURL returns the site-relative detail path of an event.
func EventURL(id int64) string {
	return "/event/" + strconv.FormatInt(id, 10)
}

// Summary builds a list row view.
func (p *Presenter) Summary(s model.EventSummary) SummaryView {
	return SummaryView{
		ID:          s.ID,
		Title:       s.Title,
		URL:         EventURL(s.ID),
		Location:    s.Location,
		Status:      s.Status,
		StatusClass: StatusColorClass(s.Status),
		DateTimeISO: s.StartDatetime.UTC().Format(time.RFC3339),
		DateLabel:   p.FormatListDate(s.StartDatetime),
	}
}

// Summaries builds list row views in order.
func (p *Presenter) Summaries(events []model.EventSummary) []SummaryView {
	views := make([]SummaryView, 0, len(events))
	for _, e := range events {
		views = append(views, p.Summary(e))
	}
	return views
}

// Event builds the detail view. now anchors the next-occurrence computation.
func (p *Presenter) Event(e model.Event, now time.Time) EventView {
	v := EventView{
		ID:           e.ID,
		Title:        e.Title,
		URL:          EventURL(e.ID),
		Status:       e.Status,
		StatusClass:  StatusColorClass(e.Status),
		Date:         p.FormatDate(e.StartDatetime),
		TimeRange:    p.FormatTimeRange(e.StartDatetime, e.EndDatetime),
		StartISO:     e.StartDatetime.UTC().Format(time.RFC3339),
		EndISO:       e.EndDatetime.UTC().Format(time.RFC3339),
		Location:     e.Location,
		Details:      p.DetailsHTML(e.Details),
		Organizer:    e.Organizer,
		Participants: p.FormatParticipants(e.ParticipantsCount),
		Recurrence:   strings.TrimSpace(e.Recurrence),
		Tags:         e.Tags,
	}
	if next := NextOccurrence(e, now); !next.IsZero() {
		v.NextOccurrence = p.FormatDate(next) + ListDateSeparator + p.FormatTime(next)
	}
	return v
}
