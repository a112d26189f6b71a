// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers of the event viewer.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/presenter"
	"github.com/olegiv/joewy-events/internal/render"
	"github.com/olegiv/joewy-events/internal/seo"
	"github.com/olegiv/joewy-events/internal/share"
)

// EventSource is the read side of the event repository.
type EventSource interface {
	ListUpcoming(ctx context.Context) ([]model.EventSummary, error)
	GetByIDString(ctx context.Context, raw string) (model.Event, error)
}

// Site holds the site-wide settings the handlers need.
type Site struct {
	URL             string // Absolute base URL; empty derives it from the request
	Name            string
	Description     string
	Production      bool
	MarkdownDetails bool
}

// seoConfig resolves the base URL against the request when none is configured.
func (s Site) seoConfig(r *http.Request) *seo.SiteConfig {
	return &seo.SiteConfig{
		SiteName:        s.Name,
		SiteURL:         strings.TrimSuffix(share.AbsoluteURL(s.URL, r, "/"), "/"),
		SiteDescription: s.Description,
	}
}

// ListPageData is the data of the event list page.
type ListPageData struct {
	Events       []presenter.SummaryView
	EmptyMessage string
}

// DetailPageData is the data of the event detail page.
type DetailPageData struct {
	Event           presenter.EventView
	Share           share.Payload
	MarkdownDetails bool
}

// NotFoundPageData is the data of the not-found page.
type NotFoundPageData struct {
	Heading string
	Message string
}

// EventsHandler renders the event pages.
type EventsHandler struct {
	events    EventSource
	presenter *presenter.Presenter
	renderer  *render.Renderer
	site      Site
	logger    *slog.Logger
	now       func() time.Time
}

// NewEventsHandler creates a new events handler. A nil now uses time.Now.
func NewEventsHandler(events EventSource, p *presenter.Presenter, renderer *render.Renderer, site Site, logger *slog.Logger, now func() time.Time) *EventsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	if site.Name == "" {
		site.Name = p.ProductName()
	}
	if site.Description == "" {
		site.Description = ListDescription
	}
	return &EventsHandler{
		events:    events,
		presenter: p,
		renderer:  renderer,
		site:      site,
		logger:    logger,
		now:       now,
	}
}

// Index handles GET / by redirecting to the event list.
func (h *EventsHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, RouteEvents, http.StatusFound)
}

// List handles GET /event. A failed query is logged and rendered as the
// empty state.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListUpcoming(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list upcoming events", "error", err)
		events = nil
	}

	title := h.presenter.PageTitle(ListPageTitle, ListPageTitle)
	h.render(w, r, http.StatusOK, render.PageEventList, render.TemplateData{
		Title: title,
		Meta: seo.BuildMeta(&seo.PageData{
			Title:       title,
			Heading:     ListPageHeading,
			Description: ListDescription,
			Path:        RouteEvents,
		}, h.site.seoConfig(r)),
		Data: ListPageData{
			Events:       h.presenter.Summaries(events),
			EmptyMessage: EmptyStateMessage,
		},
	})
}

// Detail handles GET /event/{id}.
func (h *EventsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	e, ok := requireEvent(w, r, h.logger, rawID, h.events.GetByIDString, h.eventNotFound)
	if !ok {
		return
	}

	view := h.presenter.Event(e, h.now())
	title := h.presenter.PageTitle(e.Title, EventFallbackTitle)
	site := h.site.seoConfig(r)

	h.render(w, r, http.StatusOK, render.PageEventDetail, render.TemplateData{
		Title: title,
		Meta: seo.BuildMeta(&seo.PageData{
			Title:   title,
			Heading: e.Title,
			Body:    e.Details,
			Path:    view.URL,
		}, site),
		JSONLD: seo.BuildEventSchema(&seo.EventData{
			Title:        e.Title,
			Details:      e.Details,
			Start:        e.StartDatetime,
			End:          e.EndDatetime,
			Status:       e.Status,
			Location:     e.Location,
			Organizer:    e.Organizer,
			Participants: e.ParticipantsCount,
			Tags:         e.Tags,
			Path:         view.URL,
		}, site),
		Data: DetailPageData{
			Event:           view,
			Share:           share.NewPayload(e.Title, share.AbsoluteURL(h.site.URL, r, view.URL)),
			MarkdownDetails: h.site.MarkdownDetails,
		},
	})
}

// NotFound renders the generic 404 page for unknown routes.
func (h *EventsHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r, h.presenter.PageTitle("", NotFoundTitle))
}

// eventNotFound renders the 404 page for an unresolved event.
func (h *EventsHandler) eventNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r, h.presenter.PageTitle("", EventFallbackTitle))
}

func (h *EventsHandler) renderNotFound(w http.ResponseWriter, r *http.Request, title string) {
	h.render(w, r, http.StatusNotFound, render.PageNotFound, render.TemplateData{
		Title: title,
		Meta: seo.BuildMeta(&seo.PageData{
			Title:   title,
			NoIndex: true,
		}, h.site.seoConfig(r)),
		Data: NotFoundPageData{
			Heading: NotFoundHeading,
			Message: NotFoundMessage,
		},
	})
}

func (h *EventsHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data render.TemplateData) {
	data.Lang = h.presenter.Lang()
	data.SiteName = h.site.Name
	if err := h.renderer.Render(w, r, status, name, data); err != nil {
		logAndInternalError(r.Context(), h.logger, w, "failed to render template", "template", name, "error", err)
	}
}
