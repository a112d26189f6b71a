// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/joewy-events/internal/seo"
	"github.com/olegiv/joewy-events/internal/share"
)

// Robots handles GET /robots.txt.
func (h *EventsHandler) Robots(w http.ResponseWriter, r *http.Request) {
	siteURL := share.AbsoluteURL(h.site.URL, r, "/")
	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(seo.GenerateRobots(siteURL, h.site.Production)))
}

// Sitemap handles GET /sitemap.xml. Only upcoming events are listed.
func (h *EventsHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListUpcoming(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list events for sitemap", "error", err)
		events = nil
	}

	entries := make([]seo.SitemapEvent, 0, len(events))
	for _, e := range events {
		entries = append(entries, seo.SitemapEvent{ID: e.ID})
	}

	siteURL := share.AbsoluteURL(h.site.URL, r, "/")
	body, err := seo.GenerateSitemap(siteURL, entries)
	if err != nil {
		logAndInternalError(r.Context(), h.logger, w, "failed to build sitemap", "error", err)
		return
	}

	w.Header().Set(HeaderContentType, "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}
