// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/testutil"
)

func TestRobots(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		want       string
	}{
		{"production", true, "Sitemap: https://events.example.com/sitemap.xml"},
		{"development", false, "Disallow: /\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestEventsHandler(t, &fakeSource{}, Site{URL: "https://events.example.com", Production: tt.production})
			rec := serve(h, httptest.NewRequest(http.MethodGet, RouteRobots, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestSitemap(t *testing.T) {
	src := &fakeSource{events: []model.EventSummary{
		{ID: 5, Title: "A", StartDatetime: testutil.ReferenceTime, EndDatetime: testutil.ReferenceTime.Add(time.Hour)},
	}}
	h, _ := newTestEventsHandler(t, src, Site{})

	req := httptest.NewRequest(http.MethodGet, RouteSitemap, nil)
	req.Host = "events.local"
	rec := serve(h, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<loc>http://events.local/event</loc>",
		fmt.Sprintf("<loc>http://events.local/event/%d</loc>", 5),
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
}
