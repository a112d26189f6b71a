// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/store"
	"github.com/olegiv/joewy-events/internal/testutil"
)

func TestIndex_RedirectsToList(t *testing.T) {
	h, _ := newTestEventsHandler(t, &fakeSource{}, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != RouteEvents {
		t.Errorf("Location = %q, want %q", loc, RouteEvents)
	}
}

func TestList_RendersUpcomingEventsInOrder(t *testing.T) {
	repo, db := newRepoSource(t)
	ref := testutil.ReferenceTime

	testutil.InsertEvent(t, db, testutil.Event("Later Meetup", ref.Add(72*time.Hour)))
	testutil.InsertEvent(t, db, testutil.Event("Sooner Workshop", ref.Add(24*time.Hour)))
	testutil.InsertEvent(t, db, testutil.Event("Last Week", ref.Add(-7*24*time.Hour)))

	h, _ := newTestEventsHandler(t, repo, Site{})
	rec := serve(h, httptest.NewRequest(http.MethodGet, RouteEvents, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()

	if !strings.Contains(body, "<title>Events | Joewy</title>") {
		t.Errorf("body missing page title")
	}
	if !strings.Contains(body, ListPageHeading) {
		t.Errorf("body missing heading %q", ListPageHeading)
	}
	sooner := strings.Index(body, "Sooner Workshop")
	later := strings.Index(body, "Later Meetup")
	if sooner < 0 || later < 0 {
		t.Fatalf("body missing upcoming events")
	}
	if sooner > later {
		t.Error("events not ordered by start time")
	}
	if strings.Contains(body, "Last Week") {
		t.Error("ended event should not be listed")
	}
}

func TestList_EmptyState(t *testing.T) {
	h, _ := newTestEventsHandler(t, &fakeSource{}, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, RouteEvents, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), EmptyStateMessage) {
		t.Errorf("body missing %q", EmptyStateMessage)
	}
}

func TestList_BackendErrorRendersEmptyState(t *testing.T) {
	src := &fakeSource{listErr: &store.BackendError{Op: "list upcoming events", Err: errors.New("connection refused")}}
	h, logs := newTestEventsHandler(t, src, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, RouteEvents, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), EmptyStateMessage) {
		t.Errorf("body missing %q", EmptyStateMessage)
	}
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("logs = %q, want an ERROR entry", logs.String())
	}
}

func TestDetail_RendersEvent(t *testing.T) {
	repo, db := newRepoSource(t)
	e := testutil.Event("Launch Party", testutil.ReferenceTime.Add(48*time.Hour))
	e.Recurrence = "FREQ=WEEKLY"
	id := testutil.InsertEvent(t, db, e)

	h, _ := newTestEventsHandler(t, repo, Site{URL: "https://events.example.com"})
	rec := serve(h, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/event/%d", id), nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()

	for _, want := range []string{
		"<title>Launch Party | Joewy</title>",
		"Community Hall",
		"Joewy Team",
		"12 people",
		"community",
		fmt.Sprintf("https://events.example.com/event/%d", id),
		"application/ld+json",
		"/static/share.js",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDetail_ShareURLIsAbsolutePageURL(t *testing.T) {
	tests := []struct {
		name  string
		site  Site
		host  string
		proto string
		want  string
	}{
		{"configured site URL", Site{URL: "https://events.example.com"}, "internal:8080", "", "https://events.example.com/event/7"},
		{"request host", Site{}, "events.local", "", "http://events.local/event/7"},
		{"forwarded https", Site{}, "events.local", "https", "https://events.local/event/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{event: model.Event{
				ID:            7,
				Title:         "Launch Party",
				StartDatetime: testutil.ReferenceTime,
				EndDatetime:   testutil.ReferenceTime.Add(time.Hour),
			}}
			h, _ := newTestEventsHandler(t, src, tt.site)

			req := httptest.NewRequest(http.MethodGet, "/event/7", nil)
			req.Host = tt.host
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rec := serve(h, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			body := rec.Body.String()
			// The clipboard fallback copies exactly this value.
			if want := `data-share-url="` + tt.want + `"`; !strings.Contains(body, want) {
				t.Errorf("body missing %q", want)
			}
			if want := `data-share-text="Check out this event: Launch Party"`; !strings.Contains(body, want) {
				t.Errorf("body missing %q", want)
			}
		})
	}
}

func TestDetail_BlankTitleUsesFallback(t *testing.T) {
	src := &fakeSource{event: model.Event{
		ID:            3,
		StartDatetime: testutil.ReferenceTime,
		EndDatetime:   testutil.ReferenceTime.Add(time.Hour),
	}}
	h, _ := newTestEventsHandler(t, src, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/event/3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "<title>Event | Joewy</title>") {
		t.Errorf("body missing fallback title")
	}
	if src.gotID != "3" {
		t.Errorf("looked up id %q, want %q", src.gotID, "3")
	}
}

func TestDetail_NotFound(t *testing.T) {
	repo, _ := newRepoSource(t)
	h, _ := newTestEventsHandler(t, repo, Site{})

	for _, path := range []string{"/event/999", "/event/abc", "/event/0", "/event/-4"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))

			if rec.Code != http.StatusNotFound {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
			}
			if !strings.Contains(rec.Body.String(), NotFoundHeading) {
				t.Errorf("body missing %q", NotFoundHeading)
			}
		})
	}
}

func TestDetail_MalformedRecordIsNotFound(t *testing.T) {
	repo, db := newRepoSource(t)
	res, err := db.Exec(`INSERT INTO calendar (title, start_datetime, end_datetime) VALUES (?, ?, ?)`,
		"Broken", "not-a-date", "2099-01-01 00:00:00")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id, _ := res.LastInsertId()

	h, logs := newTestEventsHandler(t, repo, Site{})
	rec := serve(h, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/event/%d", id), nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Errorf("logs = %q, want a WARN entry", logs.String())
	}
}

func TestDetail_BackendErrorIsNotFound(t *testing.T) {
	src := &fakeSource{getErr: &store.BackendError{Op: "get event", Err: errors.New("timeout")}}
	h, logs := newTestEventsHandler(t, src, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/event/1", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("logs = %q, want an ERROR entry", logs.String())
	}
}

func TestNotFound_UnknownRoute(t *testing.T) {
	h, _ := newTestEventsHandler(t, &fakeSource{}, Site{})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "noindex") {
		t.Error("404 page should not be indexed")
	}
}

func TestLogLookupError_Levels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"not found", store.ErrNotFound, "level=DEBUG"},
		{"malformed", fmt.Errorf("%w: bad", store.ErrMalformedRecord), "level=WARN"},
		{"backend", &store.BackendError{Op: "get", Err: errors.New("down")}, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, logs := newTestEventsHandler(t, &fakeSource{}, Site{})
			LogLookupError(httptest.NewRequest(http.MethodGet, "/", nil).Context(), h.logger, "1", tt.err)
			if !strings.Contains(logs.String(), tt.level) {
				t.Errorf("logs = %q, want %s", logs.String(), tt.level)
			}
		})
	}
}
