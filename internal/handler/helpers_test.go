// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/joewy-events/internal/model"
	"github.com/olegiv/joewy-events/internal/presenter"
	"github.com/olegiv/joewy-events/internal/render"
	"github.com/olegiv/joewy-events/internal/store"
	"github.com/olegiv/joewy-events/internal/testutil"
	"github.com/olegiv/joewy-events/web"
)

// fakeSource is an EventSource with canned results.
type fakeSource struct {
	events  []model.EventSummary
	listErr error
	event   model.Event
	getErr  error
	gotID   string
}

func (f *fakeSource) ListUpcoming(context.Context) ([]model.EventSummary, error) {
	return f.events, f.listErr
}

func (f *fakeSource) GetByIDString(_ context.Context, raw string) (model.Event, error) {
	f.gotID = raw
	if f.getErr != nil {
		return model.Event{}, f.getErr
	}
	return f.event, nil
}

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	r, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Logger:      testutil.DiscardLogger(),
		Now:         func() time.Time { return testutil.ReferenceTime },
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return r
}

// newTestEventsHandler wires an EventsHandler over src and returns the log buffer.
func newTestEventsHandler(t *testing.T, src EventSource, site Site) (*EventsHandler, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := presenter.New(presenter.Config{ProductName: "Joewy"})
	h := NewEventsHandler(src, p, testRenderer(t), site, logger, func() time.Time { return testutil.ReferenceTime })
	return h, &buf
}

// newRepoSource returns a repository over a fresh test database.
func newRepoSource(t *testing.T) (*store.EventRepository, *sql.DB) {
	t.Helper()

	db := testutil.TestDB(t)
	repo := store.NewEventRepository(db, store.SQLite, func() time.Time { return testutil.ReferenceTime }, testutil.DiscardLogger())
	return repo, db
}

// serve routes req through a chi router so URL params resolve.
func serve(h *EventsHandler, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get(RouteRoot, h.Index)
	r.Get(RouteEvents, h.List)
	r.Get(RouteEventID, h.Detail)
	r.Get(RouteEventCalendar, h.Calendar)
	r.Get(RouteRobots, h.Robots)
	r.Get(RouteSitemap, h.Sitemap)
	r.NotFound(h.NotFound)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
