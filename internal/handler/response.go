// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/joewy-events/internal/store"
)

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	logger.ErrorContext(ctx, logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(ctx, logger, w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// LogLookupError logs a failed event lookup at a level matching its kind:
// unknown ids at DEBUG, undecodable rows at WARN and backend failures at ERROR.
func LogLookupError(ctx context.Context, logger *slog.Logger, rawID string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		logger.DebugContext(ctx, "event not found", "event_id", rawID)
	case errors.Is(err, store.ErrMalformedRecord):
		logger.WarnContext(ctx, "event record is malformed", "event_id", rawID, "error", err)
	default:
		logger.ErrorContext(ctx, "failed to fetch event", "event_id", rawID, "error", err)
	}
}

// requireEvent resolves the {id} route parameter. On failure it logs the
// error and calls notFound; every failure kind looks the same to the visitor.
func requireEvent[T any](
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	rawID string,
	queryFn func(ctx context.Context, rawID string) (T, error),
	notFound func(w http.ResponseWriter, r *http.Request),
) (T, bool) {
	var zero T
	entity, err := queryFn(r.Context(), rawID)
	if err != nil {
		LogLookupError(r.Context(), logger, rawID, err)
		notFound(w, r)
		return zero, false
	}
	return entity, true
}
