// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package share

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/mileusna/useragent"
)

// maxReportBytes bounds a failure report body.
const maxReportBytes = 4 << 10

// ErrorReport is the beacon body sent by share.js when sharing fails.
type ErrorReport struct {
	Reason string `json:"reason"`
	URL    string `json:"url"`
}

// Handler receives share failure beacons.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a share handler.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// ReportError handles POST /share/errors. A failed share is never an error
// for the visitor, so every well-formed report is logged and acknowledged
// with 204 No Content.
func (h *Handler) ReportError(w http.ResponseWriter, r *http.Request) {
	if !acceptedReportType(r.Header.Get("Content-Type")) {
		http.Error(w, "Unsupported Media Type", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxReportBytes+1))
	if err != nil || len(body) > maxReportBytes {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var report ErrorReport
	if err := json.Unmarshal(body, &report); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ua := useragent.Parse(r.UserAgent())
	browser, os := ua.Name, ua.OS
	if browser == "" {
		browser = "Unknown"
	}
	if os == "" {
		os = "Unknown"
	}

	h.logger.WarnContext(r.Context(), "share action failed",
		"reason", truncate(report.Reason, 200),
		"url", truncate(report.URL, 500),
		"browser", browser,
		"os", os,
		"mobile", ua.Mobile,
	)

	w.WriteHeader(http.StatusNoContent)
}

// acceptedReportType reports whether a beacon body type is accepted.
// Browsers send beacons as text/plain; an absent type is treated the same.
func acceptedReportType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/plain" || mediaType == "application/json"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
