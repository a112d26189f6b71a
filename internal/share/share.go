// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package share builds the payload for the event share control and receives
// failure reports from the browser. Sharing itself runs client side
// (web/static/share.js): the Web Share API when available, otherwise a
// clipboard copy of the URL followed by a confirmation alert.
package share

import (
	"net/http"
	"strings"
)

// TextPrefix precedes the event title in the shared text.
const TextPrefix = "Check out this event: "

// Payload is the {title, text, url} triple handed to navigator.share.
type Payload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// NewPayload builds the share payload for an event page.
func NewPayload(title, pageURL string) Payload {
	return Payload{
		Title: title,
		Text:  TextPrefix + title,
		URL:   pageURL,
	}
}

// AbsoluteURL resolves path against the configured site URL. Without one it
// falls back to the scheme and host of the request.
func AbsoluteURL(siteURL string, r *http.Request, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if siteURL != "" {
		return strings.TrimSuffix(siteURL, "/") + path
	}
	if r == nil || r.Host == "" {
		return path
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd == "https" || fwd == "http" {
		scheme = fwd
	}
	return scheme + "://" + r.Host + path
}
