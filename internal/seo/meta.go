// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package seo provides SEO utilities for building meta tags, structured data,
// robots.txt and sitemaps.
package seo

import (
	"encoding/json"
	"html/template"
	"strings"
	"time"
)

// Meta holds all SEO meta tag data for a page.
type Meta struct {
	Title         string // Page title (for <title> tag)
	Description   string // Meta description
	Canonical     string // Canonical URL
	OGTitle       string // Open Graph title
	OGDescription string // Open Graph description
	OGType        string // Open Graph type (website, article)
	OGSiteName    string // Open Graph site name
	OGURL         string // Open Graph URL
	Robots        string // Robots directive (index,follow / noindex,nofollow)
	TwitterCard   string // Twitter card type
}

// PageData contains page information for building meta tags.
type PageData struct {
	Title       string // Full <title>, already suffixed with the product name
	Heading     string // Bare page heading used for Open Graph
	Description string
	Body        string // Fallback source for the description
	Path        string // Site-relative path, e.g. /event/7
	NoIndex     bool
	NoFollow    bool
}

// SiteConfig contains site-wide settings for SEO.
type SiteConfig struct {
	SiteName        string
	SiteURL         string
	SiteDescription string
}

// BuildMeta creates a Meta struct from page and site data with proper fallbacks.
func BuildMeta(page *PageData, site *SiteConfig) *Meta {
	meta := &Meta{
		OGType:      "website",
		TwitterCard: "summary",
		OGSiteName:  site.SiteName,
	}

	if page == nil {
		meta.Title = site.SiteName
		meta.OGTitle = site.SiteName
		meta.Description = site.SiteDescription
		meta.OGDescription = site.SiteDescription
		meta.Canonical = site.SiteURL
		meta.OGURL = site.SiteURL
		meta.Robots = "index,follow"
		return meta
	}

	meta.Title = page.Title
	if meta.Title == "" {
		meta.Title = site.SiteName
	}
	meta.OGTitle = page.Heading
	if meta.OGTitle == "" {
		meta.OGTitle = meta.Title
	}

	// Description: explicit → truncated body → site description
	switch {
	case page.Description != "":
		meta.Description = page.Description
	case page.Body != "":
		meta.Description = truncateText(stripHTML(page.Body), 160)
	default:
		meta.Description = site.SiteDescription
	}
	meta.OGDescription = meta.Description

	if page.Path != "" {
		meta.Canonical = makeAbsoluteURL(page.Path, site.SiteURL)
		meta.OGType = "article"
	}
	meta.OGURL = meta.Canonical
	meta.Robots = buildRobotsDirective(page.NoIndex, page.NoFollow)

	return meta
}

// buildRobotsDirective creates the robots meta content from noindex/nofollow flags.
func buildRobotsDirective(noIndex, noFollow bool) string {
	var parts []string

	if noIndex {
		parts = append(parts, "noindex")
	} else {
		parts = append(parts, "index")
	}

	if noFollow {
		parts = append(parts, "nofollow")
	} else {
		parts = append(parts, "follow")
	}

	return strings.Join(parts, ",")
}

// EventSchema represents JSON-LD Event structured data.
type EventSchema struct {
	Context     string          `json:"@context"`
	Type        string          `json:"@type"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate,omitempty"`
	EventStatus string          `json:"eventStatus,omitempty"`
	URL         string          `json:"url,omitempty"`
	Location    *PlaceSchema    `json:"location,omitempty"`
	Organizer   *PersonSchema   `json:"organizer,omitempty"`
	Keywords    string          `json:"keywords,omitempty"`
	Attendance  *QuantitySchema `json:"maximumAttendeeCapacity,omitempty"`
}

// PlaceSchema represents JSON-LD Place structured data.
type PlaceSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// PersonSchema represents JSON-LD Person structured data.
type PersonSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// QuantitySchema wraps an integer count.
type QuantitySchema struct {
	Type  string `json:"@type"`
	Value int    `json:"value"`
}

// EventData contains the event fields published as structured data.
type EventData struct {
	Title        string
	Details      string
	Start        time.Time
	End          time.Time
	Status       string
	Location     string
	Organizer    string
	Participants int
	Tags         []string
	Path         string
}

// schema.org EventStatusType values keyed by lower-case stored status.
var eventStatusTypes = map[string]string{
	"confirmed": "https://schema.org/EventScheduled",
	"tentative": "https://schema.org/EventPostponed",
	"cancelled": "https://schema.org/EventCancelled",
}

// BuildEventSchema creates JSON-LD Event structured data.
func BuildEventSchema(ev *EventData, site *SiteConfig) template.JS {
	if ev == nil {
		return ""
	}

	schema := EventSchema{
		Context:     "https://schema.org",
		Type:        "Event",
		Name:        ev.Title,
		Description: truncateText(stripHTML(ev.Details), 300),
		StartDate:   ev.Start.UTC().Format(time.RFC3339),
		EventStatus: eventStatusTypes[strings.ToLower(ev.Status)],
		Keywords:    strings.Join(ev.Tags, ", "),
	}
	if !ev.End.IsZero() {
		schema.EndDate = ev.End.UTC().Format(time.RFC3339)
	}
	if ev.Path != "" {
		schema.URL = makeAbsoluteURL(ev.Path, site.SiteURL)
	}
	if ev.Location != "" {
		schema.Location = &PlaceSchema{Type: "Place", Name: ev.Location}
	}
	if ev.Organizer != "" {
		schema.Organizer = &PersonSchema{Type: "Person", Name: ev.Organizer}
	}
	if ev.Participants > 0 {
		schema.Attendance = &QuantitySchema{Type: "QuantitativeValue", Value: ev.Participants}
	}

	return marshalJSONLD(schema)
}

// marshalJSONLD marshals structured data to JSON-LD script tag content.
func marshalJSONLD(v any) template.JS {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return template.JS(data)
}

// Helper functions

// stripHTML removes HTML tags from a string.
func stripHTML(html string) string {
	var result strings.Builder
	inTag := false
	for _, r := range html {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// truncateText truncates text to maxLen bytes at a word boundary.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxLen {
		return text
	}

	truncated := strings.ToValidUTF8(text[:maxLen], "")
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLen/2 {
		truncated = truncated[:lastSpace]
	}

	return strings.TrimSpace(truncated) + "..."
}

// makeAbsoluteURL ensures a URL is absolute by prepending site URL if needed.
func makeAbsoluteURL(url, siteURL string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	siteURL = strings.TrimSuffix(siteURL, "/")
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	return siteURL + url
}
