// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"encoding/xml"
	"strconv"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqHourly ChangeFreq = "hourly"
	ChangeFreqDaily  ChangeFreq = "daily"
	ChangeFreqWeekly ChangeFreq = "weekly"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapEvent contains data needed to add an event page to the sitemap.
type SitemapEvent struct {
	ID        int64
	CreatedAt time.Time
}

// SitemapBuilder builds sitemap XML for the event pages.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddEventList adds the upcoming events list page.
func (b *SitemapBuilder) AddEventList() {
	b.urls = append(b.urls, SitemapURL{
		Loc:        makeAbsoluteURL("/event", b.siteURL),
		ChangeFreq: ChangeFreqHourly,
		Priority:   "1.0",
	})
}

// AddEvent adds an event detail page.
func (b *SitemapBuilder) AddEvent(ev SitemapEvent) {
	url := SitemapURL{
		Loc:        makeAbsoluteURL("/event/"+strconv.FormatInt(ev.ID, 10), b.siteURL),
		ChangeFreq: ChangeFreqDaily,
		Priority:   "0.8",
	}
	if !ev.CreatedAt.IsZero() {
		url.LastMod = ev.CreatedAt.UTC().Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddEvents adds multiple event pages.
func (b *SitemapBuilder) AddEvents(events []SitemapEvent) {
	for _, ev := range events {
		b.AddEvent(ev)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap is a convenience function to generate a sitemap of the
// list page and the given events.
func GenerateSitemap(siteURL string, events []SitemapEvent) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL)
	builder.AddEventList()
	builder.AddEvents(events)
	return builder.Build()
}
