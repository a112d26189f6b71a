// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the root path.
	RouteRoot = "/"
	// RouteEvents is the upcoming events list.
	RouteEvents = "/event"
	// RouteParamID is the ID parameter pattern.
	RouteParamID = "/{id}"
	// RouteEventID is the event detail page.
	RouteEventID = RouteEvents + RouteParamID
	// RouteSuffixCalendar is the iCalendar export suffix.
	RouteSuffixCalendar = "/calendar.ics"
	// RouteEventCalendar is the iCalendar export of one event.
	RouteEventCalendar = RouteEventID + RouteSuffixCalendar

	// RouteAPI is the JSON API prefix.
	RouteAPI = "/api"
	// RouteAPIEvents is the JSON events collection, relative to RouteAPI.
	RouteAPIEvents = "/events"
	// RouteAPIEventID is one JSON event, relative to RouteAPI.
	RouteAPIEventID = RouteAPIEvents + RouteParamID

	// RouteShareErrors receives share failure beacons.
	RouteShareErrors = "/share/errors"

	// RouteHealth and its sub-routes report service health.
	RouteHealth      = "/health"
	RouteHealthLive  = RouteHealth + "/live"
	RouteHealthReady = RouteHealth + "/ready"

	// RouteRobots and RouteSitemap serve crawler files.
	RouteRobots  = "/robots.txt"
	RouteSitemap = "/sitemap.xml"

	// RouteStatic serves embedded assets.
	RouteStatic = "/static/*"
)

// Page copy.
const (
	ListPageTitle      = "Events"
	ListPageHeading    = "Upcoming Events"
	ListDescription    = "Upcoming events"
	EmptyStateMessage  = "No upcoming events"
	EventFallbackTitle = "Event"
	NotFoundTitle      = "Page Not Found"
	NotFoundHeading    = "Event not found"
	NotFoundMessage    = "The event you are looking for does not exist or is no longer available."
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
