// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Launch Party", "launch-party"},
		{"with special characters", "Board Games & Pizza!", "board-games-pizza"},
		{"with numbers", "Meetup 42", "meetup-42"},
		{"with accents", "Café Soirée", "cafe-soiree"},
		{"with multiple spaces", "Hello   World", "hello-world"},
		{"with tabs and newlines", "Hello\tWorld\n", "hello-world"},
		{"with hyphens", "Hello - World", "hello-world"},
		{"with leading/trailing spaces", "  Hello World  ", "hello-world"},
		{"all special characters", "!@#$%^&*()", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugify_MaxLength(t *testing.T) {
	got := Slugify(strings.Repeat("word ", 30))

	if len(got) > MaxSlugLength {
		t.Errorf("len(Slugify) = %d, want <= %d", len(got), MaxSlugLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Slugify = %q, should not end with a hyphen", got)
	}
}

func TestEventFilename(t *testing.T) {
	tests := []struct {
		title string
		id    int64
		ext   string
		want  string
	}{
		{"Launch Party", 7, ".ics", "launch-party.ics"},
		{"Launch Party", 7, "ics", "launch-party.ics"},
		{"!!!", 7, ".ics", "event-7.ics"},
		{"", 12, ".ics", "event-12.ics"},
		{"Notes", 1, "", "notes"},
	}

	for _, tt := range tests {
		if got := EventFilename(tt.title, tt.id, tt.ext); got != tt.want {
			t.Errorf("EventFilename(%q, %d, %q) = %q, want %q", tt.title, tt.id, tt.ext, got, tt.want)
		}
	}
}
