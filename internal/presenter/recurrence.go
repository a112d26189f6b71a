// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package presenter

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/olegiv/joewy-events/internal/model"
)

// maxOccurrenceScan bounds how many occurrences NextOccurrence walks from
// DTSTART before giving up.
const maxOccurrenceScan = 20000

// RecurrenceRule returns the event's recurrence as a bare RRULE value
// ("FREQ=WEEKLY;BYDAY=MO") when it parses as one. Free-text descriptors
// such as "every other week" and sub-daily frequencies yield "".
func RecurrenceRule(recurrence string) string {
	s := strings.TrimSpace(recurrence)
	if len(s) >= len("RRULE:") && strings.EqualFold(s[:len("RRULE:")], "RRULE:") {
		s = s[len("RRULE:"):]
	}
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	opt, err := rrule.StrToROption(s)
	if err != nil || opt.Freq > rrule.DAILY {
		return ""
	}
	return s
}

// NextOccurrence returns the first start at or after now for a recurring
// event, or the zero time when the event does not recur by a valid rule or
// the next start lies beyond maxOccurrenceScan occurrences.
func NextOccurrence(e model.Event, now time.Time) time.Time {
	rule := RecurrenceRule(e.Recurrence)
	if rule == "" {
		return time.Time{}
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return time.Time{}
	}
	r.DTStart(e.StartDatetime)

	next := r.Iterator()
	for range maxOccurrenceScan {
		t, ok := next()
		if !ok {
			return time.Time{}
		}
		if !t.Before(now) {
			return t
		}
	}
	return time.Time{}
}
