// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package presenter

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// detailsSanitizer strips scripts, event handlers and other unsafe markup
// from rendered Markdown details.
var detailsSanitizer = bluemonday.UGCPolicy()

// DetailsHTML renders event details. Plain text is escaped and keeps its line
// breaks through the pre-wrap container; Markdown is converted and sanitized.
func (p *Presenter) DetailsHTML(details string) template.HTML {
	if details == "" {
		return ""
	}
	if !p.cfg.MarkdownNotes {
		return template.HTML(template.HTMLEscapeString(details))
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(details), &buf); err != nil {
		slog.Warn("rendering event details as markdown failed", "error", err)
		return template.HTML(template.HTMLEscapeString(details))
	}
	return template.HTML(detailsSanitizer.SanitizeBytes(buf.Bytes()))
}
