// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

import (
	"strings"
	"time"

	"github.com/jeranaias/buddy/internal/syntax"
)

// ParseDateTime parses s with the machine layout yyyy-MM-dd HHmm.
// field names the value in the returned *ValueError.
func ParseDateTime(field, s string) (time.Time, error) {
	t, err := time.Parse(syntax.DateTimeLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ValueError{
			Field:  field,
			Value:  s,
			Reason: "use yyyy-MM-dd HHmm (e.g., " + syntax.DateTimeExample + ")",
		}
	}
	return t, nil
}

// FormatDateTime renders t in the machine layout used by the data file.
func FormatDateTime(t time.Time) string {
	return t.Format(syntax.DateTimeLayout)
}

// FormatDisplay renders t for humans, e.g. "Jun 01 2025, 6:00 PM".
func FormatDisplay(t time.Time) string {
	return t.Format(syntax.DisplayDateTimeLayout)
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(syntax.DateLayout, strings.TrimSpace(s))
}

// day truncates t to its calendar date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
