// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

import (
	"fmt"
	"strings"

	"github.com/jeranaias/buddy/internal/syntax"
)

// =============================================================================
// ENCODE
// =============================================================================

// Encode returns the file form of t:
//
//	T | 0 | read book
//	D | 1 | submit report | 2025-01-10 1800 | work
//	E | 0 | conference | 2025-03-01 0900 | 2025-03-03 1700
func Encode(t Task) string {
	flag := syntax.NotDoneFlag
	if t.Done {
		flag = syntax.DoneFlag
	}

	fields := []string{t.Kind.Letter(), flag, t.Description}
	switch t.Kind {
	case KindTodo:
	case KindDeadline:
		fields = append(fields, FormatDateTime(t.Due))
	case KindEvent:
		fields = append(fields, FormatDateTime(t.Start), FormatDateTime(t.End))
	}
	if t.HasTag() {
		fields = append(fields, t.Tag)
	}
	return strings.Join(fields, syntax.FieldDelimiter)
}

// =============================================================================
// DECODE
// =============================================================================

// Decode parses one line produced by Encode. The field after the required
// ones is the optional tag; a line with any further field is rejected as
// corrupt rather than having the extras ignored.
func Decode(line string) (Task, error) {
	parts := strings.Split(line, syntax.FieldDelimiter)
	if len(parts) < syntax.MinTaskFields {
		return Task{}, &DecodeError{Line: line, Reason: "invalid file format: too few fields"}
	}

	var done bool
	switch parts[1] {
	case syntax.DoneFlag:
		done = true
	case syntax.NotDoneFlag:
		done = false
	default:
		return Task{}, &DecodeError{Line: line, Reason: fmt.Sprintf("invalid done flag %q", parts[1])}
	}

	var (
		t   Task
		err error
		min int
	)
	switch parts[0] {
	case syntax.TypeTodo:
		min = syntax.MinTaskFields
		t, err = NewTodo(parts[2], tagField(parts, min))
	case syntax.TypeDeadline:
		min = syntax.MinDeadlineFields
		if len(parts) < min {
			return Task{}, &DecodeError{Line: line, Reason: "invalid deadline format"}
		}
		t, err = NewDeadline(parts[2], parts[3], tagField(parts, min))
	case syntax.TypeEvent:
		min = syntax.MinEventFields
		if len(parts) < min {
			return Task{}, &DecodeError{Line: line, Reason: "invalid event format"}
		}
		t, err = NewEvent(parts[2], parts[3], parts[4], tagField(parts, min))
	default:
		return Task{}, &DecodeError{Line: line, Reason: fmt.Sprintf("unknown task type %q", parts[0])}
	}
	if err != nil {
		return Task{}, &DecodeError{Line: line, Reason: "invalid " + parts[0] + " fields", Err: err}
	}
	if len(parts) > min+1 {
		return Task{}, &DecodeError{Line: line, Reason: "invalid file format: too many fields"}
	}

	t.Done = done
	return t, nil
}

// tagField returns the optional field that follows the required ones.
func tagField(parts []string, min int) string {
	if len(parts) > min {
		return parts[min]
	}
	return ""
}

// =============================================================================
// RESTORE
// =============================================================================

// Warning describes a stored line that was skipped during Restore.
type Warning struct {
	LineNo int // 1-based line number in the input
	Text   string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("skipping corrupted line %d (%q): %v", w.LineNo, w.Text, w.Err)
}

// Restore rebuilds a list from stored lines. Blank lines are ignored and
// lines that fail to decode are skipped with a Warning; Restore never fails.
func Restore(lines []string) (*List, []Warning) {
	list := NewList()
	var warnings []Warning
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := Decode(line)
		if err != nil {
			warnings = append(warnings, Warning{LineNo: i + 1, Text: line, Err: err})
			continue
		}
		list.Add(t)
	}
	return list, warnings
}
