// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/buddy/internal/syntax"
)

// =============================================================================
// TASK KIND
// =============================================================================

// Kind selects the task variant.
type Kind int

const (
	KindTodo Kind = iota
	KindDeadline
	KindEvent
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Letter returns the single-letter type code shown in brackets and stored
// as the first field of the file form.
func (k Kind) Letter() string {
	switch k {
	case KindTodo:
		return syntax.TypeTodo
	case KindDeadline:
		return syntax.TypeDeadline
	case KindEvent:
		return syntax.TypeEvent
	default:
		return "?"
	}
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task is a todo, deadline or event. Only the fields of its Kind are set:
// Due for deadlines, Start and End for events.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Tag         string

	Due   time.Time
	Start time.Time
	End   time.Time
}

// =============================================================================
// TASK CREATION
// =============================================================================

// NewTodo creates a todo task.
func NewTodo(description, tag string) (Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindTodo, Description: description, Tag: NormalizeTag(tag)}, nil
}

// NewDeadline creates a deadline due at the yyyy-MM-dd HHmm time in due.
func NewDeadline(description, due, tag string) (Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return Task{}, err
	}
	dueAt, err := ParseDateTime("due", due)
	if err != nil {
		return Task{}, err
	}
	return Task{Kind: KindDeadline, Description: description, Due: dueAt, Tag: NormalizeTag(tag)}, nil
}

// NewEvent creates an event spanning start to end. The end is allowed to
// precede the start.
func NewEvent(description, start, end, tag string) (Task, error) {
	description, err := checkDescription(description)
	if err != nil {
		return Task{}, err
	}
	startAt, err := ParseDateTime("start", start)
	if err != nil {
		return Task{}, err
	}
	endAt, err := ParseDateTime("end", end)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Kind:        KindEvent,
		Description: description,
		Start:       startAt,
		End:         endAt,
		Tag:         NormalizeTag(tag),
	}, nil
}

func checkDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", &ValueError{Field: "description", Reason: "cannot be empty"}
	}
	return description, nil
}

// NormalizeTag trims the tag and strips one leading '#'. An empty result
// means the task has no tag.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, syntax.TagPrefix)
	return strings.TrimSpace(tag)
}

// =============================================================================
// TASK METHODS
// =============================================================================

// StatusIcon returns "X" for a done task and a single space otherwise.
func (t Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// HasTag reports whether the task carries a tag.
func (t Task) HasTag() bool {
	return t.Tag != ""
}

// String returns the display form, e.g.
// "[D][ ] return book #library (by: Jun 01 2025, 6:00 PM)".
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s][%s] %s", t.Kind.Letter(), t.StatusIcon(), t.Description)
	if t.HasTag() {
		b.WriteString(" " + syntax.TagPrefix + t.Tag)
	}

	switch t.Kind {
	case KindTodo:
	case KindDeadline:
		fmt.Fprintf(&b, " (by: %s)", FormatDisplay(t.Due))
	case KindEvent:
		fmt.Fprintf(&b, " (from: %s to: %s)", FormatDisplay(t.Start), FormatDisplay(t.End))
	}
	return b.String()
}

// OccursOn reports whether the task falls on the calendar date of date.
// Deadlines match their due date; events match every date from their start
// date to their end date inclusive. Todos never match.
func (t Task) OccursOn(date time.Time) bool {
	date = day(date)
	switch t.Kind {
	case KindDeadline:
		return day(t.Due).Equal(date)
	case KindEvent:
		return !day(t.Start).After(date) && !day(t.End).Before(date)
	default:
		return false
	}
}
