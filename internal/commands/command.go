// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// COMMAND KIND
// =============================================================================

// Kind identifies a command variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindList
	KindMark
	KindUnmark
	KindDelete
	KindTodo
	KindDeadline
	KindEvent
	KindFind
	KindBye
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindList:     "list",
	KindMark:     "mark",
	KindUnmark:   "unmark",
	KindDelete:   "delete",
	KindTodo:     "todo",
	KindDeadline: "deadline",
	KindEvent:    "event",
	KindFind:     "find",
	KindBye:      "bye",
}

// String returns the keyword of the command variant.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Mutates reports whether executing the command changes the task list.
func (k Kind) Mutates() bool {
	switch k {
	case KindMark, KindUnmark, KindDelete, KindTodo, KindDeadline, KindEvent:
		return true
	default:
		return false
	}
}

// =============================================================================
// COMMAND
// =============================================================================

// Command is one parsed input line. Only the fields used by its Kind are set.
type Command struct {
	Kind Kind

	// Index is the 0-based task index for mark, unmark and delete.
	// It is not bounds-checked until execution.
	Index int

	// Description, Tag and the raw date strings for todo, deadline and event.
	Description string
	Tag         string
	Due         string
	Start       string
	End         string

	// Term is the find keyword or yyyy-MM-dd date.
	Term string
}

// IsExit reports whether the command ends the session.
func (c Command) IsExit() bool {
	return c.Kind == KindBye
}
