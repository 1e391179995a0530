// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

import "fmt"

// ValueError is returned when a task cannot be constructed from the values
// it was given, e.g. a date that does not follow the yyyy-MM-dd HHmm pattern.
type ValueError struct {
	Field  string // "description", "due", "start", "end"
	Value  string // Value that was rejected
	Reason string // Human-readable reason
}

func (e *ValueError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// DecodeError is returned when a stored line cannot be turned back into a task.
type DecodeError struct {
	Line   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IndexError is returned for a collection access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}
