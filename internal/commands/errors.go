// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "fmt"

// ParseError is returned when an input line has the wrong shape for its
// keyword. Message is shown to the user as-is.
type ParseError struct {
	Keyword string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// TaskNotFoundError is returned when a task number is outside [1, Count].
type TaskNotFoundError struct {
	Number int // 1-based number the user typed
	Count  int // Number of tasks in the list
}

func (e *TaskNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("Task number %d does not exist. The list is empty.", e.Number)
	}
	return fmt.Sprintf("Task number %d does not exist. Pick a number from 1 to %d.", e.Number, e.Count)
}

// SaveError reports that a mutation was applied in memory but could not be
// written to storage.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("error saving tasks: %v", e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
