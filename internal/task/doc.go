// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package task provides the task model, the ordered task list and the
// pipe-delimited file form used to persist it.
//
// # Key Types
//
//   - Task: a todo, deadline or event, selected by Kind
//   - List: insertion-ordered tasks addressed by 0-based index
//   - Warning: a stored line skipped by Restore
//
// # Usage
//
// Build tasks and render them:
//
//	t, err := task.NewDeadline("return book", "2025-06-01 1800", "library")
//	fmt.Println(t) // [D][ ] return book #library (by: Jun 01 2025, 6:00 PM)
//
// Persist and reload a list:
//
//	lines := list.Lines()
//	restored, warnings := task.Restore(lines)
//
// # File Form
//
// One task per line, fields joined by " | ":
//
//	T | 1 | buy milk | groceries
//	D | 0 | submit report | 2025-01-10 1800
package task
