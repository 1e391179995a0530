// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands parses input lines into typed commands and executes
// them against a task list.
//
// # Grammar
//
//	list
//	mark <n> | unmark <n> | delete <n>
//	todo <desc> [/tag <t>]
//	deadline <desc> /by <yyyy-MM-dd HHmm> [/tag <t>]
//	event <desc> /from <yyyy-MM-dd HHmm> /to <yyyy-MM-dd HHmm> [/tag <t>]
//	find <yyyy-MM-dd | keyword>
//	bye
//
// # Usage
//
//	cmd, err := commands.Parse("deadline return book /by 2025-06-01 1800")
//	if err != nil {
//	    // *commands.ParseError
//	}
//	exec := commands.NewExecutor(list, store)
//	result, err := exec.Execute(cmd)
//
// Execute returns *TaskNotFoundError for bad task numbers and *task.ValueError
// for bad dates. A failed save does not undo the change; it is reported in
// Result.SaveErr.
package commands
