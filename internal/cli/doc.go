// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the buddy command-line front end.
//
// It parses process flags, sets up the event log, renders the help page
// with glamour, and runs the line REPL: a liner-backed LineReader feeds a
// session.Session and a Renderer draws each response as a lipgloss box.
//
// # Exit Codes
//
//   - 0: success
//   - 1: general error
//   - 2: usage error (unknown flag, missing value)
//   - 3: configuration error
package cli
