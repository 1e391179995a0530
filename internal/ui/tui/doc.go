// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tui provides the full-screen buddy front end built on bubbletea.
//
// A scrolling viewport shows the transcript of commands and replies and a
// text input at the bottom takes the next command. Each command is handed
// to the same session.Session the line REPL uses.
package tui
