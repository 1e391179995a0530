// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session runs one interactive buddy session: it restores the task
// list from storage, handles input one line at a time, and turns every
// outcome into a render-neutral Response.
//
// Both the line REPL and the full-screen front end drive a Session, so
// each sees the same messages and the same event log.
package session
