// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package syntax holds the delimiters, keywords and date layouts shared by
// the command parser and the task file codec. Both sides read from here so
// the write format and the read format cannot drift apart.
package syntax

// =============================================================================
// KEYWORDS
// =============================================================================

// Command keywords, matched case-sensitively against the first token.
const (
	KeywordList     = "list"
	KeywordMark     = "mark"
	KeywordUnmark   = "unmark"
	KeywordDelete   = "delete"
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordFind     = "find"
	KeywordBye      = "bye"
)

// =============================================================================
// COMMAND DELIMITERS
// =============================================================================

const (
	// ByDelimiter separates a deadline's description from its due time.
	ByDelimiter = " /by "

	// FromDelimiter separates an event's description from its start.
	FromDelimiter = " /from "

	// ToDelimiter separates an event's start from its end.
	ToDelimiter = " /to "

	// TagDelimiter introduces the optional trailing tag.
	TagDelimiter = " /tag "

	// TagPrefix is stripped from tag values and prepended on display.
	TagPrefix = "#"
)

// =============================================================================
// DATE LAYOUTS
// =============================================================================

const (
	// DateTimeLayout is the machine pattern yyyy-MM-dd HHmm used on input
	// and in the data file.
	DateTimeLayout = "2006-01-02 1504"

	// DateTimeExample is shown to users alongside DateTimeLayout errors.
	DateTimeExample = "2019-12-02 1800"

	// DisplayDateTimeLayout is the human pattern MMM dd yyyy, h:mm a.
	DisplayDateTimeLayout = "Jan 02 2006, 3:04 PM"

	// DateLayout is the yyyy-MM-dd pattern accepted and echoed by find.
	DateLayout = "2006-01-02"
)

// =============================================================================
// FILE FORM
// =============================================================================

const (
	// FieldDelimiter joins the fields of one stored task line.
	FieldDelimiter = " | "

	TypeTodo     = "T"
	TypeDeadline = "D"
	TypeEvent    = "E"

	DoneFlag    = "1"
	NotDoneFlag = "0"

	// Minimum field counts per stored line. One extra field is the tag.
	MinTaskFields     = 3
	MinDeadlineFields = 4
	MinEventFields    = 5
)
