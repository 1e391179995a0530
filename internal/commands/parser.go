// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"
	"strings"

	"github.com/jeranaias/buddy/internal/syntax"
	"github.com/jeranaias/buddy/internal/task"
)

// =============================================================================
// PARSER
// =============================================================================

var builtin = NewRegistry()

// Parse turns one input line into a Command using the built-in keywords.
func Parse(line string) (Command, error) {
	return builtin.Parse(line)
}

// Builtin returns the registry used by Parse.
func Builtin() *Registry {
	return builtin
}

// Parse turns one input line into a Command. The keyword is the text before
// the first space of the trimmed line.
func (r *Registry) Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	keyword := ExtractKeyword(trimmed)

	def := r.Get(keyword)
	if def == nil {
		return Command{}, &ParseError{Keyword: keyword, Message: "unrecognized command"}
	}
	return def.parse(trimmed[len(keyword):])
}

// ExtractKeyword returns the text before the first space of the trimmed
// input, or the whole trimmed input when it has no space.
func ExtractKeyword(input string) string {
	input = strings.TrimSpace(input)
	if i := strings.IndexByte(input, ' '); i >= 0 {
		return input[:i]
	}
	return input
}

// =============================================================================
// KEYWORD PARSERS
// =============================================================================

func indexParser(kind Kind, keyword string) func(string) (Command, error) {
	return func(rest string) (Command, error) {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return Command{}, &ParseError{Keyword: keyword, Message: "invalid task number"}
		}
		return Command{Kind: kind, Index: n - 1}, nil
	}
}

func parseTodo(rest string) (Command, error) {
	content, tag, err := splitTag(syntax.KeywordTodo, strings.TrimSpace(rest))
	if err != nil {
		return Command{}, err
	}
	if content == "" {
		return Command{}, &ParseError{Keyword: syntax.KeywordTodo, Message: "todo needs a description"}
	}
	if err := checkText(syntax.KeywordTodo, content); err != nil {
		return Command{}, err
	}
	return Command{Kind: KindTodo, Description: content, Tag: tag}, nil
}

func parseDeadline(rest string) (Command, error) {
	content, tag, err := splitTag(syntax.KeywordDeadline, strings.TrimSpace(rest))
	if err != nil {
		return Command{}, err
	}

	description, due, found := cut(content, syntax.ByDelimiter)
	if !found {
		return Command{}, &ParseError{
			Keyword: syntax.KeywordDeadline,
			Message: "deadline format: deadline <desc> /by <time>",
		}
	}
	if description == "" || due == "" {
		return Command{}, &ParseError{
			Keyword: syntax.KeywordDeadline,
			Message: "deadline needs a description and a time",
		}
	}
	if err := checkText(syntax.KeywordDeadline, description); err != nil {
		return Command{}, err
	}
	return Command{Kind: KindDeadline, Description: description, Due: due, Tag: tag}, nil
}

func parseEvent(rest string) (Command, error) {
	content, tag, err := splitTag(syntax.KeywordEvent, strings.TrimSpace(rest))
	if err != nil {
		return Command{}, err
	}

	padded := " " + content + " "
	from := strings.Index(padded, syntax.FromDelimiter)
	to := strings.Index(padded, syntax.ToDelimiter)
	if from < 0 || to < 0 || to < from {
		return Command{}, &ParseError{
			Keyword: syntax.KeywordEvent,
			Message: "event format: event <desc> /from <start> /to <end>",
		}
	}

	// The delimiters share their padding spaces, so "/from /to" leaves the
	// start segment empty rather than overlapping.
	fromEnd := from + len(syntax.FromDelimiter)
	var start string
	if to >= fromEnd {
		start = strings.TrimSpace(padded[fromEnd:to])
	}
	description := strings.TrimSpace(padded[:from])
	end := strings.TrimSpace(padded[to+len(syntax.ToDelimiter):])

	if description == "" || start == "" || end == "" {
		return Command{}, &ParseError{
			Keyword: syntax.KeywordEvent,
			Message: "event needs a description, a start and an end",
		}
	}
	if err := checkText(syntax.KeywordEvent, description); err != nil {
		return Command{}, err
	}
	return Command{Kind: KindEvent, Description: description, Start: start, End: end, Tag: tag}, nil
}

func parseFind(rest string) (Command, error) {
	term := strings.TrimSpace(rest)
	if term == "" {
		return Command{}, &ParseError{Keyword: syntax.KeywordFind, Message: "find needs a keyword or date"}
	}
	return Command{Kind: KindFind, Term: term}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// cut splits content around the first occurrence of delim. The content is
// padded with a space on each side so a delimiter at either edge still
// matches and leaves an empty segment.
func cut(content, delim string) (before, after string, found bool) {
	padded := " " + content + " "
	i := strings.Index(padded, delim)
	if i < 0 {
		return strings.TrimSpace(content), "", false
	}
	return strings.TrimSpace(padded[:i]), strings.TrimSpace(padded[i+len(delim):]), true
}

// splitTag strips the trailing "/tag <value>" segment from content. It runs
// before any command-specific delimiter is looked at.
func splitTag(keyword, content string) (rest, tag string, err error) {
	rest, raw, found := cut(content, syntax.TagDelimiter)
	if !found {
		return rest, "", nil
	}
	if _, _, again := cut(raw, syntax.TagDelimiter); again {
		return "", "", &ParseError{Keyword: keyword, Message: "only one tag allowed"}
	}
	tag = task.NormalizeTag(raw)
	if tag == "" {
		return "", "", &ParseError{Keyword: keyword, Message: "tag cannot be empty"}
	}
	if err := checkText(keyword, tag); err != nil {
		return "", "", err
	}
	return rest, tag, nil
}

// checkText rejects text that would split into extra fields when stored: the
// field delimiter itself, or a "|" at either edge where it meets a delimiter.
func checkText(keyword, text string) error {
	if strings.Contains(text, syntax.FieldDelimiter) ||
		strings.HasPrefix(text, "|") || strings.HasSuffix(text, "|") {
		return &ParseError{Keyword: keyword, Message: pipeMessage}
	}
	return nil
}

const pipeMessage = `text cannot contain " | " or start or end with "|"`
