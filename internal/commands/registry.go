// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	"github.com/jeranaias/buddy/internal/syntax"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Definition describes one keyword of the command grammar.
type Definition struct {
	// Keyword is the first token of the input line (e.g., "deadline")
	Keyword string

	// Kind is the command variant produced by this keyword
	Kind Kind

	// Usage shows argument syntax (e.g., "mark <n>")
	Usage string

	// Description is shown in help
	Description string

	// parse turns the text after the keyword into a Command
	parse func(rest string) (Command, error)
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry maps keywords to their definitions.
type Registry struct {
	defs  map[string]*Definition
	order []*Definition
}

// NewRegistry creates a registry with all built-in keywords.
func NewRegistry() *Registry {
	r := &Registry{defs: make(map[string]*Definition)}
	r.registerBuiltins()
	return r
}

// Register adds a definition to the registry.
func (r *Registry) Register(def *Definition) {
	if _, exists := r.defs[def.Keyword]; !exists {
		r.order = append(r.order, def)
	}
	r.defs[def.Keyword] = def
}

// Get returns the definition for keyword. Keywords are case-sensitive.
func (r *Registry) Get(keyword string) *Definition {
	return r.defs[keyword]
}

// All returns the definitions in registration order.
func (r *Registry) All() []*Definition {
	out := make([]*Definition, len(r.order))
	copy(out, r.order)
	return out
}

// Complete returns the keywords that start with prefix, sorted.
// Used for tab completion in the REPL.
func (r *Registry) Complete(prefix string) []string {
	var matches []string
	for keyword := range r.defs {
		if strings.HasPrefix(keyword, prefix) {
			matches = append(matches, keyword)
		}
	}
	sort.Strings(matches)
	return matches
}

// =============================================================================
// BUILT-IN KEYWORDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	r.Register(&Definition{
		Keyword:     syntax.KeywordList,
		Kind:        KindList,
		Usage:       "list",
		Description: "Show all tasks",
		parse:       func(string) (Command, error) { return Command{Kind: KindList}, nil },
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordTodo,
		Kind:        KindTodo,
		Usage:       "todo <desc> [/tag <t>]",
		Description: "Add a task without a date",
		parse:       parseTodo,
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordDeadline,
		Kind:        KindDeadline,
		Usage:       "deadline <desc> /by <yyyy-MM-dd HHmm> [/tag <t>]",
		Description: "Add a task due at a date and time",
		parse:       parseDeadline,
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordEvent,
		Kind:        KindEvent,
		Usage:       "event <desc> /from <yyyy-MM-dd HHmm> /to <yyyy-MM-dd HHmm> [/tag <t>]",
		Description: "Add a task spanning a time range",
		parse:       parseEvent,
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordMark,
		Kind:        KindMark,
		Usage:       "mark <n>",
		Description: "Mark task n as done",
		parse:       indexParser(KindMark, syntax.KeywordMark),
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordUnmark,
		Kind:        KindUnmark,
		Usage:       "unmark <n>",
		Description: "Mark task n as not done",
		parse:       indexParser(KindUnmark, syntax.KeywordUnmark),
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordDelete,
		Kind:        KindDelete,
		Usage:       "delete <n>",
		Description: "Remove task n",
		parse:       indexParser(KindDelete, syntax.KeywordDelete),
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordFind,
		Kind:        KindFind,
		Usage:       "find <yyyy-MM-dd | keyword>",
		Description: "Find tasks on a date or containing a keyword",
		parse:       parseFind,
	})

	r.Register(&Definition{
		Keyword:     syntax.KeywordBye,
		Kind:        KindBye,
		Usage:       "bye",
		Description: "Save and exit",
		parse:       func(string) (Command, error) { return Command{Kind: KindBye}, nil },
	})
}
