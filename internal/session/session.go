// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jeranaias/buddy/internal/commands"
	"github.com/jeranaias/buddy/internal/task"
)

// =============================================================================
// STORE
// =============================================================================

// Store loads and saves the file form of the task list.
type Store interface {
	Load() ([]string, error)
	Save(lines []string) error
}

// Welcome is shown when a session starts.
var Welcome = []string{"Hello I'm Buddy!", "What can I do for you?"}

// =============================================================================
// RESPONSE
// =============================================================================

// Response is everything one input line produced, ready to render.
type Response struct {
	// Lines are the normal messages, in order
	Lines []string

	// Error is the user-facing error message, empty on success
	Error string

	// Hint lists keyword usages after an unrecognized command
	Hint []string

	// Exit is true when the user asked to leave
	Exit bool
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool {
	return r.Error != ""
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns the task list for one run of buddy.
type Session struct {
	// ID identifies the session in the event log
	ID string

	// Warnings holds one entry per stored line skipped during Open
	Warnings []task.Warning

	// LoadErr is set when the data file could not be read.
	// The session then starts with an empty list.
	LoadErr error

	registry *commands.Registry
	executor *commands.Executor
	closed   bool
}

// Open loads the task list from store and starts a session. A load failure
// is recorded on the session, never returned.
func Open(store Store) *Session {
	s := &Session{
		ID:       uuid.New().String(),
		registry: commands.Builtin(),
	}

	list := task.NewList()
	lines, err := store.Load()
	if err != nil {
		s.LoadErr = err
		log.Printf("LOAD_FAILED | session=%s error=%v", s.ID, err)
	} else {
		list, s.Warnings = task.Restore(lines)
		for _, w := range s.Warnings {
			log.Printf("LOAD_SKIP | session=%s line=%d error=%v", s.ID, w.LineNo, w.Err)
		}
	}

	s.executor = commands.NewExecutor(list, store)
	log.Printf("SESSION_START | id=%s data=%s tasks=%d skipped=%d", s.ID, location(store), list.Len(), len(s.Warnings))
	return s
}

// List returns the live task list.
func (s *Session) List() *task.List {
	return s.executor.List()
}

// Registry returns the keyword registry used to parse input.
func (s *Session) Registry() *commands.Registry {
	return s.registry
}

// Handle parses and executes one input line. Errors never escape: they
// become Response.Error and the session continues.
func (s *Session) Handle(line string) Response {
	cmd, err := s.registry.Parse(line)
	if err != nil {
		log.Printf("COMMAND_REJECTED | session=%s error=%q", s.ID, err.Error())
		resp := Response{Error: err.Error()}
		var parseErr *commands.ParseError
		if errors.As(err, &parseErr) && s.registry.Get(parseErr.Keyword) == nil {
			resp.Hint = s.usages()
		}
		return resp
	}

	log.Printf("COMMAND | session=%s kind=%s mutates=%t", s.ID, cmd.Kind, cmd.Kind.Mutates())
	result, err := s.executor.Execute(cmd)
	if err != nil {
		log.Printf("COMMAND_REJECTED | session=%s kind=%s error=%q", s.ID, cmd.Kind, err.Error())
		return Response{Error: err.Error()}
	}

	resp := Response{Lines: result.Lines, Exit: result.Exit}
	if result.SaveErr != nil {
		log.Printf("SAVE_FAILED | session=%s kind=%s error=%v", s.ID, cmd.Kind, result.SaveErr)
		resp.Error = result.SaveErr.Error()
	}
	if cmd.IsExit() {
		s.Close()
	}
	return resp
}

// Close records the end of the session. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	log.Printf("SESSION_END | id=%s tasks=%d", s.ID, s.List().Len())
}

func (s *Session) usages() []string {
	defs := s.registry.All()
	out := make([]string, 0, len(defs)+1)
	out = append(out, "Commands I understand:")
	for _, def := range defs {
		out = append(out, "  "+def.Usage)
	}
	return out
}

// Notices returns the load problems to show before the first prompt.
func (s *Session) Notices() []string {
	var out []string
	if s.LoadErr != nil {
		out = append(out, "Could not load saved tasks, starting with an empty list: "+s.LoadErr.Error())
	}
	for _, w := range s.Warnings {
		out = append(out, capitalize(w.String()))
	}
	return out
}

func location(store Store) string {
	if st, ok := store.(fmt.Stringer); ok {
		return st.String()
	}
	return "memory"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
