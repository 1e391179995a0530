// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/buddy/internal/syntax"
	"github.com/jeranaias/buddy/internal/task"
)

// =============================================================================
// EXECUTOR
// =============================================================================

// Saver persists the file form of the task list. The file is overwritten
// on every call.
type Saver interface {
	Save(lines []string) error
}

// Result is the outcome of a successfully executed command.
type Result struct {
	// Lines are the messages to show the user, in order
	Lines []string

	// Exit is true when the session should end
	Exit bool

	// SaveErr is set when the command changed the list but saving failed.
	// The in-memory change is kept.
	SaveErr error
}

// Executor applies commands to a task list and saves after each mutation.
type Executor struct {
	list  *task.List
	store Saver
}

// NewExecutor creates an executor over list. store may be nil, in which
// case nothing is persisted.
func NewExecutor(list *task.List, store Saver) *Executor {
	return &Executor{list: list, store: store}
}

// List returns the task list the executor mutates.
func (e *Executor) List() *task.List {
	return e.list
}

// Execute runs cmd. A returned error means the list was not changed.
func (e *Executor) Execute(cmd Command) (Result, error) {
	switch cmd.Kind {
	case KindList:
		return e.executeList(), nil
	case KindMark:
		return e.executeSetDone(cmd, true)
	case KindUnmark:
		return e.executeSetDone(cmd, false)
	case KindDelete:
		return e.executeDelete(cmd)
	case KindTodo:
		return e.executeAdd(task.NewTodo(cmd.Description, cmd.Tag))
	case KindDeadline:
		return e.executeAdd(task.NewDeadline(cmd.Description, cmd.Due, cmd.Tag))
	case KindEvent:
		return e.executeAdd(task.NewEvent(cmd.Description, cmd.Start, cmd.End, cmd.Tag))
	case KindFind:
		return e.executeFind(cmd), nil
	case KindBye:
		return Result{Lines: []string{"Bye. Hope to see you again soon!"}, Exit: true}, nil
	default:
		return Result{}, &ParseError{Message: "unrecognized command"}
	}
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

func (e *Executor) executeList() Result {
	if e.list.IsEmpty() {
		return Result{Lines: []string{"No tasks yet. Add one to get started!"}}
	}
	lines := []string{"Here are the tasks in your list:"}
	return Result{Lines: append(lines, numbered(e.list.All())...)}
}

func (e *Executor) executeSetDone(cmd Command, done bool) (Result, error) {
	updated, err := e.list.SetDone(cmd.Index, done)
	if err != nil {
		return Result{}, e.notFound(cmd, err)
	}

	header := "Awesome! You crushed this task:"
	if !done {
		header = "OK, I've marked this task as not done yet:"
	}
	return e.saved(Result{Lines: []string{header, "  " + updated.String()}}), nil
}

func (e *Executor) executeDelete(cmd Command) (Result, error) {
	removed, err := e.list.RemoveAt(cmd.Index)
	if err != nil {
		return Result{}, e.notFound(cmd, err)
	}
	return e.saved(Result{Lines: []string{
		"Got it! I've removed this task:",
		"  " + removed.String(),
		countLine(e.list.Len()),
	}}), nil
}

func (e *Executor) executeAdd(t task.Task, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	e.list.Add(t)
	return e.saved(Result{Lines: []string{
		"Got it. I've added this task:",
		"  " + t.String(),
		countLine(e.list.Len()),
	}}), nil
}

func (e *Executor) executeFind(cmd Command) Result {
	if date, err := task.ParseDate(cmd.Term); err == nil {
		label := date.Format(syntax.DateLayout)
		matches := e.filter(func(t task.Task) bool { return t.OccursOn(date) })
		if len(matches) == 0 {
			return Result{Lines: []string{"No tasks found on " + label}}
		}
		return Result{Lines: append([]string{"Tasks on " + label + ":"}, numbered(matches)...)}
	}

	needle := fold(cmd.Term)
	matches := e.filter(func(t task.Task) bool {
		return strings.Contains(fold(t.Description), needle)
	})
	if len(matches) == 0 {
		return Result{Lines: []string{fmt.Sprintf("No tasks found matching: %q", cmd.Term)}}
	}
	return Result{Lines: append([]string{fmt.Sprintf("Tasks matching %q:", cmd.Term)}, numbered(matches)...)}
}

// =============================================================================
// HELPERS
// =============================================================================

// saved persists the list and records any failure on r.
func (e *Executor) saved(r Result) Result {
	if e.store == nil {
		return r
	}
	if err := e.store.Save(e.list.Lines()); err != nil {
		r.SaveErr = &SaveError{Err: err}
	}
	return r
}

func (e *Executor) notFound(cmd Command, err error) error {
	var idxErr *task.IndexError
	if errors.As(err, &idxErr) {
		return &TaskNotFoundError{Number: cmd.Index + 1, Count: idxErr.Len}
	}
	return err
}

func (e *Executor) filter(match func(task.Task) bool) []task.Task {
	var out []task.Task
	for _, t := range e.list.All() {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}

// numbered renders tasks as "1.<task>", "2.<task>", ...
func numbered(tasks []task.Task) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%d.%s", i+1, t)
	}
	return lines
}

func countLine(n int) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	return fmt.Sprintf("Now you have %d %s in the list.", n, noun)
}

// fold normalizes s for case-insensitive comparison.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
