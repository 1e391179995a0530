// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

// List is an insertion-ordered collection of tasks addressed by 0-based
// index. Tasks are stored by value; mutation happens in place at an index.
type List struct {
	tasks []Task
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add appends t to the end of the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at index i.
func (l *List) Get(i int) (Task, error) {
	if err := l.check(i); err != nil {
		return Task{}, err
	}
	return l.tasks[i], nil
}

// RemoveAt deletes the task at index i and returns it. Later tasks shift
// down by one.
func (l *List) RemoveAt(i int) (Task, error) {
	if err := l.check(i); err != nil {
		return Task{}, err
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// SetDone updates the completion flag of the task at index i and returns
// the updated task.
func (l *List) SetDone(i int, done bool) (Task, error) {
	if err := l.check(i); err != nil {
		return Task{}, err
	}
	l.tasks[i].Done = done
	return l.tasks[i], nil
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list holds no tasks.
func (l *List) IsEmpty() bool {
	return len(l.tasks) == 0
}

// All returns a copy of the tasks in insertion order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Lines returns the file form of every task, in order.
func (l *List) Lines() []string {
	lines := make([]string, 0, len(l.tasks))
	for _, t := range l.tasks {
		lines = append(lines, Encode(t))
	}
	return lines
}

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return &IndexError{Index: i, Len: len(l.tasks)}
	}
	return nil
}
