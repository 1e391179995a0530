// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, descriptions ...string) *List {
	t.Helper()
	list := NewList()
	for _, d := range descriptions {
		todo, err := NewTodo(d, "")
		require.NoError(t, err)
		list.Add(todo)
	}
	return list
}

func TestList_AddAndGet(t *testing.T) {
	list := newTestList(t, "a", "b", "c")

	if list.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", list.Len())
	}
	if list.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty list")
	}

	got, err := list.Get(1)
	require.NoError(t, err)
	require.Equal(t, "b", got.Description)
}

func TestList_RemoveAtShiftsLaterTasks(t *testing.T) {
	list := newTestList(t, "a", "b", "c")

	removed, err := list.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, "a", removed.Description)

	all := list.All()
	require.Len(t, all, 2)
	require.Equal(t, "b", all[0].Description)
	require.Equal(t, "c", all[1].Description)
}

func TestList_OutOfRange(t *testing.T) {
	list := newTestList(t, "a")

	for _, i := range []int{-1, 1, 5} {
		_, err := list.Get(i)
		var idxErr *IndexError
		if !errors.As(err, &idxErr) {
			t.Errorf("Get(%d) error = %v, want *IndexError", i, err)
		}

		_, err = list.RemoveAt(i)
		if !errors.As(err, &idxErr) {
			t.Errorf("RemoveAt(%d) error = %v, want *IndexError", i, err)
		}

		_, err = list.SetDone(i, true)
		if !errors.As(err, &idxErr) {
			t.Errorf("SetDone(%d) error = %v, want *IndexError", i, err)
		}
	}

	require.Equal(t, 1, list.Len(), "failed operations must not change the list")
}

func TestList_SetDoneInPlace(t *testing.T) {
	list := newTestList(t, "a", "b")

	updated, err := list.SetDone(1, true)
	require.NoError(t, err)
	require.True(t, updated.Done)

	second, _ := list.Get(1)
	require.True(t, second.Done)
	first, _ := list.Get(0)
	require.False(t, first.Done)

	_, err = list.SetDone(1, false)
	require.NoError(t, err)
	second, _ = list.Get(1)
	require.False(t, second.Done)
}

func TestList_AllIsSnapshot(t *testing.T) {
	list := newTestList(t, "a")

	all := list.All()
	all[0].Description = "changed"

	got, _ := list.Get(0)
	require.Equal(t, "a", got.Description)
}

func TestList_Lines(t *testing.T) {
	list := newTestList(t, "read book")
	deadline, err := NewDeadline("return book", "2025-06-01 1800", "")
	require.NoError(t, err)
	list.Add(deadline)

	require.Equal(t, []string{
		"T | 0 | read book",
		"D | 0 | return book | 2025-06-01 1800",
	}, list.Lines())
}
