// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memStore struct {
	lines   []string
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() ([]string, error) {
	return m.lines, m.loadErr
}

func (m *memStore) Save(lines []string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lines = append([]string(nil), lines...)
	return nil
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestOpen_RestoresTasks(t *testing.T) {
	store := &memStore{lines: []string{
		"T | 0 | read book",
		"D | 1 | return book | 2025-06-01 1800",
	}}

	s := Open(store)
	require.NotEmpty(t, s.ID)
	require.NoError(t, s.LoadErr)
	require.Empty(t, s.Warnings)
	require.Equal(t, 2, s.List().Len())
	require.Empty(t, s.Notices())
}

func TestOpen_SkipsCorruptLines(t *testing.T) {
	store := &memStore{lines: []string{
		"T | 0 | read book",
		"X | 0 | mystery",
		"D | 2 | bad flag | 2025-06-01 1800",
	}}

	s := Open(store)
	require.Equal(t, 1, s.List().Len())
	require.Len(t, s.Warnings, 2)

	notices := s.Notices()
	require.Len(t, notices, 2)
	require.True(t, strings.HasPrefix(notices[0], "Skipping corrupted line 2"))
}

func TestOpen_LoadFailureStartsEmpty(t *testing.T) {
	store := &memStore{loadErr: errors.New("permission denied")}

	s := Open(store)
	require.Error(t, s.LoadErr)
	require.True(t, s.List().IsEmpty())
	require.Len(t, s.Notices(), 1)
	require.Contains(t, s.Notices()[0], "permission denied")
}

func TestHandle_Scenario(t *testing.T) {
	store := &memStore{}
	s := Open(store)

	resp := s.Handle("todo read book")
	require.False(t, resp.Failed())
	require.Equal(t, "Got it. I've added this task:", resp.Lines[0])

	resp = s.Handle("deadline return book /by 2025-06-01 1800")
	require.False(t, resp.Failed())

	resp = s.Handle("list")
	require.Equal(t, []string{
		"Here are the tasks in your list:",
		"1.[T][ ] read book",
		"2.[D][ ] return book (by: Jun 01 2025, 6:00 PM)",
	}, resp.Lines)

	s.Handle("mark 1")
	s.Handle("delete 1")

	resp = s.Handle("list")
	require.Equal(t, []string{
		"Here are the tasks in your list:",
		"1.[D][ ] return book (by: Jun 01 2025, 6:00 PM)",
	}, resp.Lines)

	require.Equal(t, 4, store.saves)
	require.Equal(t, []string{"D | 0 | return book | 2025-06-01 1800"}, store.lines)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  string
		wantHint bool
	}{
		{"unknown keyword", "blah", "unrecognized command", true},
		{"blank line", "   ", "unrecognized command", true},
		{"wrong case", "LIST", "unrecognized command", true},
		{"missing description", "todo", "todo needs a description", false},
		{"bad number", "mark one", "invalid task number", false},
		{"out of range", "delete 3", "Task number 3 does not exist. The list is empty.", false},
		{"bad date", "deadline x /by tomorrow", "yyyy-MM-dd HHmm", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Open(&memStore{})
			resp := s.Handle(tt.input)

			require.True(t, resp.Failed())
			require.Contains(t, resp.Error, tt.wantErr)
			require.Empty(t, resp.Lines)
			require.False(t, resp.Exit)
			if tt.wantHint {
				require.Equal(t, "Commands I understand:", resp.Hint[0])
				require.Contains(t, resp.Hint, "  mark <n>")
			} else {
				require.Empty(t, resp.Hint)
			}
			require.True(t, s.List().IsEmpty())
		})
	}
}

func TestHandle_SaveFailureKeepsMutation(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	s := Open(store)

	resp := s.Handle("todo write tests")
	require.True(t, resp.Failed())
	require.Contains(t, resp.Error, "disk full")
	require.Equal(t, "Got it. I've added this task:", resp.Lines[0])
	require.Equal(t, 1, s.List().Len())
}

func TestHandle_Bye(t *testing.T) {
	store := &memStore{}
	s := Open(store)

	resp := s.Handle("bye")
	require.True(t, resp.Exit)
	require.Equal(t, []string{"Bye. Hope to see you again soon!"}, resp.Lines)
	require.Zero(t, store.saves)
	require.True(t, s.closed)

	s.Close()
}
