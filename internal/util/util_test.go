// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.txt")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), 0600))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

// =============================================================================
// WIDTH TESTS
// =============================================================================

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語テキスト", 7, "日本..."},
	}

	for _, tc := range tests {
		got := TruncateWidth(tc.input, tc.maxWidth)
		if got != tc.want {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
	}

	for _, tc := range tests {
		if got := StringWidth(tc.input); got != tc.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}
