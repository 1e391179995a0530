// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing.txt"))

	lines, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "buddy.txt")
	store := NewFileStore(path)

	err := store.Save([]string{"T | 0 | read book", "D | 1 | return book | 2025-06-01 1800"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "T | 0 | read book\nD | 1 | return book | 2025-06-01 1800\n", string(data))
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "buddy.txt"))

	require.NoError(t, store.Save([]string{"T | 0 | a", "T | 0 | b"}))
	require.NoError(t, store.Save([]string{"T | 1 | c"}))

	lines, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"T | 1 | c"}, lines)
}

func TestFileStore_SaveEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "buddy.txt"))

	require.NoError(t, store.Save(nil))

	lines, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestFileStore_LoadCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buddy.txt")
	require.NoError(t, os.WriteFile(path, []byte("T | 0 | a\r\nT | 1 | b\r\n"), 0644))

	lines, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, []string{"T | 0 | a", "T | 1 | b"}, lines)
}

func TestFileStore_LoadDirectoryFails(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load()
	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	require.Equal(t, "load", storageErr.Op)
}

func TestFileStore_SaveIntoFileParentFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := NewFileStore(filepath.Join(blocker, "buddy.txt"))
	err := store.Save([]string{"T | 0 | a"})

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	require.Equal(t, "save", storageErr.Op)
}

func TestFileStore_String(t *testing.T) {
	require.Equal(t, "/tmp/buddy.txt", NewFileStore("/tmp/buddy.txt").String())
}
