// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jeranaias/buddy/internal/util"
)

// =============================================================================
// STORAGE ERROR
// =============================================================================

// StorageError reports an I/O failure while loading or saving.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore reads and writes one line per task at Path.
type FileStore struct {
	// Path is the data file. Parent directories are created on save.
	Path string

	// Perm is the file mode used when saving. Default: 0644
	Perm os.FileMode
}

// NewFileStore creates a store for the data file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path, Perm: 0644}
}

// Load returns the stored lines. A missing file is not an error and yields
// no lines.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: s.Path, Err: err}
	}
	return splitLines(string(data)), nil
}

// Save overwrites the data file with lines, one per line.
// RELIABILITY: Atomic write with fsync prevents a torn file on crash
func (s *FileStore) Save(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := util.AtomicWriteFile(s.Path, []byte(b.String()), perm); err != nil {
		return &StorageError{Op: "save", Path: s.Path, Err: err}
	}
	return nil
}

// String returns the data file path.
func (s *FileStore) String() string {
	return s.Path
}

// splitLines splits file content into lines, accepting both \n and \r\n
// endings and dropping the empty element after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
