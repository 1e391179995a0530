// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the task list as lines of text in a flat file.
//
// The store knows nothing about tasks; it moves lines. Decoding and the
// handling of corrupt lines belong to the task package.
//
// # Usage
//
//	store := storage.NewFileStore(filepath.Join(dir, "buddy.txt"))
//	lines, err := store.Load()   // missing file: no lines, no error
//	err = store.Save(list.Lines()) // atomic overwrite, creates parent dirs
//
// Failures are returned as *StorageError.
package storage
