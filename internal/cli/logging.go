// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jeranaias/buddy/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging points the standard logger at the event log described by
// cfg. Logging is discarded when disabled. The returned closer releases
// the log file.
func SetupLogging(cfg config.LogConfig) (io.Closer, error) {
	if !cfg.Enabled || cfg.File == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0700); err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}

	// SECURITY: Owner-only permissions, task text ends up in error lines
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
