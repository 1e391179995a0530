// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for buddy.
//
// Settings live in a single TOML file with sensible defaults, environment
// variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - StorageConfig: Location of the task data file
//   - UIConfig: REPL and TUI presentation settings
//   - LogConfig: Event log destination
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the caller)
//   - Environment variables (BUDDY_*, NO_COLOR)
//   - ~/.buddy/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Printf("CONFIG_FALLBACK | err=%v", err)
//	}
//	path := cfg.Storage.DataFile
package config
