// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete buddy configuration.
type Config struct {
	Version string `toml:"version"`

	// Storage configuration
	Storage StorageConfig `toml:"storage"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Log configuration
	Log LogConfig `toml:"log"`
}

// StorageConfig controls where tasks are kept.
type StorageConfig struct {
	// DataFile is the task file (empty = ~/.buddy/buddy.txt)
	DataFile string `toml:"data_file"`
}

// UIConfig controls the interactive front ends.
type UIConfig struct {
	// Color enables styled output. NO_COLOR and non-TTY stdout still win.
	Color bool `toml:"color"`
	// TUI starts the full-screen front end instead of the line REPL
	TUI bool `toml:"tui"`
	// BoxWidth caps the width of output boxes (0 = terminal width)
	BoxWidth int `toml:"box_width"`
	// HistoryFile keeps REPL input history (empty = ~/.buddy/history)
	HistoryFile string `toml:"history_file"`
	// Prompt is shown before each input line
	Prompt string `toml:"prompt"`
}

// LogConfig controls the event log.
type LogConfig struct {
	Enabled bool `toml:"enabled"`
	// File is the log path (empty = ~/.buddy/buddy.log)
	File string `toml:"file"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// MinBoxWidth is the narrowest box that still fits a task line header
	MinBoxWidth = 30
	// MaxBoxWidth keeps boxes readable on very wide terminals
	MaxBoxWidth = 200
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Storage: StorageConfig{
			DataFile: "",
		},
		UI: UIConfig{
			Color:       true,
			TUI:         false,
			BoxWidth:    0,
			HistoryFile: "",
			Prompt:      "buddy> ",
		},
		Log: LogConfig{
			Enabled: true,
			File:    "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the buddy configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".buddy"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads ~/.buddy/config.toml, falling back to defaults when it does
// not exist. Environment overrides are applied last. If the file exists but
// cannot be decoded, the defaults are returned together with the error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			cfg, err := LoadFromPath(path)
			if err == nil {
				return cfg, nil
			}
			return finish(Default()), err
		}
	}
	return finish(Default()), nil
}

// LoadFromPath loads configuration from a specific TOML file with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	cfg = finish(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path over cfg.
func LoadTOML(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func finish(cfg *Config) *Config {
	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	return cfg
}

// fillDefaults resolves empty paths against the config directory.
func fillDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.UI.Prompt == "" {
		cfg.UI.Prompt = defaults.UI.Prompt
	}

	dir, err := ConfigDir()
	if err != nil {
		// Fallback to the working directory if home is unavailable
		dir = "."
	}
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = filepath.Join(dir, "buddy.txt")
	}
	if cfg.UI.HistoryFile == "" {
		cfg.UI.HistoryFile = filepath.Join(dir, "history")
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(dir, "buddy.log")
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - BUDDY_DATA_FILE: overrides storage.data_file
//   - BUDDY_LOG_FILE: overrides log.file
//   - BUDDY_TUI: set to "1" or "true" to start the full-screen front end
//   - NO_COLOR: any non-empty value disables styled output
func (c *Config) ApplyEnvOverrides() {
	if path := os.Getenv("BUDDY_DATA_FILE"); path != "" {
		c.Storage.DataFile = path
	}
	if path := os.Getenv("BUDDY_LOG_FILE"); path != "" {
		c.Log.File = path
	}
	if tui := os.Getenv("BUDDY_TUI"); tui != "" {
		c.UI.TUI = isTrue(tui)
	}
	if os.Getenv("NO_COLOR") != "" {
		c.UI.Color = false
	}
}

func isTrue(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to ~/.buddy/config.toml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# buddy configuration file")
	fmt.Fprintln(file, "# Generated by buddy - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ErrConfigExists is returned by Init when the target file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Init writes the default configuration to path, or to ~/.buddy/config.toml
// when path is empty, and returns the path written. An existing file is
// never overwritten.
func Init(path string) (string, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err == nil {
			return p, fmt.Errorf("%w: %s", ErrConfigExists, p)
		}
		return p, Save(Default())
	}

	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}
	return path, SaveTOML(Default(), path)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every validation failure.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for values buddy cannot run with.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.UI.BoxWidth != 0 && (c.UI.BoxWidth < MinBoxWidth || c.UI.BoxWidth > MaxBoxWidth) {
		errs = append(errs, ValidationError{
			Field:   "ui.box_width",
			Message: fmt.Sprintf("must be 0 or between %d and %d", MinBoxWidth, MaxBoxWidth),
		})
	}
	if c.Storage.DataFile != "" {
		if info, err := os.Stat(c.Storage.DataFile); err == nil && info.IsDir() {
			errs = append(errs, ValidationError{Field: "storage.data_file", Message: "is a directory"})
		}
	}
	if strings.ContainsAny(c.UI.Prompt, "\r\n") {
		errs = append(errs, ValidationError{Field: "ui.prompt", Message: "cannot contain line breaks"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Later calls to Global
// return cfg without loading the file again. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	var errs ValidateErrors
	return errors.As(err, &errs)
}
