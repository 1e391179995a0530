// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points the home directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, key := range []string{"BUDDY_DATA_FILE", "BUDDY_LOG_FILE", "BUDDY_TUI", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	return home
}

// TestConfig_ConcurrentAccess tests that Global() and SetGlobal()
// can be safely called concurrently without race conditions.
// Run with: go test -race -v ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			c := Default()
			c.UI.Prompt = "race> "
			SetGlobal(c)
		}()

		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestConfig_GlobalInitialization(t *testing.T) {
	home := isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Global()
	require.NotNil(t, cfg)
	require.Equal(t, filepath.Join(home, ".buddy", "buddy.txt"), cfg.Storage.DataFile)
	require.Same(t, cfg, Global())
}

func TestConfig_SetGlobalOverwrites(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	_ = Global()
	custom := Default()
	custom.UI.Prompt = "> "
	SetGlobal(custom)

	require.Equal(t, "> ", Global().UI.Prompt)
}

func TestConfig_Default(t *testing.T) {
	cfg := Default()

	require.Equal(t, "1", cfg.Version)
	require.True(t, cfg.UI.Color)
	require.False(t, cfg.UI.TUI)
	require.Equal(t, "buddy> ", cfg.UI.Prompt)
	require.True(t, cfg.Log.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			mutate: func(c *Config) {},
		},
		{
			name:   "box width at minimum",
			mutate: func(c *Config) { c.UI.BoxWidth = MinBoxWidth },
		},
		{
			name:    "box width too small",
			mutate:  func(c *Config) { c.UI.BoxWidth = 10 },
			wantErr: "ui.box_width",
		},
		{
			name:    "box width too large",
			mutate:  func(c *Config) { c.UI.BoxWidth = MaxBoxWidth + 1 },
			wantErr: "ui.box_width",
		},
		{
			name:    "data file is a directory",
			mutate:  func(c *Config) { c.Storage.DataFile = dir },
			wantErr: "storage.data_file: is a directory",
		},
		{
			name:    "prompt with newline",
			mutate:  func(c *Config) { c.UI.Prompt = "a\nb" },
			wantErr: "ui.prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
			require.True(t, IsValidationError(err))
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	c := Default()
	c.UI.BoxWidth = 1
	c.UI.Prompt = "\n"

	err := c.Validate()
	errs, ok := err.(ValidateErrors)
	require.True(t, ok)
	require.Len(t, errs, 2)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	dir := filepath.Join(home, ".buddy")
	require.Equal(t, filepath.Join(dir, "buddy.txt"), cfg.Storage.DataFile)
	require.Equal(t, filepath.Join(dir, "history"), cfg.UI.HistoryFile)
	require.Equal(t, filepath.Join(dir, "buddy.log"), cfg.Log.File)
}

func TestLoadFromPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[storage]
data_file = "/tmp/tasks.txt"

[ui]
color = false
tui = true
box_width = 60
prompt = "> "

[log]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/tasks.txt", cfg.Storage.DataFile)
	require.False(t, cfg.UI.Color)
	require.True(t, cfg.UI.TUI)
	require.Equal(t, 60, cfg.UI.BoxWidth)
	require.Equal(t, "> ", cfg.UI.Prompt)
	require.False(t, cfg.Log.Enabled)
	require.NotEmpty(t, cfg.Log.File)
}

func TestLoadFromPath_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed toml", "[ui\ncolor = ", "failed to decode TOML file"},
		{"unknown key", "[ui]\ntheme = \"dark\"\n", "unknown keys: ui.theme"},
		{"invalid value", "[ui]\nbox_width = 5\n", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := LoadFromPath(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_BrokenFileReturnsDefaultsAndError(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".buddy")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "buddy> ", cfg.UI.Prompt)
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BUDDY_DATA_FILE", "/data/tasks.txt")
	t.Setenv("BUDDY_LOG_FILE", "/data/buddy.log")
	t.Setenv("BUDDY_TUI", "true")
	t.Setenv("NO_COLOR", "1")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	require.Equal(t, "/data/tasks.txt", cfg.Storage.DataFile)
	require.Equal(t, "/data/buddy.log", cfg.Log.File)
	require.True(t, cfg.UI.TUI)
	require.False(t, cfg.UI.Color)
}

func TestApplyEnvOverrides_TUIOff(t *testing.T) {
	isolate(t)
	t.Setenv("BUDDY_TUI", "0")

	cfg := Default()
	cfg.UI.TUI = true
	cfg.ApplyEnvOverrides()

	require.False(t, cfg.UI.TUI)
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)

	cfg := Default()
	cfg.UI.BoxWidth = 72
	cfg.Storage.DataFile = "/tmp/mine.txt"
	require.NoError(t, Save(cfg))

	path := filepath.Join(home, ".buddy", "config.toml")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "# buddy configuration file"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if filepath.Separator == '/' {
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := Load()
	require.NoError(t, err)
	require.Equal(t, 72, loaded.UI.BoxWidth)
	require.Equal(t, "/tmp/mine.txt", loaded.Storage.DataFile)
}

func TestInit_DefaultPath(t *testing.T) {
	home := isolate(t)

	path, err := Init("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".buddy", "config.toml"), path)

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "buddy> ", loaded.UI.Prompt)
	require.Equal(t, filepath.Join(home, ".buddy", "buddy.txt"), loaded.Storage.DataFile)
}

func TestInit_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "buddy.toml")

	got, err := Init(path)
	require.NoError(t, err)
	require.Equal(t, path, got)
	require.FileExists(t, path)
}

func TestInit_KeepsExistingFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "buddy.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \"7\"\n"), 0600))

	_, err := Init(path)
	require.ErrorIs(t, err, ErrConfigExists)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "version = \"7\"\n", string(raw))
}

func TestSetGlobal_SkipsFileLoad(t *testing.T) {
	home := isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	dir := filepath.Join(home, ".buddy")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("ui = ["), 0600))

	custom := Default()
	custom.UI.Prompt = "> "
	SetGlobal(custom)

	require.Same(t, custom, Global())
}
