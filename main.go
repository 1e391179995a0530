// buddy - A small task tracker for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/buddy/internal/cli"
	"github.com/jeranaias/buddy/internal/commands"
	"github.com/jeranaias/buddy/internal/config"
	"github.com/jeranaias/buddy/internal/session"
	"github.com/jeranaias/buddy/internal/storage"
	"github.com/jeranaias/buddy/internal/ui/styles"
	"github.com/jeranaias/buddy/internal/ui/tui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup always happens.
func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'buddy --help' for usage.")
		return cli.ExitCode(err)
	}

	if args.NoColor {
		cli.ForceColorsEnabled(false)
	}

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdHelp:
		color := cli.ColorsEnabled()
		fmt.Print(cli.RenderHelp(commands.Builtin(), color, cli.GetTerminalWidth()))
		return cli.ExitSuccess
	case cli.CmdInitConfig:
		path, err := config.Init(args.ConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.ExitGeneralError
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return cli.ExitSuccess
	}

	loaded, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if config.IsValidationError(err) {
			fmt.Fprintln(os.Stderr, "Fix the listed settings, or run 'buddy --init-config --config <path>' for a fresh file.")
		}
		return cli.ExitCode(err)
	}
	config.SetGlobal(loaded)
	cfg := config.Global()
	interactive := cli.IsTTY()

	logCloser, err := cli.SetupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (event log disabled)\n", err)
	}
	defer logCloser.Close()

	sess := session.Open(storage.NewFileStore(cfg.Storage.DataFile))

	color := cli.UseColor(cfg.UI.Color)
	theme := styles.NewTheme(os.Stdout, color)
	theme.SetWidth(cli.BoxWidth(cfg.UI.BoxWidth))

	if cfg.UI.TUI {
		if !interactive {
			fmt.Fprintln(os.Stderr, "Error: --tui needs a terminal on stdin")
			return cli.ExitUsageError
		}
		lipgloss.SetColorProfile(cli.GetColorProfile(color))
		if err := tui.Run(sess, theme, cfg.UI.Prompt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.ExitGeneralError
		}
		return cli.ExitSuccess
	}

	// Piped input keeps no history and skips the logo.
	history := cfg.UI.HistoryFile
	if !interactive {
		history = ""
	}
	reader := cli.NewLinerReader(cfg.UI.Prompt, history, sess.Registry().Complete)
	defer reader.Close()

	renderer := cli.NewBoxRenderer(os.Stdout, theme)
	renderer.SetLogo(interactive)
	if err := cli.Run(sess, reader, renderer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitGeneralError
	}
	return cli.ExitSuccess
}

// loadConfig loads settings and applies command-line flags on top.
// An explicit --config file must load cleanly; a broken default file only
// produces a warning.
func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	if args.ConfigFile != "" {
		loaded, err := config.LoadFromPath(args.ConfigFile)
		if err != nil {
			return nil, &cli.ConfigError{Path: args.ConfigFile, Err: err}
		}
		cfg = loaded
	} else {
		loaded, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		cfg = loaded
	}

	if args.DataFile != "" {
		cfg.Storage.DataFile = args.DataFile
	}
	if args.TUI {
		cfg.UI.TUI = true
	}
	if args.NoColor {
		cfg.UI.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, &cli.ConfigError{Err: err}
	}
	return cfg, nil
}
