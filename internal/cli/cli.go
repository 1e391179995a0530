// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents what the process was asked to do.
type Command int

const (
	// CmdRun starts an interactive session
	CmdRun Command = iota
	// CmdHelp prints usage
	CmdHelp
	// CmdVersion prints version information
	CmdVersion
	// CmdInitConfig writes a default config file
	CmdInitConfig
)

// Args holds parsed command-line flags.
type Args struct {
	// DataFile overrides storage.data_file
	DataFile string
	// ConfigFile loads settings from this path instead of ~/.buddy/config.toml
	ConfigFile string
	// TUI starts the full-screen front end
	TUI bool
	// NoColor disables styled output
	NoColor bool
}

// Parse parses command-line arguments (without the program name).
// --help wins over --version, which wins over --init-config.
// Unknown flags and stray positional arguments return a *UsageError.
func Parse(argv []string) (Command, Args, error) {
	var args Args
	cmd := CmdRun

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		name, value, hasValue := strings.Cut(arg, "=")

		switch name {
		case "-h", "--help":
			cmd = CmdHelp
		case "-v", "--version":
			if cmd != CmdHelp {
				cmd = CmdVersion
			}
		case "--init-config":
			if cmd == CmdRun {
				cmd = CmdInitConfig
			}
		case "--tui":
			args.TUI = true
		case "--no-color":
			args.NoColor = true
		case "--data", "--config":
			if !hasValue {
				if i+1 >= len(argv) || strings.HasPrefix(argv[i+1], "-") {
					return cmd, args, &UsageError{Arg: name, Reason: "requires a path"}
				}
				i++
				value = argv[i]
			}
			if value == "" {
				return cmd, args, &UsageError{Arg: name, Reason: "requires a path"}
			}
			if name == "--data" {
				args.DataFile = value
			} else {
				args.ConfigFile = value
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return cmd, args, &UsageError{Arg: arg, Reason: "unknown flag"}
			}
			return cmd, args, &UsageError{Arg: arg, Reason: "unexpected argument"}
		}
	}
	return cmd, args, nil
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "buddy version %s\n", Version)
	fmt.Fprintf(w, "  commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  built:  %s\n", BuildDate)
}
