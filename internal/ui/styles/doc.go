// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for buddy output.
//
// All colors use Lip Gloss AdaptiveColor for automatic light/dark
// detection. A Theme bound to an output stream renders replies, errors
// and warnings as bordered boxes. With color disabled the same boxes are
// drawn without escape sequences, so piped output stays readable.
//
// # Usage
//
//	theme := styles.NewTheme(os.Stdout, cli.ColorsEnabled())
//	theme.SetWidth(cli.GetTerminalWidth())
//	fmt.Println(theme.RenderBox("Got it. I've added this task:", "  [T][ ] read book"))
package styles
