// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/buddy/internal/commands"
	"github.com/jeranaias/buddy/internal/syntax"
)

// HelpMarkdown builds the usage page from the keyword registry.
func HelpMarkdown(registry *commands.Registry) string {
	var b strings.Builder

	b.WriteString("# buddy\n\n")
	b.WriteString("A small task tracker for your terminal. Type one command per line.\n\n")

	b.WriteString("## Usage\n\n")
	b.WriteString("```\nbuddy [--data <path>] [--config <path>] [--tui] [--no-color]\nbuddy --init-config [--config <path>]\nbuddy --help | --version\n```\n\n")

	b.WriteString("## Commands\n\n")
	b.WriteString("| Command | What it does |\n|---|---|\n")
	for _, def := range registry.All() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", tableCell(def.Usage), def.Description)
	}

	b.WriteString("\n## Dates\n\n")
	fmt.Fprintf(&b, "Times use `yyyy-MM-dd HHmm`, e.g. `%s`. ", syntax.DateTimeExample)
	b.WriteString("`find` also accepts a plain `yyyy-MM-dd` date to list deadlines and events on that day.\n\n")

	b.WriteString("## Files\n\n")
	b.WriteString("- `~/.buddy/config.toml` settings\n")
	b.WriteString("- `~/.buddy/buddy.txt` tasks (override with `--data` or `BUDDY_DATA_FILE`)\n")
	b.WriteString("- `~/.buddy/buddy.log` event log (override with `BUDDY_LOG_FILE`)\n")
	return b.String()
}

// tableCell escapes pipes so they do not split a markdown table cell.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderHelp renders the usage page for the terminal. Without color the
// plain notty style is used. If glamour fails the raw markdown is returned.
func RenderHelp(registry *commands.Registry, color bool, width int) string {
	md := HelpMarkdown(registry)

	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}
	if width <= 0 {
		width = DefaultTerminalWidth
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
