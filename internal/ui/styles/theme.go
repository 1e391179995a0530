// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/buddy/internal/util"
)

// boxChrome is the width taken by a box's border and horizontal padding.
const boxChrome = 4

// Theme holds the styles used to render buddy output.
type Theme struct {
	// Color is false when output must be plain text
	Color bool

	// Width caps rendered boxes (0 = no cap)
	Width int

	renderer *lipgloss.Renderer

	Box        lipgloss.Style
	ErrorBox   lipgloss.Style
	WarningBox lipgloss.Style
	Banner     lipgloss.Style
	Prompt     lipgloss.Style
	Hint       lipgloss.Style
	Done       lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
}

// NewTheme creates a theme writing to w. With color disabled every style
// renders as plain text, but boxes keep plain borders.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{Color: color, renderer: r}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	border := lipgloss.RoundedBorder()
	if !t.Color {
		border = lipgloss.NormalBorder()
	}
	box := t.renderer.NewStyle().
		BorderStyle(border).
		Padding(0, 1)

	t.Box = box.BorderForeground(Purple).Foreground(TextPrimary)
	t.ErrorBox = box.BorderForeground(Rose)
	t.WarningBox = box.BorderForeground(Amber)

	t.Banner = t.renderer.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Prompt = t.renderer.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.Hint = t.renderer.NewStyle().
		Foreground(TextMuted)

	t.Done = t.renderer.NewStyle().
		Foreground(Emerald)

	t.Error = t.renderer.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.Warning = t.renderer.NewStyle().
		Bold(true).
		Foreground(Amber)
}

// SetWidth updates the box width cap. Values below the minimum usable width
// disable the cap.
func (t *Theme) SetWidth(width int) {
	if width <= boxChrome {
		width = 0
	}
	t.Width = width
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderBox draws lines inside the standard output box. Lines wider than
// the box are truncated and completed task lines are highlighted.
func (t *Theme) RenderBox(lines ...string) string {
	return t.renderIn(t.Box, t.markDone(t.fit(lines, boxChrome)))
}

// RenderError draws an error message in a red box.
func (t *Theme) RenderError(message string) string {
	return t.renderStatus(t.ErrorBox, t.Error, StatusIndicators.Error, message)
}

// RenderWarning draws a warning message in an amber box.
func (t *Theme) RenderWarning(message string) string {
	return t.renderStatus(t.WarningBox, t.Warning, StatusIndicators.Warning, message)
}

// RenderHint renders muted helper text, one line per entry.
func (t *Theme) RenderHint(lines ...string) string {
	return t.Hint.Render(strings.Join(t.fit(lines, 0), "\n"))
}

// RenderPrompt styles the REPL prompt.
func (t *Theme) RenderPrompt(prompt string) string {
	return t.Prompt.Render(prompt)
}

// RenderBanner renders the welcome banner inside a box.
func (t *Theme) RenderBanner(lines ...string) string {
	return t.renderIn(t.Box, t.styleEach(t.Banner, t.fit(lines, boxChrome)))
}

// markDone colors completed task lines, e.g. "1.[T][X] read book".
func (t *Theme) markDone(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.Contains(l, "][X] ") {
			out[i] = t.Done.Render(l)
		} else {
			out[i] = l
		}
	}
	return out
}

func (t *Theme) renderStatus(box, accent lipgloss.Style, indicator, message string) string {
	lines := strings.Split(message, "\n")
	lines[0] = indicator + " " + lines[0]
	return t.renderIn(box, t.styleEach(accent, t.fit(lines, boxChrome)))
}

func (t *Theme) renderIn(style lipgloss.Style, lines []string) string {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (t *Theme) styleEach(style lipgloss.Style, lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = style.Render(l)
	}
	return out
}

// fit truncates each line so it fits Width once chrome columns are added.
// Lines must not contain escape sequences yet.
func (t *Theme) fit(lines []string, chrome int) []string {
	if t.Width == 0 {
		return lines
	}
	max := t.Width - chrome
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = util.TruncateWidth(l, max)
	}
	return out
}
