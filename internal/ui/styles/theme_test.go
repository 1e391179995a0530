// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func plainTheme() *Theme {
	return NewTheme(&bytes.Buffer{}, false)
}

func TestRenderBox_Plain(t *testing.T) {
	theme := plainTheme()

	out := theme.RenderBox("Got it. I've added this task:", "  [T][ ] read book")
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "┌"))
	require.Contains(t, lines[1], "│ Got it. I've added this task: │")
	require.Contains(t, lines[2], "  [T][ ] read book")
	require.True(t, strings.HasPrefix(lines[3], "└"))
	require.NotContains(t, out, "\x1b[")
}

func TestRenderBox_Empty(t *testing.T) {
	out := plainTheme().RenderBox()
	require.Len(t, strings.Split(out, "\n"), 3)
}

func TestRenderBox_Truncates(t *testing.T) {
	theme := plainTheme()
	theme.SetWidth(12)

	out := theme.RenderBox("hello world")
	require.Contains(t, out, "│ hello... │")
}

func TestSetWidth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{-5, 0},
		{4, 0},
		{5, 5},
		{80, 80},
	}
	for _, tt := range tests {
		theme := plainTheme()
		theme.SetWidth(tt.in)
		if theme.Width != tt.want {
			t.Errorf("SetWidth(%d) = %d, want %d", tt.in, theme.Width, tt.want)
		}
	}
}

func TestRenderError(t *testing.T) {
	out := plainTheme().RenderError("unrecognized command")
	require.Contains(t, out, StatusIndicators.Error+" unrecognized command")
}

func TestRenderWarning_Multiline(t *testing.T) {
	out := plainTheme().RenderWarning("first\nsecond")
	require.Contains(t, out, StatusIndicators.Warning+" first")
	require.Contains(t, out, "second")
	require.Len(t, strings.Split(out, "\n"), 4)
}

func TestRenderBox_TaskLines(t *testing.T) {
	theme := plainTheme()
	in := []string{"Here are the tasks in your list:", "1.[T][X] read book", "2.[T][ ] write"}

	require.Equal(t, in, theme.markDone(in))
	require.Contains(t, theme.RenderBox(in...), "│ 1.[T][X] read book")
}

func TestRenderHintAndPrompt(t *testing.T) {
	theme := plainTheme()

	require.Equal(t, "a\nb", theme.RenderHint("a", "b"))
	require.Equal(t, "buddy> ", theme.RenderPrompt("buddy> "))
}

func TestRenderBanner(t *testing.T) {
	out := plainTheme().RenderBanner("Hello! I'm buddy", "What can I do for you?")
	require.Contains(t, out, "Hello! I'm buddy")
	require.Contains(t, out, "What can I do for you?")
}
