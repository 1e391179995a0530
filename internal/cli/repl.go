// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/buddy/internal/session"
	"github.com/jeranaias/buddy/internal/ui/styles"
)

// logo is printed above the welcome box.
const logo = ` ____  _    _ _____  _____  __     __
|  _ \| |  | |  __ \|  __ \ \ \   / /
| |_) | |  | | |  | | |  | | \ \_/ /
|  _ <| |  | | |  | | |  | |  \   /
| |_) | |__| | |__| | |__| |   | |
|____/ \____/|_____/|_____/    |_|`

// =============================================================================
// INPUT
// =============================================================================

// LineReader supplies one input line per call. It returns io.EOF when the
// input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// LinerReader reads lines with history navigation and keyword completion.
// USABILITY: Supports arrow keys for history navigation and line editing.
type LinerReader struct {
	line        *liner.State
	prompt      string
	historyFile string
}

// NewLinerReader creates a reader showing prompt. History is loaded from
// historyFile when it exists. complete returns candidate keywords for a
// prefix.
func NewLinerReader(prompt, historyFile string, complete func(prefix string) []string) *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if complete != nil {
		line.SetCompleter(func(input string) []string {
			// Only the keyword is completed
			if strings.Contains(input, " ") {
				return nil
			}
			return complete(input)
		})
	}

	r := &LinerReader{line: line, prompt: prompt, historyFile: historyFile}
	r.LoadHistory()
	return r
}

// LoadHistory loads command history from file.
func (r *LinerReader) LoadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadLine reads a line of input. Ctrl+C and Ctrl+D both end input
// with io.EOF.
func (r *LinerReader) ReadLine() (string, error) {
	input, err := r.line.Prompt(r.prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}

	// Add non-empty input to history
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (r *LinerReader) SaveHistory() {
	if r.historyFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	r.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (r *LinerReader) Close() error {
	r.SaveHistory()
	return r.line.Close()
}

// =============================================================================
// OUTPUT
// =============================================================================

// Renderer displays session output.
type Renderer interface {
	Show(lines ...string)
	ShowError(msg string)
	ShowWarning(msg string)
}

// BoxRenderer draws every message inside a box.
type BoxRenderer struct {
	w     io.Writer
	theme *styles.Theme
	logo  bool
}

// NewBoxRenderer creates a renderer writing to w.
func NewBoxRenderer(w io.Writer, theme *styles.Theme) *BoxRenderer {
	return &BoxRenderer{w: w, theme: theme, logo: true}
}

// SetLogo controls whether ShowWelcome prints the ASCII logo.
func (r *BoxRenderer) SetLogo(show bool) {
	r.logo = show
}

// Show draws lines in the standard box.
func (r *BoxRenderer) Show(lines ...string) {
	fmt.Fprintln(r.w, r.theme.RenderBox(lines...))
}

// ShowError draws an error box.
func (r *BoxRenderer) ShowError(msg string) {
	fmt.Fprintln(r.w, r.theme.RenderError("Oh No! "+msg))
}

// ShowWarning draws a warning box.
func (r *BoxRenderer) ShowWarning(msg string) {
	fmt.Fprintln(r.w, r.theme.RenderWarning(msg))
}

// ShowHint prints muted helper lines below an error.
func (r *BoxRenderer) ShowHint(lines ...string) {
	fmt.Fprintln(r.w, r.theme.RenderHint(lines...))
}

// ShowWelcome prints the logo and the welcome box.
func (r *BoxRenderer) ShowWelcome() {
	if r.logo {
		fmt.Fprintln(r.w, r.theme.Banner.Render(logo))
	}
	fmt.Fprintln(r.w, r.theme.RenderBanner(session.Welcome...))
}

// hinter is implemented by renderers that can show usage hints.
type hinter interface {
	ShowHint(lines ...string)
}

// welcomer is implemented by renderers with a custom welcome screen.
type welcomer interface {
	ShowWelcome()
}

// =============================================================================
// REPL
// =============================================================================

// Run drives sess until the user says bye or input ends. Each line is
// handled to completion before the next is read. Blank lines are ignored.
func Run(sess *session.Session, in LineReader, out Renderer) error {
	defer sess.Close()

	if w, ok := out.(welcomer); ok {
		w.ShowWelcome()
	} else {
		out.Show(session.Welcome...)
	}
	for _, notice := range sess.Notices() {
		out.ShowWarning(notice)
	}

	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		resp := sess.Handle(line)
		Display(out, resp)
		if resp.Exit {
			return nil
		}
	}
}

// Display renders one response.
func Display(out Renderer, resp session.Response) {
	if len(resp.Lines) > 0 {
		out.Show(resp.Lines...)
	}
	if resp.Failed() {
		out.ShowError(resp.Error)
	}
	if len(resp.Hint) > 0 {
		if h, ok := out.(hinter); ok {
			h.ShowHint(resp.Hint...)
		} else {
			out.Show(resp.Hint...)
		}
	}
}
