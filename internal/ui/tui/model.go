// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/buddy/internal/session"
	"github.com/jeranaias/buddy/internal/ui/styles"
	"github.com/jeranaias/buddy/internal/util"
)

// Layout constants
const (
	headerHeight    = 1
	inputAreaHeight = 1
	footerHeight    = 1
)

// entryKind selects how a transcript entry is drawn.
type entryKind int

const (
	entryInput entryKind = iota
	entryReply
	entryError
	entryWarning
	entryHint
)

// entry is one block of the transcript. Entries are re-rendered on resize.
type entry struct {
	kind  entryKind
	lines []string
}

// Model is the bubbletea model driving a session.Session.
type Model struct {
	sess  *session.Session
	theme *styles.Theme
	keys  KeyMap

	input    textinput.Model
	viewport viewport.Model

	transcript []entry
	prompt     string

	width  int
	height int
	done   bool
}

// New creates the model. Load notices are queued before the first prompt.
func New(sess *session.Session, theme *styles.Theme, prompt string) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "todo read book"
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	m := Model{
		sess:     sess,
		theme:    theme,
		keys:     DefaultKeyMap(),
		input:    ti,
		viewport: vp,
		prompt:   prompt,
	}
	m.transcript = append(m.transcript, entry{kind: entryReply, lines: session.Welcome})
	for _, notice := range sess.Notices() {
		m.transcript = append(m.transcript, entry{kind: entryWarning, lines: []string{notice}})
	}
	m.refresh()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input and window events. Commands run synchronously, so
// at most one is in flight.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			m.sess.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Complete):
			m.complete()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	viewportHeight := m.height - headerHeight - inputAreaHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = viewportHeight

	inputWidth := m.width - util.StringWidth(m.prompt) - 1
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m.theme.SetWidth(m.width)
	m.refresh()
	return m, nil
}

// submit runs the typed line through the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, entry{kind: entryInput, lines: []string{m.prompt + line}})
	resp := m.sess.Handle(line)
	if len(resp.Lines) > 0 {
		m.transcript = append(m.transcript, entry{kind: entryReply, lines: resp.Lines})
	}
	if resp.Failed() {
		m.transcript = append(m.transcript, entry{kind: entryError, lines: []string{"Oh No! " + resp.Error}})
	}
	if len(resp.Hint) > 0 {
		m.transcript = append(m.transcript, entry{kind: entryHint, lines: resp.Hint})
	}
	m.refresh()

	if resp.Exit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// complete fills in the keyword when exactly one matches.
func (m *Model) complete() {
	value := m.input.Value()
	if strings.Contains(value, " ") {
		return
	}
	matches := m.sess.Registry().Complete(value)
	if len(matches) == 1 {
		m.input.SetValue(matches[0] + " ")
		m.input.CursorEnd()
	}
}

// refresh re-renders the transcript into the viewport.
func (m *Model) refresh() {
	blocks := make([]string, 0, len(m.transcript))
	for _, e := range m.transcript {
		blocks = append(blocks, m.render(e))
	}
	m.viewport.SetContent(strings.Join(blocks, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) render(e entry) string {
	switch e.kind {
	case entryInput:
		return m.theme.RenderPrompt(strings.Join(e.lines, "\n"))
	case entryError:
		return m.theme.RenderError(strings.Join(e.lines, "\n"))
	case entryWarning:
		return m.theme.RenderWarning(strings.Join(e.lines, "\n"))
	case entryHint:
		return m.theme.RenderHint(e.lines...)
	default:
		return m.theme.RenderBox(e.lines...)
	}
}

// View renders the header, transcript, input line and key help.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Banner.Render("buddy"))
	b.WriteString(m.theme.RenderHint("  " + m.sessionLabel()))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.RenderHint(m.helpLine()))
	return b.String()
}

func (m Model) sessionLabel() string {
	n := m.sess.List().Len()
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func (m Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " | ")
}

// Transcript returns the plain text of every entry, for tests and export.
func (m Model) Transcript() []string {
	var out []string
	for _, e := range m.transcript {
		out = append(out, e.lines...)
	}
	return out
}

// Done reports whether the model has finished.
func (m Model) Done() bool {
	return m.done
}

// Run starts the full-screen front end and blocks until it exits.
func Run(sess *session.Session, theme *styles.Theme, prompt string) error {
	p := tea.NewProgram(New(sess, theme, prompt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
