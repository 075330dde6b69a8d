// Package app wires the root Bubble Tea model: router, frame, and the
// shared session state.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizcraft/internal/chat"
	"quizcraft/internal/generation"
	"quizcraft/internal/router"
	"quizcraft/internal/screen"
	"quizcraft/internal/screens/landing"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/layout"
)

// Options carries the service wiring and form defaults for a run.
type Options struct {
	Generator generation.Service
	Chat      chat.Service

	// Questions preloads the landing form's question count; 0 keeps the
	// standard default. Difficulty likewise when non-empty.
	Questions  int
	Difficulty generation.Difficulty
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	state  *session.State
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the landing screen at the
// bottom of the stack.
func newAppModel(opts Options) AppModel {
	state := session.NewState()
	if opts.Questions > 0 {
		state.Count = generation.ClampCount(opts.Questions)
	}
	if opts.Difficulty != "" {
		state.Difficulty = opts.Difficulty
	}
	return AppModel{
		state:  state,
		router: router.New(landing.New(state, opts.Generator, opts.Chat)),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// status is the right-hand header slot: the document the session is
// studying, once one is loaded.
func (m AppModel) status() string {
	if m.state.Kit == nil || m.state.DocumentPath == "" {
		return ""
	}
	return filepath.Base(m.state.DocumentPath) + "  "
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
