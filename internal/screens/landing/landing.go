// Package landing implements the document selection form and the
// in-flight generation loader.
package landing

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizcraft/internal/chat"
	"quizcraft/internal/generation"
	"quizcraft/internal/router"
	"quizcraft/internal/screen"
	"quizcraft/internal/screens/study"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/components"
	"quizcraft/internal/ui/layout"
)

// Form fields, in tab order.
const (
	focusDocument = iota
	focusCount
	focusDifficulty
)

const loaderInterval = 900 * time.Millisecond

// LandingScreen implements screen.Screen for the landing phase.
type LandingScreen struct {
	state   *session.State
	gen     generation.Service
	chatSvc chat.Service

	input     components.TextInput
	focus     int
	formErr   string
	submitted bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen over the shared session state.
func New(state *session.State, gen generation.Service, chatSvc chat.Service) *LandingScreen {
	return &LandingScreen{
		state:   state,
		gen:     gen,
		chatSvc: chatSvc,
		input:   components.NewTextInput("Path to a document (.pdf, .txt, .md)...", 200),
	}
}

func (s *LandingScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LandingScreen) Title() string {
	if s.state.Phase == session.PhaseSubmitting {
		return "Generating"
	}
	return "New Study Kit"
}

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	if s.state.Phase == session.PhaseSubmitting {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.syncFromState()

	switch msg := msg.(type) {
	case kitReadyMsg:
		return s.handleKitReady(msg)

	case loaderTickMsg:
		return s.handleLoaderTick()

	case failureShownMsg:
		session.DismissFailure(s.state)
		return s, s.input.Focus()

	case tea.KeyMsg:
		if s.state.Phase != session.PhaseLanding {
			return s, nil
		}
		return s.handleKey(msg)
	}

	if s.focus == focusDocument && s.state.Phase == session.PhaseLanding {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// syncFromState clears the form after a start-over reset wiped the
// document selection.
func (s *LandingScreen) syncFromState() {
	if s.submitted && s.state.Phase == session.PhaseLanding && s.state.Kit == nil && s.state.DocumentPath == "" {
		s.input.Reset()
		s.input.Model.Focus()
		s.focus = focusDocument
		s.submitted = false
	}
}

func (s *LandingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.focus = (s.focus + 1) % 3
		return s, s.focusCmd()
	case "shift+tab":
		s.focus = (s.focus + 2) % 3
		return s, s.focusCmd()
	case "enter":
		return s.submit()
	}

	switch s.focus {
	case focusCount:
		switch msg.String() {
		case "left", "-":
			session.AdjustCount(s.state, -1)
		case "right", "+", "=":
			session.AdjustCount(s.state, 1)
		}
		return s, nil

	case focusDifficulty:
		levels := generation.Difficulties()
		idx := 0
		for i, d := range levels {
			if d == s.state.Difficulty {
				idx = i
			}
		}
		switch msg.String() {
		case "left":
			idx = (idx + len(levels) - 1) % len(levels)
		case "right":
			idx = (idx + 1) % len(levels)
		default:
			return s, nil
		}
		session.SetDifficulty(s.state, levels[idx])
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LandingScreen) focusCmd() tea.Cmd {
	if s.focus == focusDocument {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *LandingScreen) submit() (screen.Screen, tea.Cmd) {
	s.state.DocumentPath = strings.TrimSpace(s.input.Value())
	req, err := session.Submit(s.state)
	if err != nil {
		s.formErr = "Select a document first."
		return s, nil
	}
	s.formErr = ""
	s.submitted = true
	return s, tea.Batch(s.generate(req), loaderTick())
}

// generate runs the request off the update loop and reports its outcome.
func (s *LandingScreen) generate(req generation.Request) tea.Cmd {
	return func() tea.Msg {
		kit, err := s.gen.Generate(context.Background(), req)
		return kitReadyMsg{RequestID: req.ID, Kit: kit, Err: err}
	}
}

func loaderTick() tea.Cmd {
	return tea.Tick(loaderInterval, func(t time.Time) tea.Msg {
		return loaderTickMsg(t)
	})
}

func (s *LandingScreen) handleLoaderTick() (screen.Screen, tea.Cmd) {
	if s.state.Phase != session.PhaseSubmitting || s.state.FailureMessage != "" {
		return s, nil
	}
	// Hold at the penultimate stage until the service resolves.
	if s.state.Loader.Current().Percent < 70 {
		s.state.Loader.Advance()
	}
	return s, loaderTick()
}

func (s *LandingScreen) handleKitReady(msg kitReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if session.HandleFailure(s.state, msg.RequestID, msg.Err.Error()) {
			return s, failureTimer(msg.RequestID)
		}
		return s, nil
	}

	if !session.HandleKit(s.state, msg.RequestID, msg.Kit) {
		return s, nil
	}
	if s.state.Phase == session.PhaseStudySession {
		next := study.New(s.state, s.chatSvc)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	// Accepted but converted to a failure (kit had no usable questions).
	return s, failureTimer(msg.RequestID)
}

func failureTimer(requestID string) tea.Cmd {
	return tea.Tick(session.FailureDisplaySeconds*time.Second, func(time.Time) tea.Msg {
		return failureShownMsg{RequestID: requestID}
	})
}
