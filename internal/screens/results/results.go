// Package results shows the finished quiz outcome and offers a retake or
// a fresh start.
package results

import (
	tea "charm.land/bubbletea/v2"

	"quizcraft/internal/quiz"
	"quizcraft/internal/router"
	"quizcraft/internal/screen"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/layout"
)

// ResultsScreen implements screen.Screen for the results phase.
type ResultsScreen struct {
	state   *session.State
	outcome quiz.Outcome
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen, capturing the outcome of the finished
// run so the display stays stable even after a retake resets the quiz.
func New(state *session.State) *ResultsScreen {
	return &ResultsScreen{
		state:   state,
		outcome: state.Quiz.Outcome(),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake quiz"},
		{Key: "N", Description: "New document"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.state.Phase != session.PhaseResults {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		session.Retake(s.state)
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "N":
		session.StartOver(s.state)
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}
