package landing

import (
	"strings"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/generation"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/components"
	"quizcraft/internal/ui/theme"
)

func (s *LandingScreen) View(width, height int) string {
	if s.state.Phase == session.PhaseSubmitting {
		return s.renderLoader(width, height)
	}
	return s.renderForm(width, height)
}

func (s *LandingScreen) renderForm(width, height int) string {
	title := theme.Title.Render("Turn any document into an interactive masterclass")
	subtitle := theme.Subtitle.Render("Quizzes, flashcards, notes, and a study tutor from one upload")

	docLabel := "Document"
	if s.focus == focusDocument {
		docLabel = theme.Selected.Render("Document")
	} else {
		docLabel = lipgloss.NewStyle().Foreground(theme.TextDim).Render(docLabel)
	}
	docRow := docLabel + "  " + s.input.View()

	stepper := components.Stepper{
		Label:   "Questions",
		Value:   s.state.Count,
		Focused: s.focus == focusCount,
	}

	levels := generation.Difficulties()
	active := 0
	options := make([]string, len(levels))
	for i, d := range levels {
		options[i] = string(d)
		if d == s.state.Difficulty {
			active = i
		}
	}
	selector := components.Selector{
		Label:   "Difficulty",
		Options: options,
		Active:  active,
		Focused: s.focus == focusDifficulty,
	}

	rows := []string{
		docRow,
		"",
		stepper.View(),
		"",
		selector.View(),
	}

	if s.formErr != "" {
		rows = append(rows, "", theme.Incorrect.Render(s.formErr))
	} else if s.state.FailureMessage != "" {
		rows = append(rows, "", theme.Incorrect.Render(s.state.FailureMessage))
	}

	card := theme.Card.Width(min(width-8, 72)).Render(strings.Join(rows, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LandingScreen) renderLoader(width, height int) string {
	stage := s.state.Loader.Current()

	bar := components.NewProgressBar("", float64(stage.Percent)/100, true, min(width-16, 60))

	var label string
	if s.state.FailureMessage != "" {
		label = theme.Incorrect.Render(s.state.FailureMessage)
	} else {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(stage.Label)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Building your study kit"),
		"",
		bar.View(),
		"",
		label,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
