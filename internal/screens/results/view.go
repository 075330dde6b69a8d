package results

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/quiz"
	"quizcraft/internal/ui/components"
	"quizcraft/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	o := s.outcome

	titleStyle := theme.Title
	if o.Tier == quiz.TierReview {
		titleStyle = titleStyle.Foreground(theme.Error)
	}

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%d / %d correct", o.Score, o.Total))

	bar := components.NewProgressBar("", float64(o.Percentage)/100, true, min(width-16, 50))

	card := theme.Card.
		Width(min(width-8, 64)).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(o.Tier.Title()),
			"",
			score,
			"",
			bar.View(),
			"",
			theme.Subtitle.Render(o.Tier.Detail()),
		))

	content := lipgloss.JoinVertical(lipgloss.Center,
		card,
		"",
		theme.Hint.Render("R retake the quiz   •   N start a new document"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
