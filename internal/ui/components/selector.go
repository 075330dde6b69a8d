package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/ui/theme"
)

// Selector renders a horizontal row of options with one active choice,
// used for small fixed sets like difficulty levels.
type Selector struct {
	Label   string
	Options []string
	Active  int
	Focused bool
}

// View renders the selector.
func (s Selector) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)

	parts := make([]string, 0, len(s.Options))
	for i, opt := range s.Options {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		text := "  " + opt + "  "
		if i == s.Active {
			style = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
			if s.Focused {
				style = style.Foreground(theme.Primary)
			}
			text = "[ " + opt + " ]"
		}
		parts = append(parts, style.Render(text))
	}

	return label + "  " + strings.Join(parts, " ")
}
