package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/ui/theme"
)

// Stepper renders a "− value +" control for a stepped numeric setting.
// The value itself lives with the caller; Stepper only draws it.
type Stepper struct {
	Label   string
	Value   int
	Focused bool
}

// View renders the stepper.
func (s Stepper) View() string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)

	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	signStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		valueStyle = valueStyle.Foreground(theme.Primary)
		signStyle = signStyle.Foreground(theme.Primary)
	}

	control := signStyle.Render("−") +
		valueStyle.Render(fmt.Sprintf("  %d  ", s.Value)) +
		signStyle.Render("+")

	return label + "  " + control
}
