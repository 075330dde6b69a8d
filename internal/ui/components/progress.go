package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/ui/theme"
)

// ProgressBar is a horizontal bar used for the generation loader and the
// results score display.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar sized to the given total width.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. The track shrinks to fit the label and the
// optional percentage readout within Width.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	track := p.Width - lipgloss.Width(b.String()) - percentWidth
	if track < 4 {
		track = 4
	}

	filled := int(float64(track) * p.Percent)
	switch {
	case filled > track:
		filled = track
	case filled < 0:
		filled = 0
	}

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
