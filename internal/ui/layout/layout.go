// Package layout owns the frame chrome: header bar, footer hints, and the
// sizing rules screens consult when deciding how much to draw.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is a key binding shown in the footer, e.g. {"tab", "switch tab"}.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether screens should use their narrow layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether screens should use their short layout.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the usable minimum.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is the height left for screen content after the chrome.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage fills the window with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// chromeBox is the bordered bar shared by header and footer.
func chromeBox(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the header bar: app name on the left, the screen
// title centered, and an optional status string on the right.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  QuizCraft")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(status)

	inner := width - 4 // border padding
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full bar, then pad the remainder so
	// the status hugs the right edge.
	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := inner - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	return chromeBox(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter draws the footer bar from the active screen's key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return chromeBox("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content, and footer into the full window,
// stretching the content region to absorb the leftover height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
