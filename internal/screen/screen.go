// Package screen defines the contract every application screen satisfies.
// Screens are plain values owned by the router; the app model feeds them
// messages and stitches their View output between the header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"quizcraft/internal/ui/layout"
)

// Screen is one full-window view (landing, study session, results).
type Screen interface {
	// Init runs once when the screen becomes active.
	Init() tea.Cmd

	// Update reacts to a message. It may return a different Screen value
	// to swap itself out.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body content. Width and height exclude the
	// header and footer rows.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen publish its own footer key hints.
// Screens that skip it get the default quit hint.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
