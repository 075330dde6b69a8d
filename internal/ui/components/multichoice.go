package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizcraft/internal/ui/theme"
)

// MultiChoice renders a quiz question with lettered options. After
// submission the correct option turns green and a wrong pick turns red;
// further key presses are ignored.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector with the cursor on the first option.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor with up/down (or k/j) and locks in the
// selection on enter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return theme.Correct
		case m.ChosenIndex:
			return theme.Incorrect
		default:
			return lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}
	if i == m.Selected {
		return theme.Selected
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}

// View renders the question and its lettered options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	const labels = "ABCDEFGH"
	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", cursor, labels[i%len(labels)], opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect reports whether the locked-in choice was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
