package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizcraft/internal/chat"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/theme"
)

const chatPanelWidth = 38

func (s *StudyScreen) View(width, height int) string {
	contentWidth := width
	if s.state.ChatVisible && width > chatPanelWidth+40 {
		contentWidth = width - chatPanelWidth
	}

	var body string
	switch s.state.ActiveTab {
	case session.TabFlashcards:
		body = s.renderFlashcards(contentWidth)
	case session.TabNotes:
		body = s.renderNotes(contentWidth)
	default:
		body = s.renderQuiz(contentWidth)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.renderTabs(),
		"",
		body,
	)
	content = lipgloss.NewStyle().
		Width(contentWidth).
		Height(height).
		Padding(1, 2).
		Render(content)

	if contentWidth == width {
		return content
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, content, s.renderChat(chatPanelWidth, height))
}

func (s *StudyScreen) renderTabs() string {
	labels := []struct {
		tab  session.Tab
		name string
	}{
		{session.TabQuiz, "1 Quiz"},
		{session.TabFlashcards, "2 Flashcards"},
		{session.TabNotes, "3 Notes"},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.tab == s.state.ActiveTab {
			parts = append(parts, theme.TabActive.Render(l.name))
		} else {
			parts = append(parts, theme.TabInactive.Render(l.name))
		}
	}
	return strings.Join(parts, "│")
}

func (s *StudyScreen) renderQuiz(width int) string {
	run := s.state.Quiz
	q, idx := run.Current()

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d   Score %d", idx+1, run.Total(), run.Score()),
	)

	rows := []string{header, "", s.mc.View()}

	if run.Answered() {
		if s.mc.IsCorrect() {
			rows = append(rows, theme.Correct.Render("Correct!"))
		} else {
			rows = append(rows, theme.Incorrect.Render("Incorrect"))
		}
		if run.ExplanationVisible() {
			expl := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-8, 70)).
				Render(q.Explanation)
			rows = append(rows, "", expl)
		}
		rows = append(rows, "", theme.Hint.Render("Press Enter to continue"))
	}

	return strings.Join(rows, "\n")
}

func (s *StudyScreen) renderFlashcards(width int) string {
	cards := s.state.Kit.Flashcards
	if len(cards) == 0 {
		return theme.Hint.Render("No flashcards were generated for this document.")
	}

	card := cards[s.card]
	revealed := s.state.Deck.Revealed(s.card)

	face := theme.Selected.Render(card.Term)
	caption := theme.Hint.Render("Enter to reveal")
	if revealed {
		face = lipgloss.NewStyle().Foreground(theme.Text).Render(card.Definition)
		caption = theme.Hint.Render("Enter to hide")
	}

	box := theme.Card.
		Width(min(width-8, 60)).
		Align(lipgloss.Center).
		Render(face)

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Card %d of %d   %d revealed", s.card+1, len(cards), s.state.Deck.RevealedCount()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", box, "", caption)
}

func (s *StudyScreen) renderNotes(width int) string {
	kit := s.state.Kit
	w := min(width-6, 76)

	rows := []string{
		theme.Selected.Render("Summary"),
		lipgloss.NewStyle().Foreground(theme.Text).Width(w).Render(kit.Summary),
	}

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		rows = append(rows, "", theme.Selected.Render(title))
		for _, item := range items {
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.Text).Width(w).Render("• "+item))
		}
	}
	section("Key Concepts", kit.Notes.KeyConcepts)
	section("Formulas", kit.Notes.Formulas)
	section("Important Dates", kit.Notes.ImportantDates)

	if s.note != "" {
		rows = append(rows, "", theme.Hint.Render(s.note))
	}

	return strings.Join(rows, "\n")
}

func (s *StudyScreen) renderChat(width, height int) string {
	inner := width - 4

	rows := []string{theme.Selected.Render("Study Tutor"), ""}
	for _, turn := range s.visibleTurns(height - 8) {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "› "
		if turn.Speaker == chat.SpeakerAssistant {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
			prefix = ""
		}
		rows = append(rows, style.Width(inner).Render(prefix+turn.Text), "")
	}
	if s.state.Chat.Pending() {
		rows = append(rows, theme.Hint.Render("Thinking..."), "")
	}

	transcript := strings.Join(rows, "\n")
	input := s.chatInput.View()

	gap := height - lipgloss.Height(transcript) - lipgloss.Height(input) - 3
	if gap < 0 {
		gap = 0
	}

	panel := transcript + strings.Repeat("\n", gap+1) + input
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Padding(1, 1).
		Render(panel)
}

// visibleTurns trims the transcript from the front so the newest turns fit
// the panel, budgeting roughly two lines per turn.
func (s *StudyScreen) visibleTurns(lineBudget int) []chat.Turn {
	turns := s.state.Chat.Turns()
	keep := lineBudget / 2
	if keep < 1 {
		keep = 1
	}
	if len(turns) > keep {
		turns = turns[len(turns)-keep:]
	}
	return turns
}
