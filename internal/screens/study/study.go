// Package study implements the tabbed study session: quiz, flashcards,
// and notes, with the tutor chat panel alongside.
package study

import (
	"context"
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"quizcraft/internal/chat"
	"quizcraft/internal/export"
	"quizcraft/internal/quiz"
	"quizcraft/internal/router"
	"quizcraft/internal/screen"
	"quizcraft/internal/screens/results"
	"quizcraft/internal/session"
	"quizcraft/internal/ui/components"
	"quizcraft/internal/ui/layout"
)

// SummaryFileName is where the notes export lands, relative to the
// working directory.
const SummaryFileName = "quizcraft-summary.html"

// StudyScreen implements screen.Screen for the study session phase.
type StudyScreen struct {
	state   *session.State
	chatSvc chat.Service

	mc       components.MultiChoice
	boundRun *quiz.Run

	card int

	chatInput components.TextInput
	chatFocus bool

	note string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates the study screen over the shared session state.
func New(state *session.State, chatSvc chat.Service) *StudyScreen {
	s := &StudyScreen{
		state:     state,
		chatSvc:   chatSvc,
		chatInput: components.NewTextInput("Ask about the material...", 500),
	}
	s.chatInput.Blur()
	s.syncQuiz()
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	switch s.state.ActiveTab {
	case session.TabFlashcards:
		return "Flashcards"
	case session.TabNotes:
		return "Notes"
	default:
		return "Quiz"
	}
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.chatFocus {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Leave chat"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-3", Description: "Tabs"},
	}
	switch s.state.ActiveTab {
	case session.TabQuiz:
		if s.state.Quiz != nil && s.state.Quiz.Answered() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Continue"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "↑↓ Enter", Description: "Answer"})
		}
	case session.TabFlashcards:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Card"},
			layout.KeyHint{Key: "Enter", Description: "Flip"},
		)
	case session.TabNotes:
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Export"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "C", Description: "Chat"},
		layout.KeyHint{Key: "/", Description: "Ask"},
		layout.KeyHint{Key: "N", Description: "New document"},
	)
	return hints
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.syncQuiz()

	switch msg := msg.(type) {
	case chatAnswerMsg:
		if msg.Err != nil {
			session.FailChat(s.state, msg.ThreadID)
		} else {
			session.ResolveChat(s.state, msg.ThreadID, msg.Answer)
		}
		return s, nil

	case summarySavedMsg:
		if msg.Err != nil {
			s.note = "Export failed: " + msg.Err.Error()
		} else {
			s.note = "Summary saved to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		if s.state.Phase != session.PhaseStudySession {
			return s, nil
		}
		if s.chatFocus {
			return s.handleChatKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.chatFocus {
		var cmd tea.Cmd
		s.chatInput, cmd = s.chatInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

// syncQuiz rebinds the question widget whenever the session carries a
// different quiz run than the one on screen (first entry, retake).
func (s *StudyScreen) syncQuiz() {
	if s.state.Quiz == nil || s.boundRun == s.state.Quiz {
		return
	}
	s.boundRun = s.state.Quiz
	s.card = 0
	s.note = ""
	s.rebuildChoice()
}

func (s *StudyScreen) rebuildChoice() {
	q, _ := s.state.Quiz.Current()
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex())
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "1":
		session.SelectTab(s.state, session.TabQuiz)
		return s, nil
	case "2":
		session.SelectTab(s.state, session.TabFlashcards)
		return s, nil
	case "3":
		session.SelectTab(s.state, session.TabNotes)
		return s, nil
	case "c":
		session.ToggleChat(s.state)
		return s, nil
	case "/":
		if s.state.ChatVisible {
			s.chatFocus = true
			return s, s.chatInput.Focus()
		}
		return s, nil
	case "N":
		session.StartOver(s.state)
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}

	switch s.state.ActiveTab {
	case session.TabQuiz:
		return s.handleQuizKey(msg)
	case session.TabFlashcards:
		return s.handleFlashcardKey(msg)
	case session.TabNotes:
		return s.handleNotesKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	run := s.state.Quiz

	if !run.Answered() {
		s.mc, _ = s.mc.Update(msg)
		if s.mc.Submitted {
			run.Answer(s.mc.ChosenIndex)
			run.RevealExplanation()
		}
		return s, nil
	}

	switch msg.String() {
	case "enter", "n", "right":
		if run.Advance() {
			session.FinishQuiz(s.state)
			next := results.New(s.state)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		s.rebuildChoice()
	}
	return s, nil
}

func (s *StudyScreen) handleFlashcardKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	deck := s.state.Deck
	if deck == nil || deck.Size() == 0 {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.card > 0 {
			s.card--
		}
	case "right", "l":
		if s.card < deck.Size()-1 {
			s.card++
		}
	case "enter", "space", " ":
		deck.Toggle(s.card)
	}
	return s, nil
}

func (s *StudyScreen) handleNotesKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "e" {
		return s, s.exportSummary()
	}
	return s, nil
}

func (s *StudyScreen) exportSummary() tea.Cmd {
	name := filepath.Base(s.state.DocumentPath)
	summary := s.state.Kit.Summary
	return func() tea.Msg {
		err := export.WriteSummary(SummaryFileName, name, summary)
		return summarySavedMsg{Path: SummaryFileName, Err: err}
	}
}

func (s *StudyScreen) handleChatKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.chatFocus = false
		s.chatInput.Blur()
		return s, nil
	case "enter":
		q, threadID, ok := session.BeginChat(s.state, s.chatInput.Value())
		if !ok {
			return s, nil
		}
		s.chatInput.Reset()
		return s, s.ask(q, threadID)
	}

	var cmd tea.Cmd
	s.chatInput, cmd = s.chatInput.Update(msg)
	return s, cmd
}

// ask dispatches the question off the update loop, tagging the reply with
// the thread it was asked on.
func (s *StudyScreen) ask(question, threadID string) tea.Cmd {
	reference := s.state.Kit.SourceText
	return func() tea.Msg {
		answer, err := s.chatSvc.Ask(context.Background(), question, reference)
		return chatAnswerMsg{ThreadID: threadID, Answer: answer, Err: err}
	}
}
