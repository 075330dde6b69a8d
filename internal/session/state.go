package session

import (
	"quizcraft/internal/chat"
	"quizcraft/internal/deck"
	"quizcraft/internal/generation"
	"quizcraft/internal/quiz"
	"quizcraft/internal/studykit"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseLanding      Phase = iota // Document selection and generation options
	PhaseSubmitting                // Generation request in flight
	PhaseStudySession              // Quiz, flashcards, notes, chat
	PhaseResults                   // Score summary after the final question
)

// Tab selects the active view within the study session. Switching tabs
// never touches quiz, deck, or chat state.
type Tab int

const (
	TabQuiz Tab = iota
	TabFlashcards
	TabNotes
)

// State tracks the runtime state of a study session. The controller owns
// the phase and the generated kit; the quiz run, flashcard deck, and chat
// thread are owned by their engines but reset only here on phase resets.
type State struct {
	// Phase is the current session phase.
	Phase Phase

	// DocumentPath is the document selected on the landing form. It
	// survives a generation failure so the user can resubmit.
	DocumentPath string

	// Count is the requested question count (clamped on submit).
	Count int

	// Difficulty is the requested difficulty level.
	Difficulty generation.Difficulty

	// Request is the in-flight generation request, nil when idle. Its ID
	// gates incoming results: anything carrying another ID is stale.
	Request *generation.Request

	// Loader paces the cosmetic progress display while submitting.
	Loader *generation.Tracker

	// FailureMessage holds the visible error after a failed generation.
	FailureMessage string

	// ChatID identifies the current chat thread. A fresh ID is stamped
	// whenever the thread resets (new kit, retake, start over), so a
	// response issued against an earlier thread carries a dead ID and is
	// discarded instead of landing in the new transcript.
	ChatID string

	// Kit is the generated study material (nil outside a study session).
	Kit *studykit.StudyKit

	// Quiz is the active quiz run.
	Quiz *quiz.Run

	// Deck tracks flashcard reveal state.
	Deck *deck.Deck

	// Chat is the tutor conversation grounded in the kit's source text.
	Chat *chat.Thread

	// ActiveTab is the visible study view.
	ActiveTab Tab

	// ChatVisible toggles the chat panel. Independent of ActiveTab.
	ChatVisible bool
}

// NewState creates a fresh session at the landing phase with default
// generation options.
func NewState() *State {
	return &State{
		Phase:       PhaseLanding,
		Count:       generation.DefaultQuestions,
		Difficulty:  generation.DifficultyMedium,
		ChatVisible: true,
	}
}
