package session

import (
	"github.com/google/uuid"

	"quizcraft/internal/chat"
	"quizcraft/internal/deck"
	"quizcraft/internal/generation"
	"quizcraft/internal/quiz"
	"quizcraft/internal/studykit"
)

// FailureDisplaySeconds is how long a generation failure stays on screen
// before the session returns to the landing phase.
const FailureDisplaySeconds = 3

// AdjustCount steps the requested question count by delta steps, keeping
// it within bounds. No-op outside the landing phase.
func AdjustCount(state *State, delta int) {
	if state.Phase != PhaseLanding {
		return
	}
	state.Count = generation.ClampCount(state.Count + delta*generation.QuestionStep)
}

// SetDifficulty records the requested difficulty. No-op outside landing.
func SetDifficulty(state *State, d generation.Difficulty) {
	if state.Phase != PhaseLanding {
		return
	}
	state.Difficulty = d
}

// Submit builds a generation request from the landing form and moves the
// session to Submitting. The caller dispatches the returned request; the
// session records its ID so only that request's outcome is accepted.
func Submit(state *State) (generation.Request, error) {
	if state.Phase != PhaseLanding {
		return generation.Request{}, generation.ErrNoDocument
	}
	req, err := generation.NewRequest(state.DocumentPath, state.Count, state.Difficulty)
	if err != nil {
		return generation.Request{}, err
	}
	state.Phase = PhaseSubmitting
	state.Request = &req
	state.Loader = generation.NewTracker()
	state.FailureMessage = ""
	return req, nil
}

// HandleKit installs a generated kit and starts the study session.
// Results carrying a stale or unknown request ID are discarded; the
// return value reports whether the kit was accepted.
func HandleKit(state *State, requestID string, kit *studykit.StudyKit) bool {
	if state.Phase != PhaseSubmitting || state.Request == nil || state.Request.ID != requestID {
		return false
	}
	if kit == nil || kit.Validate() != nil {
		return HandleFailure(state, requestID, "No questions generated.")
	}

	state.Kit = kit
	state.Quiz = quiz.NewRun(kit.Questions)
	state.Deck = deck.New(len(kit.Flashcards))
	state.Chat = chat.NewThread()
	state.ChatID = uuid.NewString()
	state.ActiveTab = TabQuiz
	state.ChatVisible = true
	state.Phase = PhaseStudySession
	state.Request = nil
	return true
}

// HandleFailure records a failed generation. The session stays in
// Submitting so the loader can display the message; DismissFailure moves
// it back to landing after the fixed interval. Stale failures are
// discarded.
func HandleFailure(state *State, requestID string, message string) bool {
	if state.Phase != PhaseSubmitting || state.Request == nil || state.Request.ID != requestID {
		return false
	}
	if message == "" {
		message = "Unknown"
	}
	state.FailureMessage = "Error: " + message
	state.Request = nil
	return true
}

// DismissFailure returns to the landing phase after a failure. The
// document selection is kept so the user can resubmit immediately.
func DismissFailure(state *State) {
	if state.Phase != PhaseSubmitting || state.FailureMessage == "" {
		return
	}
	state.Phase = PhaseLanding
	state.Loader = nil
}

// FinishQuiz moves to Results once the quiz run signals completion on
// its final advance.
func FinishQuiz(state *State) {
	if state.Phase != PhaseStudySession || state.Quiz == nil || !state.Quiz.Completed() {
		return
	}
	state.Phase = PhaseResults
}

// Retake restarts the quiz over the same questions. The kit stays as
// generated; the quiz run, deck, and chat thread reset to their initial
// values and the quiz tab becomes active.
func Retake(state *State) {
	if state.Phase != PhaseResults || state.Kit == nil {
		return
	}
	state.Quiz = quiz.NewRun(state.Kit.Questions)
	state.Deck = deck.New(len(state.Kit.Flashcards))
	state.Chat = chat.NewThread()
	state.ChatID = uuid.NewString()
	state.ActiveTab = TabQuiz
	state.ChatVisible = true
	state.Phase = PhaseStudySession
}

// StartOver discards the kit and all sub-engine state and returns to the
// landing phase with a cleared document selection. The question count and
// difficulty keep their last values.
func StartOver(state *State) {
	if state.Phase != PhaseStudySession && state.Phase != PhaseResults {
		return
	}
	state.DocumentPath = ""
	state.Request = nil
	state.Loader = nil
	state.FailureMessage = ""
	state.ChatID = ""
	state.Kit = nil
	state.Quiz = nil
	state.Deck = nil
	state.Chat = nil
	state.ActiveTab = TabQuiz
	state.ChatVisible = true
	state.Phase = PhaseLanding
}

// SelectTab switches the active study view. No-op outside a study
// session; never mutates quiz, deck, or chat state.
func SelectTab(state *State, tab Tab) {
	if state.Phase != PhaseStudySession {
		return
	}
	state.ActiveTab = tab
}

// ToggleChat flips the chat panel's visibility within a study session.
func ToggleChat(state *State) {
	if state.Phase != PhaseStudySession {
		return
	}
	state.ChatVisible = !state.ChatVisible
}

// BeginChat submits a question to the chat thread. It returns the trimmed
// question and the thread ID to attach to the response; ok is false when
// the thread rejects the send (blank question or a reply still pending).
func BeginChat(state *State, question string) (q string, threadID string, ok bool) {
	if state.Phase != PhaseStudySession || state.Chat == nil {
		return "", "", false
	}
	q = state.Chat.Begin(question)
	if q == "" {
		return "", "", false
	}
	return q, state.ChatID, true
}

// ResolveChat delivers an answer for the thread identified by threadID.
// Responses for a superseded thread (after start over or a retake) are
// discarded.
func ResolveChat(state *State, threadID string, answer string) bool {
	if state.Chat == nil || state.ChatID != threadID {
		return false
	}
	state.Chat.Resolve(answer)
	return true
}

// FailChat records a failed chat request for the thread identified by
// threadID.
func FailChat(state *State, threadID string) bool {
	if state.Chat == nil || state.ChatID != threadID {
		return false
	}
	state.Chat.Fail()
	return true
}
