// Package chat manages the tutor conversation: an append-only transcript
// with at most one outstanding question at a time.
package chat

import "strings"

// Speaker identifies who produced a turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Turn is one transcript entry.
type Turn struct {
	Speaker Speaker
	Text    string
}

// Greeting is the assistant turn every thread opens with.
const Greeting = "I've analyzed your document. Ask me any questions about the material!"

// FallbackAnswer replaces an empty answer from the tutor service.
const FallbackAnswer = "I'm not sure about that."

// FailureNotice is appended when a question could not be answered. The
// failure is absorbed here; it never propagates to the caller.
const FailureNotice = "Connection error. Please try again."

// Thread is the ordered transcript plus the single-pending guard. Turns are
// strictly append-ordered by call sequence; because only one question may be
// outstanding, answers cannot arrive out of order relative to questions.
type Thread struct {
	turns   []Turn
	pending bool
}

// NewThread creates a thread opened with the standard greeting.
func NewThread() *Thread {
	return &Thread{
		turns: []Turn{{Speaker: SpeakerAssistant, Text: Greeting}},
	}
}

// Turns returns the transcript in order.
func (t *Thread) Turns() []Turn { return t.turns }

// Len returns the number of turns in the transcript.
func (t *Thread) Len() int { return len(t.turns) }

// Pending reports whether a question is awaiting its answer.
func (t *Thread) Pending() bool { return t.pending }

// Begin records a new user question. Blank questions and sends while a
// question is already pending are rejected as no-ops and return "".
// On acceptance the user turn is appended immediately — before any request
// is issued — and the trimmed question text is returned for dispatch.
func (t *Thread) Begin(question string) string {
	q := strings.TrimSpace(question)
	if q == "" || t.pending {
		return ""
	}
	t.turns = append(t.turns, Turn{Speaker: SpeakerUser, Text: q})
	t.pending = true
	return q
}

// Resolve appends the assistant's answer and clears the pending guard.
// An empty answer is replaced with the fixed fallback phrase.
func (t *Thread) Resolve(answer string) {
	if !t.pending {
		return
	}
	a := strings.TrimSpace(answer)
	if a == "" {
		a = FallbackAnswer
	}
	t.turns = append(t.turns, Turn{Speaker: SpeakerAssistant, Text: a})
	t.pending = false
}

// Fail appends the fixed failure notice and clears the pending guard, so
// the thread accepts the next question regardless of outcome.
func (t *Thread) Fail() {
	if !t.pending {
		return
	}
	t.turns = append(t.turns, Turn{Speaker: SpeakerAssistant, Text: FailureNotice})
	t.pending = false
}
