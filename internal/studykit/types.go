package studykit

import "errors"

// ErrNoQuestions marks a generation result that came back without a quiz.
// A kit without questions cannot drive a study session, so callers treat
// this the same as a transport failure.
var ErrNoQuestions = errors.New("no questions generated")

// Question is a single multiple-choice quiz question.
// Immutable once received; its identity is its position in the quiz.
type Question struct {
	// Prompt is the question text shown to the learner.
	Prompt string

	// Options holds 2-4 answer options in display order. Exactly one
	// matches Answer verbatim (duplicates are tolerated; the first match
	// is the scored one).
	Options []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is an optional rationale shown after answering.
	// Empty string when the generator produced none.
	Explanation string
}

// HasExplanation reports whether explanation text exists for this question.
func (q Question) HasExplanation() bool {
	return q.Explanation != ""
}

// CorrectIndex returns the index of the first option whose text equals the
// correct answer, or -1 if the payload was malformed.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

// Flashcard is a term/definition pair. Identity is its deck position.
type Flashcard struct {
	Term       string
	Definition string
}

// Notes is the structured cheat-sheet bundle. Any section may be empty.
type Notes struct {
	KeyConcepts    []string
	Formulas       []string
	ImportantDates []string
}

// IsEmpty reports whether every notes section is empty.
func (n Notes) IsEmpty() bool {
	return len(n.KeyConcepts) == 0 && len(n.Formulas) == 0 && len(n.ImportantDates) == 0
}

// StudyKit is the full generated study bundle for one document.
type StudyKit struct {
	Summary    string
	Questions  []Question
	Flashcards []Flashcard
	Notes      Notes

	// SourceText is the extracted document text, carried as the grounding
	// context for chat questions. Opaque to the session core.
	SourceText string
}

// Validate checks the session-critical invariant: at least one question.
func (k *StudyKit) Validate() error {
	if len(k.Questions) == 0 {
		return ErrNoQuestions
	}
	return nil
}
