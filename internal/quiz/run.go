// Package quiz implements the quiz run state machine: one pass over an
// ordered question sequence where the first answer per question is final.
package quiz

import "quizcraft/internal/studykit"

// Run tracks progress through a single quiz attempt. All mutation goes
// through its methods; the question sequence itself is never modified.
type Run struct {
	questions []studykit.Question

	current  int
	score    int
	selected int // -1 until answered
	showExpl bool
	done     bool
}

// NewRun starts a fresh attempt over the given questions.
func NewRun(questions []studykit.Question) *Run {
	return &Run{
		questions: questions,
		selected:  -1,
	}
}

// Current returns the active question and its index.
func (r *Run) Current() (studykit.Question, int) {
	if len(r.questions) == 0 {
		return studykit.Question{}, 0
	}
	return r.questions[r.current], r.current
}

// Total returns the number of questions in the run.
func (r *Run) Total() int { return len(r.questions) }

// Score returns the number of correctly answered questions so far.
func (r *Run) Score() int { return r.score }

// Answered reports whether the current question has been answered.
func (r *Run) Answered() bool { return r.selected >= 0 }

// Selected returns the chosen option index for the current question,
// or -1 if it has not been answered yet.
func (r *Run) Selected() int { return r.selected }

// ExplanationVisible reports whether the explanation is being shown.
func (r *Run) ExplanationVisible() bool { return r.showExpl }

// Completed reports whether the final question has been advanced past.
func (r *Run) Completed() bool { return r.done }

// Answer records the learner's choice for the current question. The first
// answer is final: once a selection exists, further calls are no-ops.
// Scoring compares the chosen option's text against the correct answer, so
// a duplicated correct option in any position still scores.
// Returns true if the recorded answer was correct.
func (r *Run) Answer(optionIndex int) bool {
	if r.done || r.Answered() || len(r.questions) == 0 {
		return false
	}
	q := r.questions[r.current]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return false
	}

	r.selected = optionIndex
	if q.Options[optionIndex] == q.Answer {
		r.score++
		return true
	}
	return false
}

// RevealExplanation shows the current question's explanation. Valid only
// after answering and only when explanation text exists; otherwise a no-op.
func (r *Run) RevealExplanation() {
	if !r.Answered() || r.done {
		return
	}
	q := r.questions[r.current]
	if q.HasExplanation() {
		r.showExpl = true
	}
}

// Advance moves to the next question, clearing the per-question selection
// and explanation state. Rejected until the current question is answered.
// Returns true when the run is complete (advanced past the final question).
func (r *Run) Advance() bool {
	if !r.Answered() || r.done {
		return r.done
	}

	if r.current+1 >= len(r.questions) {
		r.done = true
		return true
	}

	r.current++
	r.selected = -1
	r.showExpl = false
	return false
}

// Outcome computes the final result for this run.
func (r *Run) Outcome() Outcome {
	return ComputeOutcome(r.score, len(r.questions))
}
