package study

// chatAnswerMsg delivers the tutor's reply. ThreadID ties the answer to
// the thread it was asked on so replies outlive a retake or session reset
// harmlessly.
type chatAnswerMsg struct {
	ThreadID string
	Answer   string
	Err      error
}

// summarySavedMsg reports the outcome of a summary export.
type summarySavedMsg struct {
	Path string
	Err  error
}
