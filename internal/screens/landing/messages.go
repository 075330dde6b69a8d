package landing

import (
	"time"

	"quizcraft/internal/studykit"
)

// kitReadyMsg is sent when the generation service resolves, successfully
// or not. RequestID ties the outcome back to the submission it answers.
type kitReadyMsg struct {
	RequestID string
	Kit       *studykit.StudyKit
	Err       error
}

// loaderTickMsg paces the cosmetic progress stages while a request is in
// flight.
type loaderTickMsg time.Time

// failureShownMsg is sent after the failure display interval so the
// screen can return to the form.
type failureShownMsg struct {
	RequestID string
}
