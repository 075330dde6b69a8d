package llm

import "context"

// Purpose labels for the request kinds QuizCraft issues. They ride on the
// context so middleware can attribute usage without widening Request.
const (
	PurposeSummary    = "summary"
	PurposeQuiz       = "quiz"
	PurposeFlashcards = "flashcards"
	PurposeNotes      = "notes"
	PurposeChat       = "chat"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with a purpose label.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label back, "unknown" when untagged.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
