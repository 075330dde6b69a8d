package chat

import "context"

// Service answers a question grounded in the given reference context (the
// extracted document text from the most recent generation).
type Service interface {
	Ask(ctx context.Context, question, referenceContext string) (string, error)
}
