package studygen

// Config bounds prompt sizes and generation output.
type Config struct {
	// MaxTokens caps each generation response.
	MaxTokens int

	// SummaryChars caps the document text sent for summarization.
	SummaryChars int

	// PromptChars caps the document text sent for quiz, flashcard, and
	// notes generation.
	PromptChars int

	// ContextChars caps the source text sent as chat context.
	ContextChars int

	// SourceChars caps the extracted text kept on the kit for chat.
	SourceChars int

	// FlashcardCount is how many flashcards to request.
	FlashcardCount int
}

// DefaultConfig returns the standard limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      4096,
		SummaryChars:   20000,
		PromptChars:    15000,
		ContextChars:   20000,
		SourceChars:    25000,
		FlashcardCount: 10,
	}
}

// truncate cuts s to at most n bytes. Limits are generous enough that
// splitting a rune at the boundary does not matter for prompting.
func truncate(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
