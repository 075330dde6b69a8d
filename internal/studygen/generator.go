// Package studygen generates study kits in-process through an LLM
// provider, mirroring the remote backend's contract: summary, quiz,
// flashcards, and notes are produced in parallel, and any piece except
// the quiz may fail without sinking the whole kit.
package studygen

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"quizcraft/internal/generation"
	"quizcraft/internal/llm"
	"quizcraft/internal/studykit"
)

// SummaryUnavailable is the placeholder shown when summarization fails.
const SummaryUnavailable = "Summary unavailable due to an error."

// Generator implements generation.Service over an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate reads the requested document and produces a study kit. The
// four sub-generations run concurrently; summary, flashcard, and notes
// failures degrade to empty values, but a quiz with no usable questions
// fails the whole request.
func (g *Generator) Generate(ctx context.Context, req generation.Request) (*studykit.StudyKit, error) {
	text, err := ReadDocument(req.DocumentPath)
	if err != nil {
		return nil, err
	}

	kit := &studykit.StudyKit{
		SourceText: truncate(text, g.config.SourceChars),
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		summary, err := g.generateSummary(ctx, text)
		if err != nil {
			summary = SummaryUnavailable
		}
		kit.Summary = summary
	}()

	var quizErr error
	go func() {
		defer wg.Done()
		kit.Questions, quizErr = g.generateQuiz(ctx, text, req.Count, string(req.Difficulty))
	}()

	go func() {
		defer wg.Done()
		kit.Flashcards, _ = g.generateFlashcards(ctx, text)
	}()

	go func() {
		defer wg.Done()
		kit.Notes, _ = g.generateNotes(ctx, text)
	}()

	wg.Wait()

	if quizErr != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", quizErr)
	}
	if err := kit.Validate(); err != nil {
		return nil, err
	}
	return kit, nil
}

func (g *Generator) generateSummary(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSummary)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: truncate(text, g.config.SummaryChars)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

func (g *Generator) generateQuiz(ctx context.Context, text string, count int, difficulty string) ([]studykit.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPrompt(text, count, difficulty, g.config.PromptChars)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, err
	}
	return studykit.DecodeQuestions(resp.Content)
}

func (g *Generator) generateFlashcards(ctx context.Context, text string) ([]studykit.Flashcard, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFlashcards)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFlashcardPrompt(text, g.config.FlashcardCount, g.config.PromptChars)},
		},
		Schema:      FlashcardSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}
	return studykit.DecodeFlashcards(resp.Content)
}

func (g *Generator) generateNotes(ctx context.Context, text string) (studykit.Notes, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeNotes)

	resp, err := g.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesPrompt(text, g.config.PromptChars)},
		},
		Schema:      NotesSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return studykit.Notes{}, err
	}
	return studykit.DecodeNotes(resp.Content)
}

// Ask answers a question grounded in the extracted document text,
// implementing chat.Service.
func (g *Generator) Ask(ctx context.Context, question, referenceContext string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: chatSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChatPrompt(question, referenceContext, g.config.ContextChars)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Content)), nil
}
