// Package generation models a single study-kit generation request: its
// input constraints, its identity, and the coarse progress sequence shown
// while the request is in flight.
package generation

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"quizcraft/internal/studykit"
)

// Difficulty selects how demanding the generated questions should be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists the selectable levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a label to a Difficulty, case-insensitively,
// defaulting to Medium for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Question count bounds. The count moves in steps of QuestionStep and is
// clamped to [MinQuestions, MaxQuestions].
const (
	MinQuestions     = 5
	MaxQuestions     = 30
	QuestionStep     = 5
	DefaultQuestions = 10
)

// ClampCount snaps n to the nearest step multiple within bounds.
func ClampCount(n int) int {
	if n < MinQuestions {
		return MinQuestions
	}
	if n > MaxQuestions {
		return MaxQuestions
	}
	return n - n%QuestionStep
}

// ErrNoDocument is returned when a request is built without a document.
var ErrNoDocument = errors.New("generation: no document selected")

// Request describes one submission to the generation service. ID is fresh
// per submission; responses are matched against it so a late result from an
// abandoned submission cannot clobber a newer session.
type Request struct {
	ID           string
	DocumentPath string
	Count        int
	Difficulty   Difficulty
}

// NewRequest validates the document reference, clamps the question count,
// and stamps the request with a unique ID.
func NewRequest(documentPath string, count int, difficulty Difficulty) (Request, error) {
	if documentPath == "" {
		return Request{}, ErrNoDocument
	}
	return Request{
		ID:           uuid.NewString(),
		DocumentPath: documentPath,
		Count:        ClampCount(count),
		Difficulty:   difficulty,
	}, nil
}

// Service produces a study kit from a request. Implementations talk to a
// remote backend or run the model calls in-process; either way a kit with
// zero usable questions must surface as an error, not an empty kit.
type Service interface {
	Generate(ctx context.Context, req Request) (*studykit.StudyKit, error)
}
