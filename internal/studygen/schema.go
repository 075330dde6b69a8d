package studygen

import "quizcraft/internal/llm"

var questionProperties = map[string]any{
	"question": map[string]any{
		"type":        "string",
		"description": "The question prompt shown to the learner",
	},
	"options": map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"minItems":    4,
		"maxItems":    4,
		"description": "Exactly 4 answer options",
	},
	"correct_answer": map[string]any{
		"type":        "string",
		"description": "The text of the correct option, matching one entry in options exactly",
	},
	"explanation": map[string]any{
		"type":        "string",
		"description": "Why the correct answer is right and the others might be wrong",
	},
}

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "study-quiz",
	Description: "A multiple-choice quiz derived from a document",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"properties":           questionProperties,
			"required":             []any{"question", "options", "correct_answer", "explanation"},
			"additionalProperties": false,
		},
	},
}

// FlashcardSchema defines the JSON schema for flashcard generation responses.
var FlashcardSchema = &llm.Schema{
	Name:        "study-flashcards",
	Description: "Term/definition flashcards derived from a document",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"term":       map[string]any{"type": "string"},
				"definition": map[string]any{"type": "string"},
			},
			"required":             []any{"term", "definition"},
			"additionalProperties": false,
		},
	},
}

// NotesSchema defines the JSON schema for cheat-sheet generation responses.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "A structured cheat sheet derived from a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"key_concepts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"formulas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"important_dates": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Dates or events worth memorizing, e.g. \"1945: WWII ends\"",
			},
		},
		"required":             []any{"key_concepts", "formulas", "important_dates"},
		"additionalProperties": false,
	},
}
