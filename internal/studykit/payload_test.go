package studykit

import (
	"errors"
	"testing"
)

const fullPayload = `{
	"summary": "# Photosynthesis\nPlants convert light into energy.",
	"quiz": [
		{
			"question": "Where does photosynthesis occur?",
			"options": ["Chloroplast", "Mitochondria", "Nucleus", "Ribosome"],
			"correct_answer": "Chloroplast",
			"explanation": "Chloroplasts contain chlorophyll."
		},
		{
			"question": "What gas is consumed?",
			"options": ["CO2", "O2"],
			"correct_answer": "CO2"
		}
	],
	"flashcards": [
		{"term": "Chlorophyll", "definition": "Green pigment that absorbs light."},
		{"term": "  ", "definition": "dropped"}
	],
	"notes": {
		"key_concepts": ["Light reactions", "Calvin cycle"],
		"formulas": ["6CO2 + 6H2O -> C6H12O6 + 6O2"]
	},
	"source_text": "Photosynthesis is the process..."
}`

func TestDecodeKit_Full(t *testing.T) {
	kit, err := DecodeKit([]byte(fullPayload))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}

	if len(kit.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(kit.Questions))
	}
	if kit.Questions[0].CorrectIndex() != 0 {
		t.Errorf("CorrectIndex = %d, want 0", kit.Questions[0].CorrectIndex())
	}
	if !kit.Questions[0].HasExplanation() {
		t.Error("expected explanation on first question")
	}
	if kit.Questions[1].HasExplanation() {
		t.Error("second question should have no explanation")
	}

	if len(kit.Flashcards) != 1 {
		t.Errorf("flashcards = %d, want 1 (blank term dropped)", len(kit.Flashcards))
	}
	if len(kit.Notes.KeyConcepts) != 2 {
		t.Errorf("key concepts = %d, want 2", len(kit.Notes.KeyConcepts))
	}
	if len(kit.Notes.ImportantDates) != 0 {
		t.Errorf("important dates = %d, want 0", len(kit.Notes.ImportantDates))
	}
	if kit.SourceText == "" {
		t.Error("expected source text to be carried through")
	}
	if err := kit.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDecodeKit_MissingOptionalFields(t *testing.T) {
	kit, err := DecodeKit([]byte(`{"quiz": [{"question": "Q?", "options": ["a","b"], "correct_answer": "b"}]}`))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}
	if kit.Summary != "" {
		t.Errorf("summary = %q, want empty", kit.Summary)
	}
	if kit.Flashcards != nil && len(kit.Flashcards) != 0 {
		t.Errorf("flashcards = %v, want empty", kit.Flashcards)
	}
	if !kit.Notes.IsEmpty() {
		t.Error("expected empty notes")
	}
}

func TestDecodeKit_PaddedCorrectAnswer(t *testing.T) {
	kit, err := DecodeKit([]byte(`{"quiz": [{"question": "What gas is consumed?", "options": [" CO2 ", "O2"], "correct_answer": "  CO2  "}]}`))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}
	if len(kit.Questions) != 1 {
		t.Fatalf("questions = %d, want 1 (padded answer must not drop the question)", len(kit.Questions))
	}
	if idx := kit.Questions[0].CorrectIndex(); idx != 0 {
		t.Errorf("CorrectIndex = %d, want 0", idx)
	}
}

func TestDecodeKit_DatesEventsAlias(t *testing.T) {
	kit, err := DecodeKit([]byte(`{"notes": {"dates_events": ["1945: WWII ends"]}}`))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}
	if len(kit.Notes.ImportantDates) != 1 {
		t.Fatalf("important dates = %d, want 1 (from dates_events)", len(kit.Notes.ImportantDates))
	}
}

func TestValidate_EmptyQuizIsFailure(t *testing.T) {
	kit, err := DecodeKit([]byte(`{"summary": "fine", "quiz": []}`))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}
	if err := kit.Validate(); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Validate = %v, want ErrNoQuestions", err)
	}
}

func TestDecodeKit_DropsUnscorableQuestions(t *testing.T) {
	payload := `{"quiz": [
		{"question": "No answer match", "options": ["a","b"], "correct_answer": "c"},
		{"question": "One option", "options": ["a"], "correct_answer": "a"},
		{"question": "", "options": ["a","b"], "correct_answer": "a"},
		{"question": "Too many", "options": ["a","b","c","d","e"], "correct_answer": "a"},
		{"question": "Good", "options": ["a","b"], "correct_answer": "a"}
	]}`
	kit, err := DecodeKit([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeKit: %v", err)
	}
	if len(kit.Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(kit.Questions))
	}
	if kit.Questions[0].Prompt != "Good" {
		t.Errorf("kept %q, want the scorable question", kit.Questions[0].Prompt)
	}
}

func TestDecodeKit_MalformedJSON(t *testing.T) {
	if _, err := DecodeKit([]byte(`{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
}
