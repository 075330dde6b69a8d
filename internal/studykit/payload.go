package studykit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Wire shapes for the generation payload. Field names follow the backend
// contract: {summary, quiz, flashcards, notes, source_text}.
type kitPayload struct {
	Summary    string             `json:"summary"`
	Quiz       []questionPayload  `json:"quiz"`
	Flashcards []flashcardPayload `json:"flashcards"`
	Notes      notesPayload       `json:"notes"`
	SourceText string             `json:"source_text"`
}

type questionPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type flashcardPayload struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Some generators emit "dates_events" instead of "important_dates";
// both are accepted, important_dates wins when both are set.
type notesPayload struct {
	KeyConcepts    []string `json:"key_concepts"`
	Formulas       []string `json:"formulas"`
	ImportantDates []string `json:"important_dates"`
	DatesEvents    []string `json:"dates_events"`
}

// DecodeKit parses a raw generation payload into a StudyKit, coercing
// missing optional fields to empty values and dropping malformed entries.
// It does NOT enforce the non-empty quiz invariant; callers check
// Validate so a zero-question kit is reported as ErrNoQuestions rather
// than a decode error.
func DecodeKit(raw []byte) (*StudyKit, error) {
	var p kitPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode study kit: %w", err)
	}
	return kitFromPayload(p), nil
}

// DecodeQuestions parses a raw quiz array, dropping entries the quiz
// engine cannot score.
func DecodeQuestions(raw []byte) ([]Question, error) {
	var items []questionPayload
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return questionsFromPayload(items), nil
}

// DecodeFlashcards parses a raw flashcard array, dropping blank cards.
func DecodeFlashcards(raw []byte) ([]Flashcard, error) {
	var items []flashcardPayload
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode flashcards: %w", err)
	}
	return flashcardsFromPayload(items), nil
}

// DecodeNotes parses a raw notes object.
func DecodeNotes(raw []byte) (Notes, error) {
	var p notesPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Notes{}, fmt.Errorf("decode notes: %w", err)
	}
	return notesFromPayload(p), nil
}

// EncodeKit serializes a StudyKit back to the wire shape, indented for
// human inspection.
func EncodeKit(kit *StudyKit) ([]byte, error) {
	p := kitPayload{
		Summary:    kit.Summary,
		SourceText: kit.SourceText,
		Quiz:       []questionPayload{},
		Flashcards: []flashcardPayload{},
		Notes: notesPayload{
			KeyConcepts:    kit.Notes.KeyConcepts,
			Formulas:       kit.Notes.Formulas,
			ImportantDates: kit.Notes.ImportantDates,
		},
	}
	for _, q := range kit.Questions {
		p.Quiz = append(p.Quiz, questionPayload{
			Question:      q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
		})
	}
	for _, f := range kit.Flashcards {
		p.Flashcards = append(p.Flashcards, flashcardPayload{Term: f.Term, Definition: f.Definition})
	}
	return json.MarshalIndent(p, "", "  ")
}

func kitFromPayload(p kitPayload) *StudyKit {
	return &StudyKit{
		Summary:    p.Summary,
		SourceText: p.SourceText,
		Questions:  questionsFromPayload(p.Quiz),
		Flashcards: flashcardsFromPayload(p.Flashcards),
		Notes:      notesFromPayload(p.Notes),
	}
}

func questionsFromPayload(items []questionPayload) []Question {
	var out []Question
	for _, qp := range items {
		q := Question{
			Prompt:      strings.TrimSpace(qp.Question),
			Options:     sanitizeList(qp.Options),
			Answer:      strings.TrimSpace(qp.CorrectAnswer),
			Explanation: strings.TrimSpace(qp.Explanation),
		}
		if !usableQuestion(q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func flashcardsFromPayload(items []flashcardPayload) []Flashcard {
	var out []Flashcard
	for _, fp := range items {
		term := strings.TrimSpace(fp.Term)
		def := strings.TrimSpace(fp.Definition)
		if term == "" || def == "" {
			continue
		}
		out = append(out, Flashcard{Term: term, Definition: def})
	}
	return out
}

func notesFromPayload(p notesPayload) Notes {
	n := Notes{
		KeyConcepts:    sanitizeList(p.KeyConcepts),
		Formulas:       sanitizeList(p.Formulas),
		ImportantDates: sanitizeList(p.ImportantDates),
	}
	if len(n.ImportantDates) == 0 {
		n.ImportantDates = sanitizeList(p.DatesEvents)
	}
	return n
}

// usableQuestion filters out questions the quiz engine cannot score:
// blank prompt, fewer than 2 or more than 4 options, or a correct answer
// that does not appear among the options.
func usableQuestion(q Question) bool {
	if q.Prompt == "" {
		return false
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		return false
	}
	return q.CorrectIndex() >= 0
}

func sanitizeList(items []string) []string {
	var out []string
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
