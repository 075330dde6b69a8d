package studygen

import (
	"fmt"
	"strings"
)

const summarySystemPrompt = `You are an expert summarizer. Summarize the following text into structured, easy-to-read paragraphs. Keep it comprehensive but concise.`

const quizSystemPrompt = `You are a quiz generator. Return ONLY valid JSON.`

const chatSystemPrompt = `You are a helpful study assistant.`

// buildQuizPrompt asks for a JSON array of multiple-choice questions at
// the requested difficulty.
func buildQuizPrompt(text string, count int, difficulty string, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions based on the text below.\n", count)
	fmt.Fprintf(&b, "Difficulty Level: %s.\n\n", difficulty)
	b.WriteString("Each question has exactly 4 options, one of which matches correct_answer exactly.\n")
	b.WriteString("The explanation briefly states why the correct answer is right and why the others might be wrong.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(truncate(text, limit))
	return b.String()
}

// buildFlashcardPrompt asks for term/definition pairs covering the text's
// key ideas.
func buildFlashcardPrompt(text string, count int, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d key flashcards from the text.\n", count)
	b.WriteString("Each card pairs a term with a concise definition.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(truncate(text, limit))
	return b.String()
}

// buildNotesPrompt asks for a structured cheat sheet.
func buildNotesPrompt(text string, limit int) string {
	var b strings.Builder
	b.WriteString("Create a structured cheat sheet from the text: key concepts, formulas, and important dates or events.\n")
	b.WriteString("Leave a list empty when the text has nothing of that kind.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(truncate(text, limit))
	return b.String()
}

// buildChatPrompt grounds a question in the extracted document text.
func buildChatPrompt(question, contextText string, limit int) string {
	var b strings.Builder
	b.WriteString("Context from the document:\n")
	b.WriteString(truncate(contextText, limit))
	b.WriteString("\n\nUser Question: ")
	b.WriteString(question)
	b.WriteString("\n\nAnswer the question based strictly on the context above. Keep it concise and helpful.")
	return b.String()
}
