// Package llm abstracts the hosted model APIs behind a single Provider
// interface so the study-kit generator and chat tutor never touch an SDK
// directly. Middleware decorators add retries and usage accounting.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point for model calls.
type Provider interface {
	// Generate runs one prompt. A request carrying a Schema asks the
	// provider for structured output; the returned Content is then JSON
	// already validated against that schema. Without a Schema, Content
	// is the raw text reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one prompt to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. QuizCraft sends a single user turn
	// for generation; chat could grow a history here.
	Messages []Message

	// Schema, when set, selects the provider's structured-output path
	// and the response is validated against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and describes the JSON structure a generation must emit.
type Schema struct {
	// Name is a kebab-case identifier ("quiz-questions"); Anthropic uses
	// it as the tool name, OpenAI as the response-format name.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a plain map.
	Definition map[string]any
}

// Response is the model's reply.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage is this request's token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across providers to "end", "max_tokens",
	// or "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
