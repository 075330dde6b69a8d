package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

func anthropicStub(status int, body map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		json.NewEncoder(w).Encode(body)
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	body := map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": `{"summary":"The document covers the water cycle."}`},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}

	p := newTestAnthropicProvider(t, anthropicStub(http.StatusOK, body))
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a study assistant.",
		Messages:  []Message{{Role: RoleUser, Content: "Summarize this document."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"summary":"The document covers the water cycle."}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		check   func(error) bool
	}{
		{
			name:    "429 maps to rate limit",
			status:  http.StatusTooManyRequests,
			errType: "rate_limit_error",
			check: func(err error) bool {
				var rl *ErrRateLimit
				return errors.As(err, &rl)
			},
		},
		{
			name:    "500 maps to unavailable",
			status:  http.StatusInternalServerError,
			errType: "api_error",
			check: func(err error) bool {
				var unavail *ErrProviderUnavailable
				return errors.As(err, &unavail)
			},
		},
		{
			name:    "529 maps to unavailable",
			status:  529,
			errType: "overloaded_error",
			check: func(err error) bool {
				var unavail *ErrProviderUnavailable
				return errors.As(err, &unavail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{
				"type":  "error",
				"error": map[string]any{"type": tt.errType, "message": "nope"},
			}
			p := newTestAnthropicProvider(t, anthropicStub(tt.status, body))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 100,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Fatalf("wrong error type: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Fatalf("expected 'claude-sonnet-4-20250514', got %q", p.ModelID())
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // literal IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, anthropicModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
