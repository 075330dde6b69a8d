package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and usage-recording
// middleware. A nil usage log disables recording.
func NewProvider(ctx context.Context, cfg Config, usage *UsageLog) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → usage → base
	wrapped := base
	if usage != nil {
		wrapped = WithUsageLog(wrapped, usage)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}
