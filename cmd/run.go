package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizcraft/internal/app"
	"quizcraft/internal/chat"
	"quizcraft/internal/generation"
	"quizcraft/internal/llm"
	"quizcraft/internal/remote"
	"quizcraft/internal/studygen"
)

// buildServices resolves the generation and chat services: a remote
// backend when one is configured, otherwise a direct LLM provider.
// The usage log is nil in remote mode.
func buildServices(cmd *cobra.Command, s settings) (generation.Service, chat.Service, *llm.UsageLog, error) {
	if url := resolveBackendURL(cmd, s); url != "" {
		client := remote.New(url)
		return client, client, nil, nil
	}

	llmCfg, err := resolveLLMConfig(s)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	usage := llm.NewUsageLog()
	provider, err := llm.NewProvider(cmd.Context(), llmCfg, usage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create LLM provider: %w", err)
	}

	gen := studygen.New(provider, studygen.DefaultConfig())
	return gen, gen, usage, nil
}

// runApp builds the service wiring and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	s, err := loadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gen, chatSvc, _, err := buildServices(cmd, s)
	if err != nil {
		return err
	}

	opts := app.Options{
		Generator: gen,
		Chat:      chatSvc,
		Questions: s.Defaults.Questions,
	}
	if s.Defaults.Difficulty != "" {
		opts.Difficulty = generation.ParseDifficulty(s.Defaults.Difficulty)
	}
	return app.Run(opts)
}
