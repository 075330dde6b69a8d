package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		s, err := loadSettings(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if url := resolveBackendURL(cmd, s); url != "" {
			fmt.Println("Mode:     remote backend")
			fmt.Println("Backend: ", url)
			fmt.Println("\nGeneration and chat are delegated; no local LLM provider is used.")
			return nil
		}

		cfg, err := resolveLLMConfig(s)
		if err != nil {
			fmt.Println("No LLM provider configured.")
			fmt.Println()
			fmt.Println("Set one of GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY,")
			fmt.Println("or configure QUIZCRAFT_LLM_PROVIDER with its matching key variable.")
			return err
		}

		fmt.Println("Mode:     direct LLM")
		fmt.Println("Provider:", cfg.Provider)
		switch cfg.Provider {
		case "anthropic":
			fmt.Println("Model:   ", cfg.Anthropic.Model)
		case "openai":
			fmt.Println("Model:   ", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Println("Base URL:", cfg.OpenAI.BaseURL)
			}
		case "gemini":
			fmt.Println("Model:   ", cfg.Gemini.Model)
		}
		fmt.Println("Timeout: ", cfg.Timeout)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}
