package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quizcraft/internal/llm"
)

// settings describes the optional quizcraft YAML configuration.
type settings struct {
	// BackendURL points generation and chat at a remote QuizCraft
	// backend instead of calling LLM providers directly.
	BackendURL string `yaml:"backend_url"`

	LLM struct {
		Provider string `yaml:"provider"`
		Model    string `yaml:"model"`
	} `yaml:"llm"`

	// Defaults preload the landing form and the generate command.
	Defaults struct {
		Questions  int    `yaml:"questions"`
		Difficulty string `yaml:"difficulty"`
	} `yaml:"defaults"`
}

// loadSettings reads the config file at path, or the default location
// when path is empty. A missing file yields empty settings.
func loadSettings(path string) (settings, error) {
	var s settings

	explicit := path != ""
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return s, nil
		}
		path = filepath.Join(dir, "quizcraft", "quizcraft.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return s, nil
		}
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// resolveBackendURL picks the remote backend, if any: the --backend flag
// wins, then QUIZCRAFT_BACKEND_URL, then the config file.
func resolveBackendURL(cmd *cobra.Command, s settings) string {
	if u, _ := cmd.Flags().GetString("backend"); u != "" {
		return u
	}
	if u := os.Getenv("QUIZCRAFT_BACKEND_URL"); u != "" {
		return u
	}
	return s.BackendURL
}

// resolveLLMConfig merges env configuration with config-file overrides,
// falling back to auto-discovery of standard API key variables.
func resolveLLMConfig(s settings) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if s.LLM.Provider != "" {
		cfg.Provider = s.LLM.Provider
	}
	applyModel(&cfg, s.LLM.Model)

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, err
		}
		cfg = discovered
		applyModel(&cfg, s.LLM.Model)
	}
	return cfg, nil
}

// applyModel overrides the model of whichever provider is selected.
func applyModel(cfg *llm.Config, model string) {
	if model == "" {
		return
	}
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	}
}
