package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizcraft",
	Short: "Turn any document into an interactive study kit",
	Long:  "QuizCraft — terminal app that turns a document into quizzes, flashcards, study notes, and a chat tutor.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: quizcraft.yaml in the user config dir)")
	rootCmd.PersistentFlags().String("backend", "", "Remote backend URL (overrides config file and QUIZCRAFT_BACKEND_URL)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
