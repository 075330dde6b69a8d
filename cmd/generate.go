package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizcraft/internal/generation"
	"quizcraft/internal/studykit"
)

var generateCmd = &cobra.Command{
	Use:   "generate <document>",
	Short: "Generate a study kit without the TUI and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("questions")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		output, _ := cmd.Flags().GetString("output")
		showUsage, _ := cmd.Flags().GetBool("usage")

		cfgPath, _ := cmd.Flags().GetString("config")
		s, err := loadSettings(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cmd.Flags().Changed("questions") && s.Defaults.Questions > 0 {
			count = s.Defaults.Questions
		}
		if !cmd.Flags().Changed("difficulty") && s.Defaults.Difficulty != "" {
			difficulty = s.Defaults.Difficulty
		}

		gen, _, usage, err := buildServices(cmd, s)
		if err != nil {
			return err
		}

		req, err := generation.NewRequest(args[0], count, generation.ParseDifficulty(difficulty))
		if err != nil {
			return err
		}

		kit, err := gen.Generate(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("generate study kit: %w", err)
		}

		data, err := studykit.EncodeKit(kit)
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			fmt.Println(string(data))
		} else {
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Study kit written to %s\n", output)
		}

		if showUsage && usage != nil {
			requests, in, out, cost := usage.Totals()
			fmt.Fprintf(cmd.ErrOrStderr(), "LLM usage: %d requests, %d in / %d out tokens, ~$%.4f\n",
				requests, in, out, cost)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("questions", "n", generation.DefaultQuestions, "Number of quiz questions (5-30, steps of 5)")
	generateCmd.Flags().StringP("difficulty", "d", string(generation.DifficultyMedium), "Quiz difficulty: easy, medium, or hard")
	generateCmd.Flags().StringP("output", "o", "", "Write the kit JSON to a file instead of stdout")
	generateCmd.Flags().Bool("usage", false, "Print LLM token usage to stderr after generating")
}
