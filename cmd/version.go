package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at release time with -ldflags "-X quizcraft/cmd.version=v1.2.3".
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the quizcraft version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quizcraft %s\n", version)
	},
}
