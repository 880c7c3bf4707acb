package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Choose a quiz and answer it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("quiz", "", "Quiz to run by name, skipping the selection prompt")
	cmd.Flags().Bool("tui", false, "Choose the quiz with an interactive picker")
}
