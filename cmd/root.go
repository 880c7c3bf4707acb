package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/config"
	"github.com/abhisek/quizzer/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "quizzer",
	Short: "Run multiple-choice quizzes in the terminal",
	Long: `Quizzer — pick a quiz from the questions directory, answer it one question
at a time, and get a score, a percentage and a grade on the 7-step scale.
Every completed run is saved as a JSON result record.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Quiz directory (overrides "+config.EnvQuestions+" env var)")
	rootCmd.PersistentFlags().String("results", "", "Result directory (overrides "+config.EnvResults+" env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output (also honors NO_COLOR)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the directories using flags (highest priority),
// then env vars, then the defaults under the working directory.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	questions, _ := cmd.Flags().GetString("questions")
	results, _ := cmd.Flags().GetString("results")
	return config.Resolve(questions, results)
}

// newLogger builds the diagnostic logger for cmd.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// colorEnabled reports whether styled output is wanted.
func colorEnabled(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}
