package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/grade"
	"github.com/abhisek/quizzer/internal/result"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved quiz results",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().String("quiz", "", "Only show results for this quiz name")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	filter, _ := cmd.Flags().GetString("quiz")

	paths, err := result.List(cfg.OutputPath)
	if err != nil {
		return err
	}

	var records []*result.Result
	for _, p := range paths {
		r, err := result.Read(p)
		if err != nil {
			log.WithError(err).WithField("path", p).Warn("Skipping unreadable result")
			continue
		}
		if filter != "" && r.QuizName != filter {
			continue
		}
		if !grade.Valid(r.Grade) {
			log.WithFields(logrus.Fields{"path": p, "grade": r.Grade}).Warn("Skipping result with unknown grade")
			continue
		}
		records = append(records, r)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No results found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "QUIZ\tSCORE\tPERCENT\tGRADE\tTAKEN")
	passed := 0
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%d/%d\t%s%%\t%d\t%s\n", r.QuizName, r.Score, r.Total, r.Percentage, r.Grade, takenAt(r))
		if grade.Passed(r.Grade) {
			passed++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d results, %d passed\n", len(records), passed)
	return nil
}

// takenAt formats when r was taken, falling back to the raw timestamp for
// records written by other tools.
func takenAt(r *result.Result) string {
	t, err := r.Time()
	if err != nil {
		return r.Timestamp
	}
	return t.Format("2006-01-02 15:04")
}
