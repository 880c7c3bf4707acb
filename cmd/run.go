package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/catalog"
	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/result"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/picker"
)

// runPlay lists the catalog, lets the user choose, runs the quiz and saves
// the result.
func runPlay(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)
	console := session.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	cat := catalog.New(cfg.CatalogPath)
	ids, err := cat.List()
	if errors.Is(err, catalog.ErrCatalogUnavailable) {
		return fmt.Errorf("input directory not found: %w", err)
	}
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w in %s", ErrNoQuizzesFound, cat.Dir())
	}
	log.WithFields(logrus.Fields{"dir": cat.Dir(), "count": len(ids)}).Debug("Catalog listed")

	id, err := selectQuiz(cmd, console, ids)
	if err != nil {
		return err
	}

	q, err := quiz.Load(cat.Path(id))
	if err != nil {
		return fmt.Errorf("load quiz: %w", err)
	}
	log.WithFields(logrus.Fields{"quiz": q.Name, "questions": q.Len()}).Debug("Quiz loaded")

	r, err := session.Run(q, console,
		session.WithLogger(log),
		session.WithStyles(sessionStyles(colorEnabled(cmd))),
	)
	if err != nil {
		return err
	}

	path, err := result.NewWriter(cfg.OutputPath, log).Write(r)
	if err != nil {
		return err
	}

	console.Println("")
	console.Println("Results saved to: " + path)
	return nil
}

// selectQuiz picks one catalog identifier from the --quiz flag, the TUI
// picker, or a numbered prompt, in that order.
func selectQuiz(cmd *cobra.Command, console session.IO, ids []string) (string, error) {
	if name, _ := cmd.Flags().GetString("quiz"); name != "" {
		for _, id := range ids {
			if id == name || id == name+catalog.Ext {
				return id, nil
			}
		}
		return "", fmt.Errorf("%w: no quiz named %q", ErrInvalidSelection, name)
	}

	if useTUI, _ := cmd.Flags().GetBool("tui"); useTUI {
		idx, err := picker.Run("Available quizzes", ids)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidSelection, err)
		}
		return ids[idx], nil
	}

	console.Println("Available quizzes:")
	for i, id := range ids {
		console.Println(fmt.Sprintf(" %d. %s", i+1, id))
	}

	line, err := console.ReadLine("Select quiz number: ")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	choice := session.ParseChoice(line)
	if !choice.Valid || choice.Index < 0 || choice.Index >= len(ids) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(line))
	}
	return ids[choice.Index], nil
}
