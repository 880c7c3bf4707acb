package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizzer/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		ids, err := catalog.New(cfg.CatalogPath).List()
		if errors.Is(err, catalog.ErrCatalogUnavailable) {
			return fmt.Errorf("input directory not found: %w", err)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No quiz files found.")
			return nil
		}
		fmt.Fprintln(out, "Available quizzes:")
		for i, id := range ids {
			fmt.Fprintf(out, " %d. %s\n", i+1, id)
		}
		return nil
	},
}
