package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipebox/backend/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search recipes by name",
	Long: `Search asks TheMealDB for recipes whose name contains the term and prints
one line per match. Several arguments are joined into one term.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := application.Session
		session.Search(cmd.Context(), strings.Join(args, " "))

		panel := session.Snapshot().Results
		if err := render(cmd.OutOrStdout(), newPanelOutput(panel), func(w io.Writer) error {
			return ui.WritePanel(w, panel)
		}); err != nil {
			return err
		}

		if panel.Placeholder == ui.SearchErrorMessage {
			return errors.New("search failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
