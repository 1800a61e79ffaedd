package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/recipebox/backend/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe with ingredients and instructions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := application.Session
		session.ViewDetails(cmd.Context(), args[0])

		page := session.Snapshot()
		if page.Alert != "" {
			return errors.New(page.Alert)
		}

		recipe := page.Modal.Recipe
		return render(cmd.OutOrStdout(), recipe, func(w io.Writer) error {
			return ui.WriteRecipe(w, recipe)
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
