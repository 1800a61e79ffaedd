package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/infrastructure/export"
	"github.com/recipebox/backend/internal/ui"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite recipes",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites in the order they were added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := application.Session
		if err := session.LoadFavoritesOnStartup(cmd.Context()); err != nil {
			return err
		}

		panel := session.Snapshot().Favorites
		return render(cmd.OutOrStdout(), newPanelOutput(panel), func(w io.Writer) error {
			return ui.WritePanel(w, panel)
		})
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a recipe to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		added, err := application.Favorites.AddByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printChange(cmd, args[0], added, "added", "already a favorite")
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a recipe from favorites",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Favorites.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		return printChange(cmd, args[0], false, "", "removed")
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Add the recipe if it is not a favorite, remove it otherwise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := args[0]

		exists, err := application.Favorites.Contains(ctx, id)
		if err != nil {
			return err
		}
		if exists {
			if err := application.Favorites.Remove(ctx, id); err != nil {
				return err
			}
			return printChange(cmd, id, false, "", "removed")
		}

		detail, err := application.Recipes.Details(ctx, id)
		if err != nil {
			return err
		}
		added, err := application.Favorites.Toggle(ctx, domain.FavoriteFromSummary(detail.Summary()))
		if err != nil {
			return err
		}
		return printChange(cmd, id, added, "added", "removed")
	},
}

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write favorites to an .xlsx workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		entries, err := application.Favorites.List(cmd.Context())
		if err != nil {
			return err
		}
		if err := export.SaveFavoritesXLSX(path, entries); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d favorites to %s\n", len(entries), path)
		return nil
	},
}

// changeOutput reports the result of add, remove and toggle.
type changeOutput struct {
	ID       string `json:"id" yaml:"id"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

func printChange(cmd *cobra.Command, id string, favorite bool, yes, no string) error {
	return render(cmd.OutOrStdout(), changeOutput{ID: id, Favorite: favorite}, func(w io.Writer) error {
		msg := no
		if favorite {
			msg = yes
		}
		_, err := fmt.Fprintf(w, "%s: %s\n", id, msg)
		return err
	})
}

func init() {
	favoritesExportCmd.Flags().StringP("file", "f", "favorites.xlsx", "output workbook path")

	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesToggleCmd, favoritesExportCmd)
	rootCmd.AddCommand(favoritesCmd)
}
