package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/recipebox/backend/internal/domain"
)

// WritePanel prints a panel for the terminal client: the placeholder, or one line per card
func WritePanel(w io.Writer, panel PanelView) error {
	if panel.Placeholder != "" {
		_, err := fmt.Fprintln(w, panel.Placeholder)
		return err
	}

	for _, card := range panel.Cards {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", card.ID, card.Name); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecipe prints the detail view
func WriteRecipe(w io.Writer, recipe domain.RecipeDetail) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", recipe.Name, recipe.ID)
	if recipe.ThumbnailURL != "" {
		fmt.Fprintf(&b, "%s\n", recipe.ThumbnailURL)
	}

	b.WriteString("\nIngredients\n")
	for _, ing := range recipe.Ingredients {
		if ing.Measure != "" {
			fmt.Fprintf(&b, "  - %s - %s\n", ing.Name, ing.Measure)
		} else {
			fmt.Fprintf(&b, "  - %s\n", ing.Name)
		}
	}

	b.WriteString("\nInstructions\n")
	b.WriteString(strings.TrimSpace(recipe.Instructions))
	b.WriteString("\n")

	if recipe.VideoURL != "" {
		fmt.Fprintf(&b, "\nWatch on YouTube: %s\n", recipe.VideoURL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
