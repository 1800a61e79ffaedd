package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/recipebox/backend/internal/ui"
)

// outputFormat is the value of --output.
var outputFormat = "text"

func validateOutput() error {
	switch outputFormat {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", outputFormat)
	}
}

// render writes v as JSON or YAML, or calls text for the human format.
func render(w io.Writer, v any, text func(io.Writer) error) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// recipeRow is one card in structured output.
type recipeRow struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// panelOutput is a panel in structured output: a message, or rows.
type panelOutput struct {
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`
	Recipes []recipeRow `json:"recipes" yaml:"recipes"`
}

func newPanelOutput(panel ui.PanelView) panelOutput {
	out := panelOutput{Message: panel.Placeholder, Recipes: []recipeRow{}}
	for _, card := range panel.Cards {
		out.Recipes = append(out.Recipes, recipeRow{ID: card.ID, Name: card.Name, Thumbnail: card.ThumbnailURL})
	}
	return out
}
