package domain

// RecipeSummary is the card-level view of a recipe returned by a search
type RecipeSummary struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ThumbnailURL string `json:"thumbnailUrl" yaml:"thumbnailUrl"`
}

// Ingredient is one flattened strIngredientN/strMeasureN slot
type Ingredient struct {
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure" yaml:"measure"`
}

// RecipeDetail holds the full record shown in the detail modal
type RecipeDetail struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	ThumbnailURL string       `json:"thumbnailUrl" yaml:"thumbnailUrl"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions string       `json:"instructions" yaml:"instructions"`
	VideoURL     string       `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
}

// Summary returns the card-level fields of the detail record
func (d *RecipeDetail) Summary() RecipeSummary {
	return RecipeSummary{ID: d.ID, Name: d.Name, ThumbnailURL: d.ThumbnailURL}
}

// FavoriteEntry is a recipe summary pinned by the user.
// The JSON keys match the layout written to local storage.
type FavoriteEntry struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ThumbnailURL string `json:"thumb" yaml:"thumb"`
}

// Complete reports whether the entry carries enough data to render a card
func (f FavoriteEntry) Complete() bool {
	return f.Name != "" && f.ThumbnailURL != ""
}

// FavoriteFromSummary builds a favorite entry from a search card
func FavoriteFromSummary(s RecipeSummary) FavoriteEntry {
	return FavoriteEntry{ID: s.ID, Name: s.Name, ThumbnailURL: s.ThumbnailURL}
}
