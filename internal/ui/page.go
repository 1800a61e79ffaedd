// Package ui holds the page state of the recipe client and renders it.
// A Session is the single source of truth for what the user sees: the
// results and favorites panels, which of them is visible, the detail modal
// and any pending alert. Both the web front end and the terminal client
// drive the same Session operations and render its snapshots.
package ui

import "github.com/recipebox/backend/internal/domain"

// User-facing messages
const (
	PromptMessage         = "Please enter a search term!"
	LoadingMessage        = "Loading recipes..."
	SearchErrorMessage    = "Error fetching recipes."
	NoFavoritesMessage    = "No favorites yet..."
	FavoritesErrorMessage = "Error loading favorites."
	DetailsErrorMessage   = "Error loading recipe details"
	FavoriteUpdateMessage = "Error updating favorites"
)

// BackdropTarget identifies the modal overlay itself. Dismissal only happens for this target.
const BackdropTarget = "backdrop"

// NoResultsMessage keeps the literal query text
func NoResultsMessage(query string) string {
	return `No recipes found for "` + query + `".`
}

// Panel names one of the two mutually exclusive content regions
type Panel string

const (
	PanelResults   Panel = "results"
	PanelFavorites Panel = "favorites"
)

// Card is one rendered recipe summary
type Card struct {
	ID           string
	Name         string
	ThumbnailURL string
	// Favorite marks cards in the favorites panel, whose action is Remove instead of Favorite.
	Favorite bool
}

// PanelView is either a placeholder message or a list of cards
type PanelView struct {
	Placeholder string
	Cards       []Card
}

// Empty reports whether the panel shows neither cards nor a message
func (p PanelView) Empty() bool {
	return p.Placeholder == "" && len(p.Cards) == 0
}

// ModalView is the recipe detail overlay
type ModalView struct {
	Open   bool
	Recipe domain.RecipeDetail
}

// Page is a snapshot of everything on screen
type Page struct {
	Query     string
	Active    Panel
	Results   PanelView
	Favorites PanelView
	Modal     ModalView
	Alert     string
}

func (p Page) clone() Page {
	p.Results.Cards = append([]Card(nil), p.Results.Cards...)
	p.Favorites.Cards = append([]Card(nil), p.Favorites.Cards...)
	p.Modal.Recipe.Ingredients = append([]domain.Ingredient(nil), p.Modal.Recipe.Ingredients...)
	return p
}

func summaryCards(summaries []domain.RecipeSummary) []Card {
	cards := make([]Card, 0, len(summaries))
	for _, s := range summaries {
		cards = append(cards, Card{ID: s.ID, Name: s.Name, ThumbnailURL: s.ThumbnailURL})
	}
	return cards
}

func favoriteCards(entries []domain.FavoriteEntry) []Card {
	cards := make([]Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, Card{ID: e.ID, Name: e.Name, ThumbnailURL: e.ThumbnailURL, Favorite: true})
	}
	return cards
}

// FavoritesVisible reports whether the favorites panel is the visible one
func (p Page) FavoritesVisible() bool {
	return p.Active == PanelFavorites
}
