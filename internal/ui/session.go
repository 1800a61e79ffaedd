package ui

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/recipebox/backend/internal/domain"
)

// RecipeFinder searches and looks up recipes
type RecipeFinder interface {
	Search(ctx context.Context, query string) ([]domain.RecipeSummary, error)
	Details(ctx context.Context, id string) (*domain.RecipeDetail, error)
}

// FavoritesManager is the persisted favorites list
type FavoritesManager interface {
	List(ctx context.Context) ([]domain.FavoriteEntry, error)
	Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error)
	LoadOnStartup(ctx context.Context) ([]domain.FavoriteEntry, error)
}

// Session is the page state of one user.
// Network calls run outside the lock; only the latest issued search may write its outcome.
type Session struct {
	mu        sync.Mutex
	recipes   RecipeFinder
	favorites FavoritesManager
	latest    uint64
	page      Page
}

// NewSession creates a session showing the results panel
func NewSession(recipes RecipeFinder, favorites FavoritesManager) *Session {
	return &Session{
		recipes:   recipes,
		favorites: favorites,
		page:      Page{Active: PanelResults},
	}
}

// Snapshot returns a copy of the current page
func (s *Session) Snapshot() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.clone()
}

// Search runs a query and replaces the results panel.
// A blank query shows the prompt without a network call. The loading placeholder is visible
// until the response arrives; a response to a superseded search is dropped.
func (s *Session) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.latest++
	token := s.latest
	s.page.Alert = ""
	s.page.Query = query
	if query == "" {
		s.page.Results = PanelView{Placeholder: PromptMessage}
		s.mu.Unlock()
		return
	}
	s.page.Results = PanelView{Placeholder: LoadingMessage}
	s.mu.Unlock()

	results, err := s.recipes.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.latest {
		log.Printf("[Session] Dropping stale results for %q", query)
		return
	}

	switch {
	case err != nil:
		log.Printf("[Session] Search %q failed: %v", query, err)
		s.page.Results = PanelView{Placeholder: SearchErrorMessage}
	case len(results) == 0:
		s.page.Results = PanelView{Placeholder: NoResultsMessage(query)}
	default:
		s.page.Results = PanelView{Cards: summaryCards(results)}
	}
}

// ViewDetails fetches one recipe and opens the modal.
// On failure the alert is set and the modal stays as it was.
func (s *Session) ViewDetails(ctx context.Context, id string) {
	s.mu.Lock()
	s.page.Alert = ""
	s.mu.Unlock()

	detail, err := s.recipes.Details(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("[Session] Details %q failed: %v", id, err)
		s.page.Alert = DetailsErrorMessage
		return
	}
	s.page.Modal = ModalView{Open: true, Recipe: *detail}
}

// CloseModal hides the modal
func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Modal = ModalView{}
}

// DismissModal hides the modal when target is the backdrop. Clicks inside the content are ignored.
func (s *Session) DismissModal(target string) bool {
	if target != BackdropTarget {
		return false
	}
	s.CloseModal()
	return true
}

// ToggleFavorite flips membership of entry and re-renders the favorites panel when it is visible
func (s *Session) ToggleFavorite(ctx context.Context, entry domain.FavoriteEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Alert = ""

	if _, err := s.favorites.Toggle(ctx, entry); err != nil {
		log.Printf("[Session] Toggle favorite %q failed: %v", entry.ID, err)
		s.page.Alert = FavoriteUpdateMessage
		return
	}

	if s.page.Active == PanelFavorites {
		s.renderFavoritesLocked(ctx)
	}
}

// ToggleView switches between the results and favorites panels.
// The favorites panel is re-rendered from storage every time it becomes visible.
func (s *Session) ToggleView(ctx context.Context) Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Alert = ""

	if s.page.Active == PanelFavorites {
		s.page.Active = PanelResults
		return s.page.Active
	}

	s.page.Active = PanelFavorites
	s.renderFavoritesLocked(ctx)
	return s.page.Active
}

// LoadFavoritesOnStartup migrates stored favorites and renders them into the favorites panel
// once, whichever panel is visible.
func (s *Session) LoadFavoritesOnStartup(ctx context.Context) error {
	entries, err := s.favorites.LoadOnStartup(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.page.Favorites = PanelView{Placeholder: FavoritesErrorMessage}
		return err
	}
	s.page.Favorites = favoritesPanel(entries)
	return nil
}

func (s *Session) renderFavoritesLocked(ctx context.Context) {
	entries, err := s.favorites.List(ctx)
	if err != nil {
		log.Printf("[Session] Listing favorites failed: %v", err)
		s.page.Favorites = PanelView{Placeholder: FavoritesErrorMessage}
		return
	}
	s.page.Favorites = favoritesPanel(entries)
}

func favoritesPanel(entries []domain.FavoriteEntry) PanelView {
	if len(entries) == 0 {
		return PanelView{Placeholder: NoFavoritesMessage}
	}
	return PanelView{Cards: favoriteCards(entries)}
}
