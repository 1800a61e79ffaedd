package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/infrastructure/storage"
	"github.com/recipebox/backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecipes answers searches from a table. A query listed in gates blocks until its channel is closed.
type fakeRecipes struct {
	mu          sync.Mutex
	results     map[string][]domain.RecipeSummary
	details     map[string]*domain.RecipeDetail
	searchErr   error
	gates       map[string]chan struct{}
	started     chan string
	searchCalls int
}

func newFakeRecipes() *fakeRecipes {
	return &fakeRecipes{
		results: make(map[string][]domain.RecipeSummary),
		details: make(map[string]*domain.RecipeDetail),
		gates:   make(map[string]chan struct{}),
		started: make(chan string, 8),
	}
}

func (f *fakeRecipes) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	f.mu.Lock()
	f.searchCalls++
	gate := f.gates[query]
	f.mu.Unlock()

	f.started <- query
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[query], nil
}

func (f *fakeRecipes) Details(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.details[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return d, nil
}

func newTestSession(recipes *fakeRecipes) (*Session, *usecase.FavoritesStore) {
	favorites := usecase.NewFavoritesStore(storage.NewMemoryStore(), recipes)
	return NewSession(recipes, favorites), favorites
}

func summaries(n int) []domain.RecipeSummary {
	out := make([]domain.RecipeSummary, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		out = append(out, domain.RecipeSummary{ID: id, Name: "Recipe " + id, ThumbnailURL: "https://img.example/" + id + ".jpg"})
	}
	return out
}

func waitStarted(t *testing.T, f *fakeRecipes, want string) {
	t.Helper()
	select {
	case got := <-f.started:
		require.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatalf("search %q never started", want)
	}
}

func TestSession_Defaults(t *testing.T) {
	session, _ := newTestSession(newFakeRecipes())

	page := session.Snapshot()
	assert.Equal(t, PanelResults, page.Active)
	assert.False(t, page.Modal.Open)
	assert.Empty(t, page.Alert)
}

func TestSession_SearchRendersOneCardPerMatch(t *testing.T) {
	for _, n := range []int{1, 3, 12} {
		recipes := newFakeRecipes()
		recipes.results["soup"] = summaries(n)
		session, _ := newTestSession(recipes)

		session.Search(context.Background(), "  soup ")

		page := session.Snapshot()
		assert.Empty(t, page.Results.Placeholder)
		require.Len(t, page.Results.Cards, n)
		for i, card := range page.Results.Cards {
			assert.Equal(t, recipes.results["soup"][i].Name, card.Name)
			assert.Equal(t, recipes.results["soup"][i].ThumbnailURL, card.ThumbnailURL)
			assert.False(t, card.Favorite)
		}
		assert.Equal(t, "soup", page.Query)
	}
}

func TestSession_BlankQueryPromptsWithoutFetching(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		recipes := newFakeRecipes()
		session, _ := newTestSession(recipes)

		session.Search(context.Background(), query)

		assert.Equal(t, PromptMessage, session.Snapshot().Results.Placeholder)
		assert.Equal(t, 0, recipes.searchCalls)
	}
}

func TestSession_NoMatchesKeepsQueryText(t *testing.T) {
	recipes := newFakeRecipes()
	session, _ := newTestSession(recipes)

	session.Search(context.Background(), `Crème "brûlée"`)

	page := session.Snapshot()
	assert.Equal(t, `No recipes found for "Crème "brûlée"".`, page.Results.Placeholder)
	assert.Contains(t, page.Results.Placeholder, `Crème "brûlée"`)
	assert.Empty(t, page.Results.Cards)
}

func TestSession_SearchFailureShowsErrorPlaceholder(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.searchErr = domain.ErrNetworkFailure
	session, _ := newTestSession(recipes)

	session.Search(context.Background(), "soup")

	assert.Equal(t, SearchErrorMessage, session.Snapshot().Results.Placeholder)
}

func TestSession_LoadingPlaceholderBeforeResponse(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.results["slow"] = summaries(2)
	gate := make(chan struct{})
	recipes.gates["slow"] = gate
	session, _ := newTestSession(recipes)

	done := make(chan struct{})
	go func() {
		session.Search(context.Background(), "slow")
		close(done)
	}()

	waitStarted(t, recipes, "slow")
	assert.Equal(t, LoadingMessage, session.Snapshot().Results.Placeholder)

	close(gate)
	<-done
	assert.Len(t, session.Snapshot().Results.Cards, 2)
}

func TestSession_StaleSearchIsDropped(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.results["first"] = summaries(5)
	recipes.results["second"] = summaries(1)
	gate := make(chan struct{})
	recipes.gates["first"] = gate
	session, _ := newTestSession(recipes)

	firstDone := make(chan struct{})
	go func() {
		session.Search(context.Background(), "first")
		close(firstDone)
	}()
	waitStarted(t, recipes, "first")

	session.Search(context.Background(), "second")
	waitStarted(t, recipes, "second")

	close(gate)
	<-firstDone

	page := session.Snapshot()
	assert.Equal(t, "second", page.Query)
	assert.Len(t, page.Results.Cards, 1)
}

func TestSession_BlankQuerySupersedesPendingSearch(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.results["pending"] = summaries(2)
	gate := make(chan struct{})
	recipes.gates["pending"] = gate
	session, _ := newTestSession(recipes)

	done := make(chan struct{})
	go func() {
		session.Search(context.Background(), "pending")
		close(done)
	}()
	waitStarted(t, recipes, "pending")

	session.Search(context.Background(), " ")
	close(gate)
	<-done

	assert.Equal(t, PromptMessage, session.Snapshot().Results.Placeholder)
}

func TestSession_ViewDetails(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.details["52977"] = &domain.RecipeDetail{
		ID:   "52977",
		Name: "Corba",
		Ingredients: []domain.Ingredient{
			{Name: "Salt", Measure: "1 tsp"},
			{Name: "Pepper", Measure: "pinch"},
		},
		Instructions: "Simmer.",
	}
	session, _ := newTestSession(recipes)

	t.Run("opens modal on success", func(t *testing.T) {
		session.ViewDetails(context.Background(), "52977")

		page := session.Snapshot()
		assert.True(t, page.Modal.Open)
		assert.Equal(t, "Corba", page.Modal.Recipe.Name)
		assert.Len(t, page.Modal.Recipe.Ingredients, 2)
		assert.Empty(t, page.Alert)
	})

	t.Run("failure alerts and does not open the modal", func(t *testing.T) {
		session.CloseModal()
		session.ViewDetails(context.Background(), "missing")

		page := session.Snapshot()
		assert.False(t, page.Modal.Open)
		assert.Equal(t, DetailsErrorMessage, page.Alert)
	})

	t.Run("next action clears the alert", func(t *testing.T) {
		session.ViewDetails(context.Background(), "52977")
		assert.Empty(t, session.Snapshot().Alert)
	})
}

func TestSession_DismissModal(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.details["1"] = &domain.RecipeDetail{ID: "1", Name: "Soup"}
	session, _ := newTestSession(recipes)

	session.ViewDetails(context.Background(), "1")
	require.True(t, session.Snapshot().Modal.Open)

	assert.False(t, session.DismissModal("modalDetails"))
	assert.True(t, session.Snapshot().Modal.Open)

	assert.True(t, session.DismissModal(BackdropTarget))
	assert.False(t, session.Snapshot().Modal.Open)

	session.ViewDetails(context.Background(), "1")
	session.CloseModal()
	assert.False(t, session.Snapshot().Modal.Open)
}

func TestSession_ToggleViewRendersFavorites(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(newFakeRecipes())

	assert.Equal(t, PanelFavorites, session.ToggleView(ctx))
	page := session.Snapshot()
	assert.True(t, page.FavoritesVisible())
	assert.Equal(t, NoFavoritesMessage, page.Favorites.Placeholder)

	assert.Equal(t, PanelResults, session.ToggleView(ctx))
	session.ToggleFavorite(ctx, domain.FavoriteEntry{ID: "52977", Name: "Corba", ThumbnailURL: "c.jpg"})

	session.ToggleView(ctx)
	page = session.Snapshot()
	assert.Empty(t, page.Favorites.Placeholder)
	require.Len(t, page.Favorites.Cards, 1)
	assert.Equal(t, Card{ID: "52977", Name: "Corba", ThumbnailURL: "c.jpg", Favorite: true}, page.Favorites.Cards[0])
}

func TestSession_ToggleFavoriteRerendersVisibleFavorites(t *testing.T) {
	ctx := context.Background()
	session, favorites := newTestSession(newFakeRecipes())
	corba := domain.FavoriteEntry{ID: "52977", Name: "Corba", ThumbnailURL: "c.jpg"}

	session.ToggleView(ctx)
	session.ToggleFavorite(ctx, corba)
	assert.Len(t, session.Snapshot().Favorites.Cards, 1)

	session.ToggleFavorite(ctx, corba)
	assert.Equal(t, NoFavoritesMessage, session.Snapshot().Favorites.Placeholder)

	list, err := favorites.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSession_ToggleFavoriteWhileResultsVisibleLeavesPanelAlone(t *testing.T) {
	ctx := context.Background()
	session, favorites := newTestSession(newFakeRecipes())

	session.ToggleFavorite(ctx, domain.FavoriteEntry{ID: "52977", Name: "Corba"})

	assert.True(t, session.Snapshot().Favorites.Empty())
	contains, err := favorites.Contains(ctx, "52977")
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestSession_ToggleFavoriteFailureAlerts(t *testing.T) {
	session, _ := newTestSession(newFakeRecipes())

	session.ToggleFavorite(context.Background(), domain.FavoriteEntry{})

	assert.Equal(t, FavoriteUpdateMessage, session.Snapshot().Alert)
}

func TestSession_LoadFavoritesOnStartup(t *testing.T) {
	ctx := context.Background()
	recipes := newFakeRecipes()
	recipes.details["52977"] = &domain.RecipeDetail{ID: "52977", Name: "Corba", ThumbnailURL: "c.jpg"}

	kv := storage.NewMemoryStore()
	require.NoError(t, kv.SetItem(ctx, usecase.FavoritesKey, `["52977"]`))
	session := NewSession(recipes, usecase.NewFavoritesStore(kv, recipes))

	require.NoError(t, session.LoadFavoritesOnStartup(ctx))

	page := session.Snapshot()
	assert.Equal(t, PanelResults, page.Active)
	require.Len(t, page.Favorites.Cards, 1)
	assert.Equal(t, "Corba", page.Favorites.Cards[0].Name)
}

func TestSession_LoadFavoritesOnStartupFailure(t *testing.T) {
	ctx := context.Background()
	recipes := newFakeRecipes()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.SetItem(ctx, usecase.FavoritesKey, `{broken`))
	session := NewSession(recipes, usecase.NewFavoritesStore(kv, recipes))

	err := session.LoadFavoritesOnStartup(ctx)
	assert.True(t, errors.Is(err, domain.ErrParseFailure))
	assert.Equal(t, FavoritesErrorMessage, session.Snapshot().Favorites.Placeholder)
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	recipes := newFakeRecipes()
	recipes.results["soup"] = summaries(2)
	session, _ := newTestSession(recipes)
	session.Search(context.Background(), "soup")

	page := session.Snapshot()
	page.Results.Cards[0].Name = "mutated"

	assert.Equal(t, "Recipe a", session.Snapshot().Results.Cards[0].Name)
}
