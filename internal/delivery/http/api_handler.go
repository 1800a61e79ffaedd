package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/backend/internal/domain"
)

// SearchRecipesResponse is the JSON body of a recipe search
type SearchRecipesResponse struct {
	Query   string                 `json:"query"`
	Count   int                    `json:"count"`
	Recipes []domain.RecipeSummary `json:"recipes"`
}

// FavoriteRequest is the body accepted by the favorites endpoints
type FavoriteRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Thumb string `json:"thumb"`
}

// SearchRecipes handles GET /api/v1/recipes/search?s=
func (h *Handler) SearchRecipes(c *gin.Context) {
	query := c.Query("s")

	recipes, err := h.recipes.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchRecipesResponse{
		Query:   strings.TrimSpace(query),
		Count:   len(recipes),
		Recipes: recipes,
	})
}

// GetRecipe handles GET /api/v1/recipes/:id
func (h *Handler) GetRecipe(c *gin.Context) {
	detail, err := h.recipes.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListFavorites handles GET /api/v1/favorites
func (h *Handler) ListFavorites(c *gin.Context) {
	entries, err := h.favorites.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(entries),
		"favorites": entries,
	})
}

// AddFavorite handles POST /api/v1/favorites.
// A body without a name is resolved through a recipe lookup.
func (h *Handler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.Join(domain.ErrInvalidRequest, err))
		return
	}

	var (
		added bool
		err   error
	)
	if strings.TrimSpace(req.Name) == "" {
		added, err = h.favorites.AddByID(c.Request.Context(), req.ID)
	} else {
		added, err = h.favorites.Add(c.Request.Context(), req.entry())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"id":    strings.TrimSpace(req.ID),
		"added": added,
	})
}

// RemoveFavorite handles DELETE /api/v1/favorites/:id
func (h *Handler) RemoveFavorite(c *gin.Context) {
	if err := h.favorites.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleFavoriteAPI handles POST /api/v1/favorites/:id/toggle.
// The optional body carries name and thumbnail; without them an added entry is resolved by lookup.
func (h *Handler) ToggleFavoriteAPI(c *gin.Context) {
	ctx := c.Request.Context()
	req := FavoriteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, errors.Join(domain.ErrInvalidRequest, err))
		return
	}
	req.ID = c.Param("id")

	var (
		favorite bool
		err      error
	)
	if strings.TrimSpace(req.Name) != "" {
		favorite, err = h.favorites.Toggle(ctx, req.entry())
	} else {
		favorite, err = h.toggleByID(c, req.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       req.ID,
		"favorite": favorite,
	})
}

func (h *Handler) toggleByID(c *gin.Context, id string) (bool, error) {
	ctx := c.Request.Context()

	exists, err := h.favorites.Contains(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		return false, h.favorites.Remove(ctx, id)
	}
	return h.favorites.AddByID(ctx, id)
}

func (r FavoriteRequest) entry() domain.FavoriteEntry {
	return domain.FavoriteEntry{
		ID:           r.ID,
		Name:         strings.TrimSpace(r.Name),
		ThumbnailURL: strings.TrimSpace(r.Thumb),
	}
}
