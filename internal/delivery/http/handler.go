package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/ui"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// RecipeService searches and looks up recipes
type RecipeService interface {
	Search(ctx context.Context, query string) ([]domain.RecipeSummary, error)
	Details(ctx context.Context, id string) (*domain.RecipeDetail, error)
}

// FavoritesService is the persisted favorites list
type FavoritesService interface {
	List(ctx context.Context) ([]domain.FavoriteEntry, error)
	Contains(ctx context.Context, id string) (bool, error)
	Add(ctx context.Context, entry domain.FavoriteEntry) (bool, error)
	AddByID(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, id string) error
	Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	session   *ui.Session
	recipes   RecipeService
	favorites FavoritesService
}

// NewHandler creates a new HTTP handler.
// The web pages drive session; the JSON API talks to recipes and favorites directly.
func NewHandler(session *ui.Session, recipes RecipeService, favorites FavoritesService) *Handler {
	return &Handler{
		session:   session,
		recipes:   recipes,
		favorites: favorites,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "recipebox",
		"version": Version,
	})
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrFavoriteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNetworkFailure), errors.Is(err, domain.ErrParseFailure):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	log.Printf("[API] %s %s failed (%d): %v", c.Request.Method, c.Request.URL.Path, status, err)
	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(requestIDKey),
	})
}
