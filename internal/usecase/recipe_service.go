package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/infrastructure/mealdb"
)

// RecipeServiceConfig holds configuration for the recipe service
type RecipeServiceConfig struct {
	CacheTTL time.Duration
}

// RecipeService handles recipe search and lookup, caching lookups by id
type RecipeService struct {
	cache    domain.CacheRepository
	client   domain.MealDBClient
	cacheTTL time.Duration
}

// NewRecipeService creates a new recipe service with dependencies. cache may be nil.
func NewRecipeService(
	cache domain.CacheRepository,
	client domain.MealDBClient,
	config RecipeServiceConfig,
) *RecipeService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &RecipeService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Search returns one summary per match. No match is an empty, non-nil slice.
func (s *RecipeService) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	query = NormalizeQuery(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	resp, err := s.client.SearchMeals(ctx, query)
	if err != nil {
		return nil, err
	}

	return mealdb.MapToSummaries(resp.Meals)
}

// Details looks up one recipe by id.
// Flow: check cache -> lookup -> map -> cache -> return
func (s *RecipeService) Details(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := recipeCacheKey(id)

	if detail, err := s.getFromCache(ctx, cacheKey); err == nil {
		return detail, nil
	}

	meal, err := s.client.LookupMeal(ctx, id)
	if err != nil {
		return nil, err
	}

	detail, err := mealdb.MapToDetail(*meal)
	if err != nil {
		return nil, err
	}

	if err := s.setInCache(ctx, cacheKey, detail); err != nil {
		log.Printf("[Recipes] Failed to cache recipe %s: %v", id, err)
	}

	return detail, nil
}

// recipeCacheKey format: "recipe:{id}"
func recipeCacheKey(id string) string {
	return fmt.Sprintf("recipe:%s", id)
}

// getFromCache retrieves a recipe detail from cache
func (s *RecipeService) getFromCache(ctx context.Context, key string) (*domain.RecipeDetail, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var detail domain.RecipeDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return &detail, nil
}

// setInCache stores a recipe detail in cache
func (s *RecipeService) setInCache(ctx context.Context, key string, detail *domain.RecipeDetail) error {
	if s.cache == nil {
		return nil
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, raw, s.cacheTTL)
}
