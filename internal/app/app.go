// Package app wires configuration into the services shared by the server and the terminal client.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/domain"
	"github.com/recipebox/backend/internal/infrastructure/cache"
	"github.com/recipebox/backend/internal/infrastructure/mealdb"
	"github.com/recipebox/backend/internal/infrastructure/storage"
	"github.com/recipebox/backend/internal/ui"
	"github.com/recipebox/backend/internal/usecase"
)

// App holds the wired dependencies
type App struct {
	Config    *config.Config
	Recipes   *usecase.RecipeService
	Favorites *usecase.FavoritesStore
	Session   *ui.Session

	closers []io.Closer
}

// New builds the cache, the TheMealDB client, the favorites storage and the services over them
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	recipeCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, recipeCache)

	store, err := newStorage(cfg.Storage)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, store)

	client := mealdb.NewClient(cfg.MealDB.BaseURL, cfg.MealDB.Timeout, cfg.MealDB.MaxAttempts)
	// Enable debug mode in development environment
	if cfg.MealDB.Debug || cfg.Server.Environment == "development" {
		client.SetDebug(true)
		log.Printf("[App] MealDB client debug mode enabled")
	}

	a.Recipes = usecase.NewRecipeService(recipeCache, client, usecase.RecipeServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})
	a.Favorites = usecase.NewFavoritesStore(store, a.Recipes)
	a.Session = ui.NewSession(a.Recipes, a.Favorites)

	log.Printf("[App] MealDB: %s (timeout=%s, attempts=%d)", cfg.MealDB.BaseURL, cfg.MealDB.Timeout, cfg.MealDB.MaxAttempts)
	return a, nil
}

// Close releases the cache and storage, in reverse order of creation
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type closableCache interface {
	domain.CacheRepository
	io.Closer
}

type closableStore interface {
	domain.KeyValueStore
	io.Closer
}

func newCache(ctx context.Context, cfg config.CacheConfig) (closableCache, error) {
	switch cfg.Type {
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis cache: %w", err)
		}
		log.Printf("[App] Cache: redis (ttl=%s)", cfg.TTL)
		return c, nil
	case "memory", "":
		log.Printf("[App] Cache: memory (ttl=%s)", cfg.TTL)
		return cache.NewMemoryCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

func newStorage(cfg config.StorageConfig) (closableStore, error) {
	switch cfg.Type {
	case "sqlite", "":
		s, err := storage.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Printf("[App] Storage: sqlite at %s", cfg.Path)
		return s, nil
	case "memory":
		log.Printf("[App] Storage: memory (favorites are lost on exit)")
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
