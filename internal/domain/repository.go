package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// MealDBClient defines the interface for interacting with the TheMealDB API
type MealDBClient interface {
	SearchMeals(ctx context.Context, query string) (*MealsResponse, error)
	LookupMeal(ctx context.Context, id string) (*Meal, error)
}

// KeyValueStore is device-local persistent storage: string keys to string values.
// Writes to a single key are atomic.
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// RecipeLookup resolves a recipe id to its full record
type RecipeLookup interface {
	Details(ctx context.Context, id string) (*RecipeDetail, error)
}
