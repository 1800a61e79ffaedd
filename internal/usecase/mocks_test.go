package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/recipebox/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string][]byte
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string][]byte),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockMealDBClient is a mock implementation of domain.MealDBClient
type MockMealDBClient struct {
	mu           sync.Mutex
	searchResult *domain.MealsResponse
	searchError  error
	meals        map[string]domain.Meal
	lookupError  error
	searchCalls  int
	lookupCalls  int
}

func NewMockMealDBClient() *MockMealDBClient {
	return &MockMealDBClient{meals: make(map[string]domain.Meal)}
}

func (m *MockMealDBClient) SearchMeals(ctx context.Context, query string) (*domain.MealsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	if m.searchError != nil {
		return nil, m.searchError
	}
	if m.searchResult == nil {
		return &domain.MealsResponse{}, nil
	}
	return m.searchResult, nil
}

func (m *MockMealDBClient) LookupMeal(ctx context.Context, id string) (*domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupCalls++
	if m.lookupError != nil {
		return nil, m.lookupError
	}
	meal, ok := m.meals[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return &meal, nil
}

func testMeal(id, name string) domain.Meal {
	return domain.Meal{
		"idMeal":         id,
		"strMeal":        name,
		"strMealThumb":   "https://img.example/" + id + ".jpg",
		"strIngredient1": "Salt",
		"strMeasure1":    "1 tsp",
	}
}
