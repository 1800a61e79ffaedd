package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/recipebox/backend/internal/domain"
)

// DefaultBaseURL is the public TheMealDB v1 endpoint with the shared test key
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// retryBaseDelay is the first backoff step between attempts. Tests shrink it.
var retryBaseDelay = 500 * time.Millisecond

// Client handles communication with the TheMealDB API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxAttempts int
	debug       bool
}

// NewClient creates a new TheMealDB client.
// A zero timeout leaves requests unbounded; maxAttempts below 1 means a single attempt.
func NewClient(baseURL string, timeout time.Duration, maxAttempts int) *Client {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: maxAttempts,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the wait before the next attempt: base, 2*base, 4*base...
func exponentialBackoff(attempt int) time.Duration {
	return retryBaseDelay * time.Duration(1<<uint(attempt-1))
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "recipebox/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	}

	return resp, nil
}

// getMeals fetches reqURL and decodes the meals envelope.
// Transport errors and 5xx responses are retried up to maxAttempts; 4xx and decode errors are not.
func (c *Client) getMeals(ctx context.Context, reqURL string) (*domain.MealsResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", domain.ErrNetworkFailure, ctx.Err())
			case <-time.After(exponentialBackoff(attempt - 1)):
			}
		}

		if c.debug {
			log.Printf("[MealDB] GET %s (attempt %d/%d)", reqURL, attempt, c.maxAttempts)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[MealDB] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("%w: reading body: %v", domain.ErrNetworkFailure, readErr)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			log.Printf("[MealDB] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrNetworkFailure, resp.StatusCode)
			if resp.StatusCode < http.StatusInternalServerError {
				return nil, lastErr
			}
			continue
		}

		var mealsResp domain.MealsResponse
		if err := json.Unmarshal(body, &mealsResp); err != nil {
			log.Printf("[MealDB] JSON decode error: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
		}

		return &mealsResp, nil
	}

	return nil, lastErr
}

// SearchMeals searches recipes by name. A "meals": null answer yields an empty response, not an error.
func (c *Client) SearchMeals(ctx context.Context, query string) (*domain.MealsResponse, error) {
	params := url.Values{}
	params.Set("s", query)
	reqURL := fmt.Sprintf("%s/search.php?%s", c.baseURL, params.Encode())

	resp, err := c.getMeals(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	log.Printf("[MealDB] Found %d meals for query: %q", len(resp.Meals), query)
	return resp, nil
}

// LookupMeal retrieves the full record for one recipe id. The first element of "meals" is used.
func (c *Client) LookupMeal(ctx context.Context, id string) (*domain.Meal, error) {
	params := url.Values{}
	params.Set("i", id)
	reqURL := fmt.Sprintf("%s/lookup.php?%s", c.baseURL, params.Encode())

	resp, err := c.getMeals(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if len(resp.Meals) == 0 || resp.Meals[0] == nil {
		return nil, fmt.Errorf("%w: id %s", domain.ErrRecipeNotFound, id)
	}

	meal := resp.Meals[0]
	return &meal, nil
}
