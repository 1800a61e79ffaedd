package domain

import "errors"

var (
	// ErrNetworkFailure is returned when the recipe API cannot be reached or answers with a non-OK status
	ErrNetworkFailure = errors.New("recipe API request failed")

	// ErrParseFailure is returned when the recipe API answers with malformed JSON or a record missing required fields
	ErrParseFailure = errors.New("recipe API response could not be parsed")

	// ErrRecipeNotFound is returned when a lookup by id yields no recipe
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrFavoriteNotFound is returned when removing a recipe that is not a favorite
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrStorageUnavailable is returned when the local key-value store cannot be read or written
	ErrStorageUnavailable = errors.New("local storage unavailable")
)
