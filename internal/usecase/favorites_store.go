package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/recipebox/backend/internal/domain"
)

// FavoritesKey is the local storage key holding the favorites array
const FavoritesKey = "favorites"

// FavoritesStore owns the persisted favorites list.
// The canonical stored form is a JSON array of {"id","name","thumb"} objects.
// Arrays of bare ids, or mixes of ids and objects, are read as entries lacking name and thumbnail.
type FavoritesStore struct {
	mu      sync.Mutex
	storage domain.KeyValueStore
	lookup  domain.RecipeLookup
}

// NewFavoritesStore creates a store over storage. lookup completes id-only entries and may be nil.
func NewFavoritesStore(storage domain.KeyValueStore, lookup domain.RecipeLookup) *FavoritesStore {
	return &FavoritesStore{
		storage: storage,
		lookup:  lookup,
	}
}

// List reads the favorites through from storage. An absent key is an empty list.
func (f *FavoritesStore) List(ctx context.Context) ([]domain.FavoriteEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, _, err := f.load(ctx)
	return entries, err
}

// Contains reports whether id is a favorite
func (f *FavoritesStore) Contains(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, _, err := f.load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(entries, id) >= 0, nil
}

// Toggle removes the entry when its id is present, otherwise appends it.
// It reports whether the entry is a favorite afterwards.
func (f *FavoritesStore) Toggle(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	entry.ID = strings.TrimSpace(entry.ID)
	if entry.ID == "" {
		return false, domain.ErrInvalidRequest
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, _, err := f.load(ctx)
	if err != nil {
		return false, err
	}

	added := true
	if i := indexOf(entries, entry.ID); i >= 0 {
		entries = append(entries[:i], entries[i+1:]...)
		added = false
	} else {
		entries = append(entries, entry)
	}

	if err := f.save(ctx, entries); err != nil {
		return false, err
	}

	log.Printf("[Favorites] Toggled %s (favorite=%v, total=%d)", entry.ID, added, len(entries))
	return added, nil
}

// Add appends entry unless its id is already present. It reports whether the list changed.
func (f *FavoritesStore) Add(ctx context.Context, entry domain.FavoriteEntry) (bool, error) {
	entry.ID = strings.TrimSpace(entry.ID)
	if entry.ID == "" {
		return false, domain.ErrInvalidRequest
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, _, err := f.load(ctx)
	if err != nil {
		return false, err
	}
	if indexOf(entries, entry.ID) >= 0 {
		return false, nil
	}

	if err := f.save(ctx, append(entries, entry)); err != nil {
		return false, err
	}
	return true, nil
}

// AddByID favorites a recipe known only by id, resolving its name and thumbnail first
func (f *FavoritesStore) AddByID(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, domain.ErrInvalidRequest
	}

	exists, err := f.Contains(ctx, id)
	if err != nil || exists {
		return false, err
	}

	if f.lookup == nil {
		return false, fmt.Errorf("%w: no recipe lookup configured", domain.ErrInvalidRequest)
	}
	detail, err := f.lookup.Details(ctx, id)
	if err != nil {
		return false, err
	}

	return f.Add(ctx, domain.FavoriteFromSummary(detail.Summary()))
}

// Remove deletes the favorite with id
func (f *FavoritesStore) Remove(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, _, err := f.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(entries, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrFavoriteNotFound, id)
	}

	return f.save(ctx, append(entries[:i], entries[i+1:]...))
}

// LoadOnStartup reads the stored list once, completes id-only entries through the lookup
// and rewrites the list in canonical form when anything changed.
// Entries whose lookup fails are kept as they are.
func (f *FavoritesStore) LoadOnStartup(ctx context.Context) ([]domain.FavoriteEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, legacy, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	changed := legacy
	for i, entry := range entries {
		if entry.Complete() || f.lookup == nil {
			continue
		}

		detail, err := f.lookup.Details(ctx, entry.ID)
		if err != nil {
			log.Printf("[Favorites] Could not resolve favorite %s: %v", entry.ID, err)
			continue
		}
		entries[i] = domain.FavoriteFromSummary(detail.Summary())
		changed = true
	}

	if changed {
		if err := f.save(ctx, entries); err != nil {
			return nil, err
		}
		log.Printf("[Favorites] Migrated %d favorites to full entries", len(entries))
	}

	return entries, nil
}

// load reads and decodes the stored list. legacy is true when any element was a bare id.
func (f *FavoritesStore) load(ctx context.Context) ([]domain.FavoriteEntry, bool, error) {
	raw, found, err := f.storage.GetItem(ctx, FavoritesKey)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return []domain.FavoriteEntry{}, false, nil
	}
	return decodeFavorites(raw)
}

func (f *FavoritesStore) save(ctx context.Context, entries []domain.FavoriteEntry) error {
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	return f.storage.SetItem(ctx, FavoritesKey, string(raw))
}

// decodeFavorites accepts arrays of entry objects, bare id strings, or a mix of both.
// Duplicate ids keep their first occurrence.
func decodeFavorites(raw string) ([]domain.FavoriteEntry, bool, error) {
	entries := []domain.FavoriteEntry{}
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return entries, false, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false, fmt.Errorf("%w: decoding favorites: %v", domain.ErrParseFailure, err)
	}

	legacy := false
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 {
			continue
		}

		var entry domain.FavoriteEntry
		switch item[0] {
		case '"':
			if err := json.Unmarshal(item, &entry.ID); err != nil {
				continue
			}
			legacy = true
		case '{':
			if err := json.Unmarshal(item, &entry); err != nil {
				continue
			}
		default:
			continue
		}

		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" || seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true
		entries = append(entries, entry)
	}

	return entries, legacy, nil
}

func indexOf(entries []domain.FavoriteEntry, id string) int {
	for i, entry := range entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}
