package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/recipebox/backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvEntry is one row of the local key-value table
type kvEntry struct {
	Key       string `gorm:"column:item_key;primaryKey;size:255"`
	Value     string `gorm:"column:item_value;type:text;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "local_storage"
}

// SQLiteStore is a device-local key-value store backed by a SQLite file
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens or creates the database at path and migrates the schema
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrStorageUnavailable, path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	// One writer keeps single-key writes serialized.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: migrating schema: %v", domain.ErrStorageUnavailable, err)
	}

	log.Printf("[Storage] Using SQLite store at %s", path)
	return &SQLiteStore{db: db}, nil
}

// GetItem returns the value stored under key
func (s *SQLiteStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).Where("item_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return entry.Value, true, nil
}

// SetItem upserts the value under key
func (s *SQLiteStore) SetItem(ctx context.Context, key, value string) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"item_value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// RemoveItem deletes key; removing an absent key is not an error
func (s *SQLiteStore) RemoveItem(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("item_key = ?", key).Delete(&kvEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: remove %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
