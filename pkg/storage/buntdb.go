package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/buntdb"

	"github.com/raykavin/pantalib/pkg/core"
)

const (
	// DefaultIndexName is the index ordering series by their last save
	DefaultIndexName = "update_index"
)

// BuntStorage implements Storage using BuntDB
type BuntStorage struct {
	db *buntdb.DB
}

// BuntConfig holds configuration options for BuntDB
type BuntConfig struct {
	// SyncPolicy determines how often data is synchronized to disk
	SyncPolicy buntdb.SyncPolicy
}

// DefaultBuntConfig returns the default configuration for BuntDB
func DefaultBuntConfig() BuntConfig {
	return BuntConfig{
		SyncPolicy: buntdb.EverySecond,
	}
}

// NewFromMemory creates an in-memory storage with default configuration
func NewFromMemory() (*BuntStorage, error) {
	return NewBuntStorage(":memory:", DefaultBuntConfig())
}

// NewFromFile creates a file-based storage with default configuration
func NewFromFile(file string) (*BuntStorage, error) {
	return NewBuntStorage(file, DefaultBuntConfig())
}

// NewBuntStorage creates a new BuntDB storage instance with the specified configuration
func NewBuntStorage(sourceFile string, config BuntConfig) (*BuntStorage, error) {
	db, err := buntdb.Open(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open buntdb: %w", err)
	}

	if err := db.SetConfig(buntdb.Config{
		SyncPolicy: config.SyncPolicy,
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure buntdb: %w", err)
	}

	if err := db.CreateIndex(DefaultIndexName, "*", buntdb.IndexJSON("updated_at")); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create default index: %w", err)
	}

	return &BuntStorage{db: db}, nil
}

// Save stores the series under key
func (b *BuntStorage) Save(key string, series *core.TimeSeries) error {
	content, err := encode(series, stamp())
	if err != nil {
		return fmt.Errorf("failed to marshal series %s: %w", key, err)
	}

	return b.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(key, string(content), nil); err != nil {
			return fmt.Errorf("failed to store series %s: %w", key, err)
		}
		return nil
	})
}

// Load returns the series stored under key
func (b *BuntStorage) Load(key string) (*core.TimeSeries, error) {
	var content string
	err := b.db.View(func(tx *buntdb.Tx) error {
		var err error
		content, err = tx.Get(key)
		return err
	})

	if err == buntdb.ErrNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load series %s: %w", key, err)
	}

	return decode([]byte(content))
}

// Delete removes the series stored under key
func (b *BuntStorage) Delete(key string) error {
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		return err
	})
	if err != nil && err != buntdb.ErrNotFound {
		return fmt.Errorf("failed to delete series %s: %w", key, err)
	}
	return nil
}

// Keys returns the sorted keys starting with prefix. The prefix is literal,
// glob characters in it match only themselves.
func (b *BuntStorage) Keys(prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendGreaterOrEqual("", prefix, func(key, _ string) bool {
			if !strings.HasPrefix(key, prefix) {
				return false
			}
			keys = append(keys, key)
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over keys: %w", err)
	}
	return keys, nil
}

// Recent returns up to limit keys, most recently saved first
func (b *BuntStorage) Recent(limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	keys := make([]string, 0, limit)
	err := b.db.View(func(tx *buntdb.Tx) error {
		return tx.Descend(DefaultIndexName, func(key, _ string) bool {
			keys = append(keys, key)
			return len(keys) < limit
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over %s: %w", DefaultIndexName, err)
	}
	return keys, nil
}

// Close closes the database connection
func (b *BuntStorage) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}
