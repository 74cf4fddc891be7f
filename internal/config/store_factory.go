package config

import (
	"fmt"
	"os"

	"worklog/internal/store"
)

// CreateStore creates the durable store described by the configuration,
// creating the store directory if needed.
func CreateStore(cfg *Config) (store.Store, error) {
	if err := os.MkdirAll(cfg.Store.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	st, err := store.NewSQLite(cfg.GetStorePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return st, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() store.Store {
	return store.NewMemory()
}
