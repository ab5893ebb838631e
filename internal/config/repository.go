package config

import (
	"fmt"
	"os"

	"work-hours/internal/repository/sqlite"
)

// CreateStore creates a persistence store using the configuration system
func CreateStore(config *Config) (sqlite.Store, error) {
	// Make sure the database directory exists before opening the file
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := sqlite.NewWithTimeouts(config.GetDatabasePath(), config.GetQueryTimeout(), config.GetWriteTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (sqlite.Store, error) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return store, nil
}
