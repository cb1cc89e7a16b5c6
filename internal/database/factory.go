package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Oleguzik/myMovies/internal/config"
)

// NewStoreFromConfig creates a Store based on the database config type.
func NewStoreFromConfig(cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		return Open(filepath.Join(cfg.DataDir, "movies.db"))
	case "memory":
		return Open(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
