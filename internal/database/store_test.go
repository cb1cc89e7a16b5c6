package database

import (
	"testing"

	"github.com/Oleguzik/myMovies/internal/config"
)

// newTestStore creates a new in-memory store with the schema applied.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestOpen_AppliesSchema(t *testing.T) {
	s := newTestStore(t)

	if err := s.CheckMigrations(); err != nil {
		t.Errorf("CheckMigrations() error = %v, want nil after Open", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DatabaseConfig{Type: "sqlite", DataDir: dir}

	s1, err := NewStoreFromConfig(cfg)
	if err != nil {
		t.Fatalf("first open error = %v", err)
	}
	if _, err := s1.CreateUser("alice"); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	s1.Close()

	// Reopening must leave the schema and the data untouched.
	s2, err := NewStoreFromConfig(cfg)
	if err != nil {
		t.Fatalf("second open error = %v", err)
	}
	defer s2.Close()

	u, err := s2.GetUserByName("alice")
	if err != nil {
		t.Fatalf("GetUserByName() error = %v", err)
	}
	if u == nil {
		t.Error("user created before reopen is gone")
	}
}

func TestNewStoreFromConfig(t *testing.T) {
	t.Run("memory database", func(t *testing.T) {
		got, err := NewStoreFromConfig(config.DatabaseConfig{Type: "memory"})
		if err != nil {
			t.Errorf("NewStoreFromConfig() unexpected error: %v", err)
			return
		}
		if got == nil {
			t.Error("NewStoreFromConfig() returned nil")
		}
		if got != nil {
			got.Close()
		}
	})

	t.Run("sqlite database", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Type:    "sqlite",
			DataDir: t.TempDir(),
		}
		got, err := NewStoreFromConfig(cfg)
		if err != nil {
			t.Errorf("NewStoreFromConfig() unexpected error: %v", err)
			return
		}
		if got == nil {
			t.Error("NewStoreFromConfig() returned nil")
		}
		if got != nil {
			got.Close()
		}
	})

	t.Run("sqlite database without data_dir", func(t *testing.T) {
		got, err := NewStoreFromConfig(config.DatabaseConfig{Type: "sqlite"})
		if err == nil {
			t.Error("NewStoreFromConfig() expected error for missing data_dir, got nil")
		}
		if got != nil {
			t.Error("NewStoreFromConfig() should return nil on error")
			got.Close()
		}
	})

	t.Run("unknown database type", func(t *testing.T) {
		got, err := NewStoreFromConfig(config.DatabaseConfig{Type: "unknown"})
		if err == nil {
			t.Error("NewStoreFromConfig() expected error for unknown type, got nil")
		}
		if got != nil {
			t.Error("NewStoreFromConfig() should return nil on error")
			got.Close()
		}
	})
}
