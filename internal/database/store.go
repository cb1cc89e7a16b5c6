package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Oleguzik/myMovies/internal/database/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is the storage context over the SQLite database. It is opened
// once at process start, passed into the layers that need it, and
// closed at shutdown. It implements both movies.UserStore and
// movies.MovieStore.
type Store struct {
	db   *sqlx.DB
	path string
}

// Open opens the database at path and idempotently brings the schema up
// to date. path can be a file path or ":memory:" for an in-memory
// database. A migration failure here is fatal to startup; the caller
// aborts with the returned error.
func Open(path string) (*Store, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite connection with the
// appropriate PRAGMAs. Exported for tools and tests that need a raw,
// properly configured connection.
func OpenConnection(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A second pooled connection would see its own empty ":memory:"
	// database, and file-backed access is single-user anyway.
	db.SetMaxOpenConns(1)

	// Enable foreign key constraints (SQLite default is OFF for backward compatibility)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return db, nil
}

// Path returns the database file path (or ":memory:").
func (s *Store) Path() string {
	return s.path
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *Store) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db.DB)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
