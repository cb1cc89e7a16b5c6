package database

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Oleguzik/myMovies/internal/model"
	"github.com/Oleguzik/myMovies/internal/movies"
)

// CreateUser inserts a new user row. A taken username is rejected by
// the UNIQUE constraint and surfaced as movies.ErrDuplicateUser; the
// existing row is untouched.
func (s *Store) CreateUser(username string) (*model.User, error) {
	res, err := s.db.Exec("INSERT INTO users (username) VALUES (?)", username)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, movies.ErrDuplicateUser
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new user id: %w", err)
	}

	return &model.User{ID: id, Username: username}, nil
}

// ListUsers returns all users ordered by id.
func (s *Store) ListUsers() ([]model.User, error) {
	users := []model.User{}
	if err := s.db.Select(&users, "SELECT id, username FROM users ORDER BY id"); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// GetUserByID returns the user with the given id, or nil when there is none.
func (s *Store) GetUserByID(id int64) (*model.User, error) {
	var u model.User
	err := s.db.Get(&u, "SELECT id, username FROM users WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return &u, nil
}

// GetUserByName returns the user with the given name, or nil when there is none.
func (s *Store) GetUserByName(username string) (*model.User, error) {
	var u model.User
	err := s.db.Get(&u, "SELECT id, username FROM users WHERE username = ?", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding user by name: %w", err)
	}
	return &u, nil
}

// Compile-time check that Store implements the user store interface
var _ movies.UserStore = (*Store)(nil)
