package database

import (
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Oleguzik/myMovies/internal/model"
	"github.com/Oleguzik/myMovies/internal/movies"
)

const movieColumns = "id, title, year, rating, image_url, user_id"

// ListMovies returns every movie owned by the user, ordered by
// insertion. An unknown user or an empty collection yields an empty
// slice, not an error.
func (s *Store) ListMovies(userID int64) ([]model.Movie, error) {
	result := []model.Movie{}
	query := fmt.Sprintf("SELECT %s FROM movies WHERE user_id = ? ORDER BY id", movieColumns)
	if err := s.db.Select(&result, query, userID); err != nil {
		return nil, fmt.Errorf("listing movies: %w", err)
	}
	return result, nil
}

// AddMovie inserts one movie row for the user. The sentinel poster
// value "N/A" is stored as NULL. Inserting for a nonexistent user
// violates the foreign key and is surfaced as movies.ErrUnknownUser;
// nothing is persisted in that case.
func (s *Store) AddMovie(title string, year int, rating float64, imageURL string, userID int64) (*model.Movie, error) {
	var poster *string
	if imageURL != "" && imageURL != "N/A" {
		poster = &imageURL
	}

	res, err := s.db.Exec(
		"INSERT INTO movies (title, year, rating, image_url, user_id) VALUES (?, ?, ?, ?, ?)",
		title, year, rating, poster, userID,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, movies.ErrUnknownUser
		}
		return nil, fmt.Errorf("adding movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new movie id: %w", err)
	}

	return &model.Movie{
		ID:       id,
		Title:    title,
		Year:     year,
		Rating:   rating,
		ImageURL: poster,
		UserID:   userID,
	}, nil
}

// DeleteMovie removes the row matching the exact title and user id.
// The affected-row count is the result: 0 means the title was not in
// the user's collection, which is a normal outcome.
func (s *Store) DeleteMovie(title string, userID int64) (int64, error) {
	res, err := s.db.Exec("DELETE FROM movies WHERE title = ? AND user_id = ?", title, userID)
	if err != nil {
		return 0, fmt.Errorf("deleting movie: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

// UpdateMovie sets a new rating on the row matching the exact title and
// user id, leaving every other column unchanged. Same affected-row
// convention as DeleteMovie.
func (s *Store) UpdateMovie(title string, rating float64, userID int64) (int64, error) {
	res, err := s.db.Exec("UPDATE movies SET rating = ? WHERE title = ? AND user_id = ?", rating, title, userID)
	if err != nil {
		return 0, fmt.Errorf("updating movie: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}
	return n, nil
}

// Compile-time check that Store implements the movie store interface
var _ movies.MovieStore = (*Store)(nil)
