package movies

import (
	"context"
	"fmt"

	"github.com/Oleguzik/myMovies/internal/model"
)

// Service is the orchestration layer between the CLI and the stores.
// It never terminates the process: every failure comes back as an error
// or an affected-row count for the caller to render.
type Service struct {
	users    UserStore
	movies   MovieStore
	metadata MetadataClient
	logger   Logger
}

// NewService creates a Service with the provided dependencies.
func NewService(users UserStore, store MovieStore, metadata MetadataClient, logger Logger) *Service {
	return &Service{
		users:    users,
		movies:   store,
		metadata: metadata,
		logger:   logger,
	}
}

// CreateUser creates a new user with the given name.
func (s *Service) CreateUser(username string) (*model.User, error) {
	u, err := s.users.CreateUser(username)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user", u.Username, "id", u.ID)
	return u, nil
}

// ListUsers returns all users ordered by id.
func (s *Service) ListUsers() ([]model.User, error) {
	return s.users.ListUsers()
}

// GetUserByID returns the user with the given id, or nil when there is none.
func (s *Service) GetUserByID(id int64) (*model.User, error) {
	return s.users.GetUserByID(id)
}

// GetUserByName returns the user with the given name, or nil when there is none.
func (s *Service) GetUserByName(username string) (*model.User, error) {
	return s.users.GetUserByName(username)
}

// ListMovies returns the user's collection ordered by insertion.
func (s *Service) ListMovies(userID int64) ([]model.Movie, error) {
	return s.movies.ListMovies(userID)
}

// AddMovie looks the title up in the external movie database and, when
// the lookup succeeds, persists the returned metadata for the user.
// A failed lookup — not found or unreachable — leaves no partial state.
func (s *Service) AddMovie(ctx context.Context, title string, userID int64) (*model.Movie, error) {
	info, err := s.metadata.Lookup(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", title, err)
	}

	m, err := s.movies.AddMovie(info.Title, info.Year, info.Rating, info.Poster, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("movie added", "title", m.Title, "year", m.Year, "rating", m.Rating, "user_id", userID)
	return m, nil
}

// DeleteMovie removes the movie matching the exact title for the user
// and returns the affected-row count. Zero means the title was not in
// the collection.
func (s *Service) DeleteMovie(title string, userID int64) (int64, error) {
	n, err := s.movies.DeleteMovie(title, userID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("movie deleted", "title", title, "user_id", userID)
	}
	return n, nil
}

// UpdateRating sets a new rating on the movie matching the exact title
// for the user and returns the affected-row count.
func (s *Service) UpdateRating(title string, rating float64, userID int64) (int64, error) {
	n, err := s.movies.UpdateMovie(title, rating, userID)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("rating updated", "title", title, "rating", rating, "user_id", userID)
	}
	return n, nil
}
