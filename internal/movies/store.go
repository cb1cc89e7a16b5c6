package movies

import (
	"errors"

	"github.com/Oleguzik/myMovies/internal/model"
)

// ErrDuplicateUser is returned when a username is already taken.
var ErrDuplicateUser = errors.New("movies: username already exists")

// ErrUnknownUser is returned when a write references a user id that
// does not exist.
var ErrUnknownUser = errors.New("movies: unknown user")

// UserStore provides persistence for users.
type UserStore interface {
	// CreateUser inserts a new user. A taken username yields
	// ErrDuplicateUser and leaves the existing row untouched.
	CreateUser(username string) (*model.User, error)

	// ListUsers returns all users ordered by id, so menu numbering is
	// stable within a session.
	ListUsers() ([]model.User, error)

	// GetUserByID returns the matching user, or nil when there is none.
	GetUserByID(id int64) (*model.User, error)

	// GetUserByName returns the matching user, or nil when there is none.
	GetUserByName(username string) (*model.User, error)
}

// MovieStore provides persistence for movie records. Every operation is
// scoped by the owning user's id.
//
// Mutating operations report the affected-row count rather than failing
// on a miss: an unknown title during delete/update is an expected,
// recoverable condition, not a fault.
type MovieStore interface {
	// ListMovies returns the user's collection ordered by insertion.
	// An unknown user or an empty collection yields an empty slice.
	ListMovies(userID int64) ([]model.Movie, error)

	// AddMovie inserts one movie. An imageURL equal to "N/A" is stored
	// as NULL. Inserting for a nonexistent user yields ErrUnknownUser.
	AddMovie(title string, year int, rating float64, imageURL string, userID int64) (*model.Movie, error)

	// DeleteMovie removes the row matching the exact title and user id
	// and returns the number of rows removed (0 or 1).
	DeleteMovie(title string, userID int64) (int64, error)

	// UpdateMovie sets a new rating on the row matching the exact title
	// and user id and returns the number of rows changed (0 or 1).
	UpdateMovie(title string, rating float64, userID int64) (int64, error)
}
