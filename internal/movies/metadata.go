package movies

import (
	"context"
	"errors"
)

// ErrTitleNotFound is returned by a MetadataClient when the upstream
// movie database has no entry for the requested title. It is distinct
// from connectivity failures, which are returned as wrapped transport
// errors.
var ErrTitleNotFound = errors.New("movies: title not found")

// MovieInfo is the metadata returned by an external lookup.
// Poster may be the literal "N/A" when the source has no image; the
// store normalizes that on insert.
type MovieInfo struct {
	Title  string
	Year   int
	Rating float64
	Poster string
}

// MetadataClient looks up movie metadata from an external service.
type MetadataClient interface {
	Lookup(ctx context.Context, title string) (*MovieInfo, error)
}
