package movies

import (
	"errors"
	"sort"

	"github.com/Oleguzik/myMovies/internal/model"
)

// ErrEmptyCollection is returned when statistics are requested over an
// empty collection. The caller renders it as "no data".
var ErrEmptyCollection = errors.New("movies: empty collection")

// Filters bounds a collection. A nil field imposes no constraint.
type Filters struct {
	MinRating *float64
	StartYear *int
	EndYear   *int
}

// Filter returns the movies satisfying all supplied bounds, preserving
// input order. An empty result is a valid outcome, not an error.
func Filter(in []model.Movie, f Filters) []model.Movie {
	out := make([]model.Movie, 0, len(in))
	for _, m := range in {
		if f.MinRating != nil && m.Rating < *f.MinRating {
			continue
		}
		if f.StartYear != nil && m.Year < *f.StartYear {
			continue
		}
		if f.EndYear != nil && m.Year > *f.EndYear {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SortByYear returns a copy of the collection ordered by year. The sort
// is stable: movies from the same year keep their relative input order.
func SortByYear(in []model.Movie, descending bool) []model.Movie {
	out := make([]model.Movie, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Year > out[j].Year
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// Statistics summarizes the ratings of a collection.
type Statistics struct {
	Average float64
	Median  float64
	Best    model.Movie
	Worst   model.Movie
}

// Stats computes the mean and median rating and identifies the best and
// worst movies. Ties on best/worst are broken by first occurrence in
// input order. An empty collection yields ErrEmptyCollection.
func Stats(in []model.Movie) (*Statistics, error) {
	if len(in) == 0 {
		return nil, ErrEmptyCollection
	}

	ratings := make([]float64, len(in))
	var sum float64
	best, worst := 0, 0
	for i, m := range in {
		ratings[i] = m.Rating
		sum += m.Rating
		if m.Rating > in[best].Rating {
			best = i
		}
		if m.Rating < in[worst].Rating {
			worst = i
		}
	}

	sort.Float64s(ratings)
	mid := len(ratings) / 2
	median := ratings[mid]
	if len(ratings)%2 == 0 {
		median = (ratings[mid-1] + ratings[mid]) / 2
	}

	return &Statistics{
		Average: sum / float64(len(in)),
		Median:  median,
		Best:    in[best],
		Worst:   in[worst],
	}, nil
}
