package movies

import (
	"errors"
	"testing"

	"github.com/Oleguzik/myMovies/internal/model"
)

func fixture() []model.Movie {
	return []model.Movie{
		{Title: "A", Year: 2005, Rating: 8.5},
		{Title: "B", Year: 1999, Rating: 9.0},
		{Title: "C", Year: 2008, Rating: 7.0},
		{Title: "D", Year: 2009, Rating: 8.2},
	}
}

func titles(in []model.Movie) []string {
	out := make([]string, len(in))
	for i, m := range in {
		out[i] = m.Title
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestFilter(t *testing.T) {
	t.Run("all bounds combined", func(t *testing.T) {
		got := Filter(fixture(), Filters{
			MinRating: ptr(8.0),
			StartYear: ptr(2000),
			EndYear:   ptr(2010),
		})

		want := []string{"A", "D"}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", titles(got), want)
		}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("got[%d] = %q, want %q", i, got[i].Title, title)
			}
		}
	})

	t.Run("nil bounds impose no constraint", func(t *testing.T) {
		got := Filter(fixture(), Filters{})
		if len(got) != 4 {
			t.Errorf("got %d movies, want all 4", len(got))
		}
	})

	t.Run("min rating only", func(t *testing.T) {
		got := Filter(fixture(), Filters{MinRating: ptr(8.5)})
		want := []string{"A", "B"}
		if len(got) != 2 || got[0].Title != want[0] || got[1].Title != want[1] {
			t.Errorf("got %v, want %v", titles(got), want)
		}
	})

	t.Run("empty result is valid", func(t *testing.T) {
		got := Filter(fixture(), Filters{MinRating: ptr(9.5)})
		if len(got) != 0 {
			t.Errorf("got %v, want empty", titles(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got := Filter(nil, Filters{MinRating: ptr(1.0)})
		if len(got) != 0 {
			t.Errorf("got %d movies, want 0", len(got))
		}
	})
}

func TestSortByYear(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		got := SortByYear(fixture(), false)
		want := []string{"B", "A", "C", "D"}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("got[%d] = %q, want %q", i, got[i].Title, title)
			}
		}
	})

	t.Run("descending equals reversed ascending", func(t *testing.T) {
		asc := SortByYear(fixture(), false)
		desc := SortByYear(fixture(), true)
		for i := range asc {
			if asc[i].Title != desc[len(desc)-1-i].Title {
				t.Errorf("asc[%d] = %q but desc[%d] = %q", i, asc[i].Title, len(desc)-1-i, desc[len(desc)-1-i].Title)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := SortByYear(fixture(), true)
		twice := SortByYear(once, true)
		for i := range once {
			if once[i].Title != twice[i].Title {
				t.Errorf("sorting twice changed order at %d: %q vs %q", i, once[i].Title, twice[i].Title)
			}
		}
	})

	t.Run("stable on ties", func(t *testing.T) {
		in := []model.Movie{
			{Title: "X", Year: 2001},
			{Title: "Y", Year: 2001},
			{Title: "Z", Year: 2000},
		}
		got := SortByYear(in, false)
		want := []string{"Z", "X", "Y"}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("got[%d] = %q, want %q", i, got[i].Title, title)
			}
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := fixture()
		SortByYear(in, false)
		if in[0].Title != "A" {
			t.Errorf("input reordered: first = %q", in[0].Title)
		}
	})
}

func TestStats(t *testing.T) {
	t.Run("mean and median over even count", func(t *testing.T) {
		in := []model.Movie{
			{Title: "A", Rating: 7.0},
			{Title: "B", Rating: 8.0},
			{Title: "C", Rating: 9.0},
			{Title: "D", Rating: 6.0},
		}

		got, err := Stats(in)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if got.Average != 7.5 {
			t.Errorf("Average = %v, want 7.5", got.Average)
		}
		if got.Median != 7.5 {
			t.Errorf("Median = %v, want 7.5", got.Median)
		}
		if got.Best.Title != "C" {
			t.Errorf("Best = %q, want C", got.Best.Title)
		}
		if got.Worst.Title != "D" {
			t.Errorf("Worst = %q, want D", got.Worst.Title)
		}
	})

	t.Run("median over odd count", func(t *testing.T) {
		in := []model.Movie{
			{Title: "A", Rating: 9.0},
			{Title: "B", Rating: 5.0},
			{Title: "C", Rating: 7.0},
		}

		got, err := Stats(in)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if got.Median != 7.0 {
			t.Errorf("Median = %v, want 7.0", got.Median)
		}
	})

	t.Run("ties break by first occurrence", func(t *testing.T) {
		in := []model.Movie{
			{Title: "First", Rating: 8.0},
			{Title: "AlsoBest", Rating: 8.0},
			{Title: "FirstWorst", Rating: 3.0},
			{Title: "AlsoWorst", Rating: 3.0},
		}

		got, err := Stats(in)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if got.Best.Title != "First" {
			t.Errorf("Best = %q, want first occurrence", got.Best.Title)
		}
		if got.Worst.Title != "FirstWorst" {
			t.Errorf("Worst = %q, want first occurrence", got.Worst.Title)
		}
	})

	t.Run("single movie", func(t *testing.T) {
		in := []model.Movie{{Title: "Solo", Rating: 6.5}}

		got, err := Stats(in)
		if err != nil {
			t.Fatalf("Stats() error = %v", err)
		}
		if got.Average != 6.5 || got.Median != 6.5 {
			t.Errorf("Average/Median = %v/%v, want 6.5/6.5", got.Average, got.Median)
		}
		if got.Best.Title != "Solo" || got.Worst.Title != "Solo" {
			t.Error("Best and Worst should both be the only movie")
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := Stats(nil)
		if !errors.Is(err, ErrEmptyCollection) {
			t.Errorf("Stats(nil) error = %v, want ErrEmptyCollection", err)
		}
	})
}
