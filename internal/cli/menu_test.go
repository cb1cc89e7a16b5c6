package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Oleguzik/myMovies/internal/database"
	"github.com/Oleguzik/myMovies/internal/movies"
)

// fakeLookup serves a canned metadata result for every title.
type fakeLookup struct {
	info *movies.MovieInfo
	err  error
}

func (f *fakeLookup) Lookup(_ context.Context, _ string) (*movies.MovieInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

// runSession feeds script to a menu backed by an in-memory store and
// returns everything the menu printed.
func runSession(t *testing.T, meta movies.MetadataClient, script string) string {
	t.Helper()

	store, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := movies.NewService(store, store, meta, movies.NewNopLogger())

	var out bytes.Buffer
	sitePath := filepath.Join(t.TempDir(), "index.html")
	m := NewMenu(strings.NewReader(script), &out, svc, "My Movies App", sitePath)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestMenu_Run(t *testing.T) {
	heat := &fakeLookup{info: &movies.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3, Poster: "N/A"}}

	t.Run("create user, add, list, stats, exit", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"heat",
			"1",
			"7",
			"0",
		}, "\n"))

		for _, want := range []string{
			"Who is watching?",
			"User 'alice' created successfully.",
			"Movie 'Heat' added successfully!",
			"1 movies in total",
			"Heat (1995): 8.3",
			"Average rating: 8.3",
			"Median rating: 8.3",
			"Best movie: Heat, 8.3",
			"Goodbye!",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("session output missing %q\n%s", want, out)
			}
		}
	})

	t.Run("declined similarity prompt keeps the collection", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"Heat",
			"2",
			"heat",
			"n",
			"1",
			"0",
		}, "\n"))

		if !strings.Contains(out, "A similar movie already exists: 'Heat'") {
			t.Errorf("missing similarity warning:\n%s", out)
		}
		if !strings.Contains(out, "Movie not added.") {
			t.Errorf("missing decline confirmation:\n%s", out)
		}
		if !strings.Contains(out, "1 movies in total") {
			t.Errorf("collection changed after declined add:\n%s", out)
		}
	})

	t.Run("confirmed similarity prompt adds anyway", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"Heat",
			"2",
			"heat",
			"y",
			"1",
			"0",
		}, "\n"))

		if !strings.Contains(out, "2 movies in total") {
			t.Errorf("confirmed add did not land:\n%s", out)
		}
	})

	t.Run("lookup miss is reported, not fatal", func(t *testing.T) {
		miss := &fakeLookup{err: movies.ErrTitleNotFound}
		out := runSession(t, miss, strings.Join([]string{
			"n",
			"alice",
			"2",
			"no such film",
			"0",
		}, "\n"))

		if !strings.Contains(out, "Movie 'no such film' not found in the movie database.") {
			t.Errorf("missing not-found message:\n%s", out)
		}
		if !strings.Contains(out, "Goodbye!") {
			t.Errorf("session did not continue after the miss:\n%s", out)
		}
	})

	t.Run("delete and update round-trip", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"heat",
			"4",
			"Heat",
			"9.5",
			"3",
			"Heat",
			"1",
			"0",
		}, "\n"))

		if !strings.Contains(out, "Movie Heat updated.") {
			t.Errorf("missing update confirmation:\n%s", out)
		}
		if !strings.Contains(out, "Movie Heat deleted.") {
			t.Errorf("missing delete confirmation:\n%s", out)
		}
		if !strings.Contains(out, "0 movies in total") {
			t.Errorf("movie survived the delete:\n%s", out)
		}
	})

	t.Run("missing movie on delete and update", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"3",
			"Ronin",
			"4",
			"Ronin",
			"7",
			"0",
		}, "\n"))

		if n := strings.Count(out, "Movie Ronin not found!"); n != 2 {
			t.Errorf("got %d not-found messages, want 2:\n%s", n, out)
		}
	})

	t.Run("filter narrows the collection", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"heat",
			"6",
			"9.0",
			"",
			"",
			"6",
			"8.0",
			"1990",
			"2000",
			"0",
		}, "\n"))

		if !strings.Contains(out, "No movies match the given criteria.") {
			t.Errorf("missing empty-filter message:\n%s", out)
		}
		if !strings.Contains(out, "Filtered Movies:") {
			t.Errorf("missing filter hit output:\n%s", out)
		}
	})

	t.Run("empty collection shortcuts", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"5",
			"6",
			"7",
			"0",
		}, "\n"))

		if n := strings.Count(out, "No movies found."); n != 3 {
			t.Errorf("got %d empty-collection messages, want 3:\n%s", n, out)
		}
	})

	t.Run("generate website writes the page", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"heat",
			"8",
			"0",
		}, "\n"))

		if !strings.Contains(out, "Website was generated successfully.") {
			t.Errorf("missing website confirmation:\n%s", out)
		}
	})

	t.Run("duplicate username is rejected at the prompt", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"9",
			"n",
			"alice",
			"1",
			"0",
		}, "\n"))

		if !strings.Contains(out, "User 'alice' already exists.") {
			t.Errorf("missing duplicate-user message:\n%s", out)
		}
	})

	t.Run("switch user swaps the collection", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"2",
			"heat",
			"9",
			"n",
			"bob",
			"1",
			"0",
		}, "\n"))

		if !strings.Contains(out, "Movie Database Menu (bob):") {
			t.Errorf("menu did not switch to bob:\n%s", out)
		}
		if !strings.Contains(out, "0 movies in total") {
			t.Errorf("bob sees alice's movies:\n%s", out)
		}
	})

	t.Run("invalid menu choice re-prompts", func(t *testing.T) {
		out := runSession(t, heat, strings.Join([]string{
			"n",
			"alice",
			"42",
			"0",
		}, "\n"))

		if !strings.Contains(out, "Invalid choice. Please try again.") {
			t.Errorf("missing invalid-choice message:\n%s", out)
		}
	})

	t.Run("end of input exits cleanly", func(t *testing.T) {
		out := runSession(t, heat, "n\nalice\n")
		if !strings.Contains(out, "User 'alice' created successfully.") {
			t.Errorf("user not created before EOF:\n%s", out)
		}
	})
}
