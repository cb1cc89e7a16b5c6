// Package website renders a user's collection as a static HTML page.
// The core supplies the data; everything about presentation lives in
// the embedded template.
package website

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/Oleguzik/myMovies/internal/model"
)

//go:embed template.html
var pageSource string

var page = template.Must(template.New("index").Parse(pageSource))

type pageData struct {
	Title  string
	Movies []movieEntry
}

type movieEntry struct {
	Title  string
	Year   int
	Poster string
}

// Generate renders the page for the given collection to w.
func Generate(w io.Writer, pageTitle string, collection []model.Movie) error {
	data := pageData{Title: pageTitle, Movies: make([]movieEntry, 0, len(collection))}
	for _, m := range collection {
		e := movieEntry{Title: m.Title, Year: m.Year}
		if m.ImageURL != nil {
			e.Poster = *m.ImageURL
		}
		data.Movies = append(data.Movies, e)
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// WriteFile renders the page to path. The page is written to a
// temporary file in the destination directory first and renamed into
// place, so a render failure never leaves a truncated page behind.
func WriteFile(path, pageTitle string, collection []model.Movie) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".movies-*.html")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if err := Generate(f, pageTitle, collection); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving page into place: %w", err)
	}
	return nil
}
