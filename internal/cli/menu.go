// Package cli implements the interactive menu. It is a pure caller of
// the movie service: input validation happens at the prompt, and every
// store or lookup failure is rendered as a message, never a crash.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Oleguzik/myMovies/internal/match"
	"github.com/Oleguzik/myMovies/internal/model"
	"github.com/Oleguzik/myMovies/internal/movies"
	"github.com/Oleguzik/myMovies/internal/website"
)

// similarityThreshold is the score above which an add prompts for
// confirmation against the closest existing title.
const similarityThreshold = 80

// Menu drives an interactive session over a movie service.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	service   *movies.Service
	siteTitle string
	sitePath  string

	user *model.User
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, service *movies.Service, siteTitle, sitePath string) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		service:   service,
		siteTitle: siteTitle,
		sitePath:  sitePath,
	}
}

// Run starts the session: user selection first, then the menu loop.
// It returns nil when the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	if ok, err := m.selectUser(); err != nil || !ok {
		return err
	}

	for {
		fmt.Fprintf(m.out, "\nMovie Database Menu (%s):\n", m.user.Username)
		fmt.Fprintln(m.out, "1. List movies")
		fmt.Fprintln(m.out, "2. Add movie")
		fmt.Fprintln(m.out, "3. Delete movie")
		fmt.Fprintln(m.out, "4. Update movie rating")
		fmt.Fprintln(m.out, "5. List movies by year")
		fmt.Fprintln(m.out, "6. Filter movies")
		fmt.Fprintln(m.out, "7. Show statistics")
		fmt.Fprintln(m.out, "8. Generate website")
		fmt.Fprintln(m.out, "9. Switch user")
		fmt.Fprintln(m.out, "0. Exit")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = m.listMovies()
		case "2":
			err = m.addMovie(ctx)
		case "3":
			err = m.deleteMovie()
		case "4":
			err = m.updateMovie()
		case "5":
			err = m.listByYear()
		case "6":
			err = m.filterMovies()
		case "7":
			err = m.showStats()
		case "8":
			err = m.generateWebsite()
		case "9":
			var picked bool
			picked, err = m.selectUser()
			if err == nil && !picked {
				return nil
			}
		case "0":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// prompt writes the label and reads one trimmed line. The second
// return value is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// selectUser lets the user pick an existing profile by number or
// create a new one. Returns false when input ended before a pick.
func (m *Menu) selectUser() (bool, error) {
	for {
		users, err := m.service.ListUsers()
		if err != nil {
			return false, err
		}

		fmt.Fprintln(m.out, "\nWho is watching?")
		for i, u := range users {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, u.Username)
		}
		fmt.Fprintln(m.out, "n. New user")

		choice, ok := m.prompt("Select a user: ")
		if !ok {
			return false, nil
		}

		if strings.EqualFold(choice, "n") {
			if created := m.createUser(); created != nil {
				m.user = created
				return true, nil
			}
			continue
		}

		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(users) {
			fmt.Fprintln(m.out, "Invalid selection. Please try again.")
			continue
		}
		m.user = &users[idx-1]
		fmt.Fprintf(m.out, "Welcome back, %s!\n", m.user.Username)
		return true, nil
	}
}

// createUser prompts for a name and creates the user. Returns nil when
// the name was empty, taken, or input ended.
func (m *Menu) createUser() *model.User {
	name, ok := m.prompt("Enter new username: ")
	if !ok || name == "" {
		fmt.Fprintln(m.out, "Username cannot be empty.")
		return nil
	}

	// Check first for a clean message; the store still rejects
	// duplicates on its own.
	existing, err := m.service.GetUserByName(name)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return nil
	}
	if existing != nil {
		fmt.Fprintf(m.out, "User '%s' already exists.\n", name)
		return nil
	}

	u, err := m.service.CreateUser(name)
	if err != nil {
		if errors.Is(err, movies.ErrDuplicateUser) {
			fmt.Fprintf(m.out, "User '%s' already exists.\n", name)
		} else {
			fmt.Fprintf(m.out, "Error creating user: %v\n", err)
		}
		return nil
	}

	fmt.Fprintf(m.out, "User '%s' created successfully.\n", u.Username)
	return u
}

func (m *Menu) listMovies() error {
	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "%d movies in total\n", len(collection))
	for _, mv := range collection {
		fmt.Fprintf(m.out, "%s (%d): %.1f\n", mv.Title, mv.Year, mv.Rating)
	}
	return nil
}

func (m *Menu) addMovie(ctx context.Context) error {
	title, ok := m.prompt("Enter movie title: ")
	if !ok {
		return nil
	}
	if title == "" {
		fmt.Fprintln(m.out, "Movie title cannot be empty. Please try again.")
		return nil
	}

	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}

	if len(collection) > 0 {
		titles := make([]string, len(collection))
		for i, mv := range collection {
			titles[i] = mv.Title
		}
		if closest, score := match.Closest(title, titles); score > similarityThreshold {
			fmt.Fprintf(m.out, "A similar movie already exists: '%s' (similarity: %d%%)\n", closest, score)
			confirm, ok := m.prompt("Do you still want to add this movie? (y/n): ")
			if !ok || !strings.EqualFold(confirm, "y") {
				fmt.Fprintln(m.out, "Movie not added.")
				return nil
			}
		}
	}

	added, err := m.service.AddMovie(ctx, title, m.user.ID)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Movie '%s' added successfully!\n", added.Title)
	case errors.Is(err, movies.ErrTitleNotFound):
		fmt.Fprintf(m.out, "Movie '%s' not found in the movie database.\n", title)
	case errors.Is(err, movies.ErrUnknownUser):
		fmt.Fprintln(m.out, "Current user no longer exists.")
	default:
		fmt.Fprintln(m.out, "Failed to reach the movie database. Please check your internet connection.")
		fmt.Fprintf(m.out, "Error details: %v\n", err)
	}
	return nil
}

func (m *Menu) deleteMovie() error {
	title, ok := m.prompt("Enter movie name to delete: ")
	if !ok {
		return nil
	}
	if title == "" {
		fmt.Fprintln(m.out, "Movie title cannot be empty. Please try again.")
		return nil
	}

	n, err := m.service.DeleteMovie(title, m.user.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(m.out, "Movie %s not found!\n", title)
		return nil
	}
	fmt.Fprintf(m.out, "Movie %s deleted.\n", title)
	return nil
}

func (m *Menu) updateMovie() error {
	title, ok := m.prompt("Enter movie name to update: ")
	if !ok {
		return nil
	}
	if title == "" {
		fmt.Fprintln(m.out, "Movie title cannot be empty. Please try again.")
		return nil
	}

	raw, ok := m.prompt("Enter new rating: ")
	if !ok {
		return nil
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid rating. Please enter a valid number.")
		return nil
	}

	n, err := m.service.UpdateRating(title, rating, m.user.ID)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(m.out, "Movie %s not found!\n", title)
		return nil
	}
	fmt.Fprintf(m.out, "Movie %s updated.\n", title)
	return nil
}

func (m *Menu) listByYear() error {
	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		fmt.Fprintln(m.out, "No movies found.")
		return nil
	}

	order, ok := m.prompt("Show latest movies first? (y/n): ")
	if !ok {
		return nil
	}
	descending := strings.EqualFold(order, "y")

	for _, mv := range movies.SortByYear(collection, descending) {
		fmt.Fprintf(m.out, "%s: Year %d, Rating %.1f\n", mv.Title, mv.Year, mv.Rating)
	}
	return nil
}

func (m *Menu) filterMovies() error {
	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		fmt.Fprintln(m.out, "No movies found.")
		return nil
	}

	var f movies.Filters

	raw, ok := m.prompt("Enter minimum rating (leave blank for no minimum rating): ")
	if !ok {
		return nil
	}
	if raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid rating. Please enter a valid number.")
			return nil
		}
		f.MinRating = &v
	}

	raw, ok = m.prompt("Enter start year (leave blank for no start year): ")
	if !ok {
		return nil
	}
	if raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid year. Please enter a valid number.")
			return nil
		}
		f.StartYear = &v
	}

	raw, ok = m.prompt("Enter end year (leave blank for no end year): ")
	if !ok {
		return nil
	}
	if raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid year. Please enter a valid number.")
			return nil
		}
		f.EndYear = &v
	}

	matched := movies.Filter(collection, f)
	if len(matched) == 0 {
		fmt.Fprintln(m.out, "No movies match the given criteria.")
		return nil
	}

	fmt.Fprintln(m.out, "Filtered Movies:")
	for _, mv := range matched {
		fmt.Fprintf(m.out, "%s (%d): %.1f\n", mv.Title, mv.Year, mv.Rating)
	}
	return nil
}

func (m *Menu) showStats() error {
	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}

	stats, err := movies.Stats(collection)
	if err != nil {
		if errors.Is(err, movies.ErrEmptyCollection) {
			fmt.Fprintln(m.out, "No movies found.")
			return nil
		}
		return err
	}

	fmt.Fprintln(m.out, strings.Repeat("-", 20))
	fmt.Fprintf(m.out, "Average rating: %.1f\n", stats.Average)
	fmt.Fprintf(m.out, "Median rating: %.1f\n", stats.Median)
	fmt.Fprintf(m.out, "Best movie: %s, %.1f\n", stats.Best.Title, stats.Best.Rating)
	fmt.Fprintf(m.out, "Worst movie: %s, %.1f\n", stats.Worst.Title, stats.Worst.Rating)
	return nil
}

func (m *Menu) generateWebsite() error {
	collection, err := m.service.ListMovies(m.user.ID)
	if err != nil {
		return err
	}

	if err := website.WriteFile(m.sitePath, m.siteTitle, collection); err != nil {
		fmt.Fprintf(m.out, "Error generating website: %v\n", err)
		return nil
	}
	fmt.Fprintln(m.out, "Website was generated successfully.")
	return nil
}
