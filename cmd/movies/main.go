package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Oleguzik/myMovies/internal/app"
	"github.com/Oleguzik/myMovies/internal/cli"
	"github.com/Oleguzik/myMovies/internal/config"
	"github.com/Oleguzik/myMovies/internal/model"
	"github.com/Oleguzik/myMovies/internal/movies"
	"github.com/Oleguzik/myMovies/internal/website"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
func newApp() (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// resolveUser maps a username to a user record, erroring on a miss so
// non-interactive commands fail with a clear message.
func resolveUser(svc *movies.Service, name string) (*model.User, error) {
	if name == "" {
		return nil, fmt.Errorf("--user is required")
	}
	u, err := svc.GetUserByName(name)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q not found", name)
	}
	return u, nil
}

var rootCmd = &cobra.Command{
	Use:   "movies",
	Short: "Personal movie collection tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		site := a.Config().Website
		menu := cli.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), a.Service(), site.Title, site.OutputPath)
		return menu.Run(cmd.Context())
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Data Dir: %s\n", cfg.Database.DataDir)
		fmt.Println("Set your OMDb API key in the config file or via OMDB_API_KEY.")
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		fmt.Printf("Database:     %s (%s)\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("OMDb URL:     %s\n", cfg.OMDb.BaseURL)
		fmt.Printf("Website:      %s -> %s\n", cfg.Website.Title, cfg.Website.OutputPath)
		return nil
	},
}

// users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		users, err := a.Service().ListUsers()
		if err != nil {
			return err
		}

		if len(users) == 0 {
			fmt.Println("No users yet.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("%d  %s\n", u.ID, u.Username)
		}
		return nil
	},
}

// export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the website for a user's collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		output, _ := cmd.Flags().GetString("output")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := resolveUser(a.Service(), username)
		if err != nil {
			return err
		}

		collection, err := a.Service().ListMovies(u.ID)
		if err != nil {
			return err
		}

		site := a.Config().Website
		if output == "" {
			output = site.OutputPath
		}
		if err := website.WriteFile(output, site.Title, collection); err != nil {
			return err
		}

		fmt.Printf("Wrote %d movie(s) to %s\n", len(collection), output)
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := resolveUser(a.Service(), username)
		if err != nil {
			return err
		}

		collection, err := a.Service().ListMovies(u.ID)
		if err != nil {
			return err
		}

		stats, err := movies.Stats(collection)
		if err != nil {
			if errors.Is(err, movies.ErrEmptyCollection) {
				fmt.Println("No movies found.")
				return nil
			}
			return err
		}

		fmt.Printf("Average rating: %.1f\n", stats.Average)
		fmt.Printf("Median rating:  %.1f\n", stats.Median)
		fmt.Printf("Best movie:     %s, %.1f\n", stats.Best.Title, stats.Best.Rating)
		fmt.Printf("Worst movie:    %s, %.1f\n", stats.Worst.Title, stats.Worst.Rating)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(usersCmd)

	exportCmd.Flags().StringP("user", "u", "", "Username owning the collection")
	exportCmd.Flags().StringP("output", "o", "", "Output path (defaults to the configured one)")
	rootCmd.AddCommand(exportCmd)

	statsCmd.Flags().StringP("user", "u", "", "Username owning the collection")
	rootCmd.AddCommand(statsCmd)
}
