package app

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Oleguzik/myMovies/internal/config"
	"github.com/Oleguzik/myMovies/internal/database"
	"github.com/Oleguzik/myMovies/internal/movies"
	"github.com/Oleguzik/myMovies/internal/omdb"
)

// App is the application layer between the CLI and the movie service.
// It constructs all dependencies from config and manages the store and
// log file lifecycle on Close. Each App carries a session id that tags
// every log record written during the run.
type App struct {
	cfg       *config.Config
	store     *database.Store
	service   *movies.Service
	sessionID string
	logFile   *os.File
}

// New creates a fully wired App from the given config. Opening the
// store runs the schema migrations; a failure there aborts startup.
// The caller must call Close when done.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	store, err := database.NewStoreFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening movie database: %w", err)
	}

	sessionID := uuid.New().String()
	logger, logFile, err := newLogger(cfg.LogDir, sessionID)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	lookup := omdb.NewClient(cfg.OMDb.BaseURL, cfg.OMDb.APIKey, time.Duration(cfg.OMDb.TimeoutSeconds)*time.Second)
	svc := movies.NewService(store, store, lookup, &slogAdapter{l: logger})

	logger.Info("session started", "database", store.Path())

	return &App{
		cfg:       cfg,
		store:     store,
		service:   svc,
		sessionID: sessionID,
		logFile:   logFile,
	}, nil
}

// Service returns the wired movie service.
func (a *App) Service() *movies.Service {
	return a.service
}

// Config returns the configuration the App was built from.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}

	return firstErr
}
