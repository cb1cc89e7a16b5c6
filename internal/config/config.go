package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config represents the main configuration for the movie tracker.
type Config struct {
	LogDir   string         `toml:"log_dir"`
	Database DatabaseConfig `toml:"database"`
	OMDb     OMDbConfig     `toml:"omdb"`
	Website  WebsiteConfig  `toml:"website"`
}

// DatabaseConfig represents configuration for the movie database.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// OMDbConfig holds the settings for the external movie metadata API.
// TimeoutSeconds of 0 means no client-side timeout: a lookup may block
// for as long as the network does, and connection errors (not
// timeouts) are the recoverable failure mode.
type OMDbConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// WebsiteConfig holds the settings for static site generation.
type WebsiteConfig struct {
	Title      string `toml:"title"`
	OutputPath string `toml:"output_path"`
}

// envOverrides are settings that may come from the environment (or a
// .env file) instead of the config file. The API key usually does.
type envOverrides struct {
	OMDbAPIKey string `env:"OMDB_API_KEY"`
}

// NewConfig creates a Config with defaults rooted at baseDir.
func NewConfig(baseDir string) *Config {
	return &Config{
		LogDir: filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		OMDb: OMDbConfig{
			BaseURL: "https://www.omdbapi.com/",
		},
		Website: WebsiteConfig{
			Title:      "My Movies App",
			OutputPath: filepath.Join(baseDir, "index.html"),
		},
	}
}

// ApplyEnv loads a .env file when one is present in the working
// directory and applies environment overrides on top of the file-based
// configuration.
func (c *Config) ApplyEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	if ov.OMDbAPIKey != "" {
		c.OMDb.APIKey = ov.OMDbAPIKey
	}
	return nil
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
