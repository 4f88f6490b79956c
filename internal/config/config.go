package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jfmyers9/storefront/internal/favorites"
	"github.com/jfmyers9/storefront/internal/pager"
	"github.com/jfmyers9/storefront/internal/ranking"
	"github.com/jfmyers9/storefront/pkg/itunes"
	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration
type Config struct {
	Search    SearchConfig
	API       APIConfig
	Favorites FavoritesConfig
	Log       LogConfig
}

// SearchConfig controls what the overview and detail lists query
type SearchConfig struct {
	// Artist or keyword searched on startup
	// Default: "Yoasobi"
	Term string

	// Items requested per page; also caps the overview sections
	PageSize int

	// How close to the end of a detail list the cursor must be before
	// the next page is requested
	Lookahead int
}

// APIConfig holds iTunes Search API settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// FavoritesConfig selects where liked tracks are persisted
type FavoritesConfig struct {
	Backend string // sqlite, bolt or file
	Path    string // Directory holding the backend's file
}

// LogConfig holds logging defaults; command-line flags take precedence
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	v.AddConfigPath(getConfigDir())
	v.AddConfigPath(".")

	setDefaults(v)

	// Config file is optional, but a malformed one is reported
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Read from environment variables (STOREFRONT_SEARCH_TERM etc.)
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Search: SearchConfig{
			Term:      v.GetString("search.term"),
			PageSize:  v.GetInt("search.page_size"),
			Lookahead: v.GetInt("search.lookahead"),
		},
		API: APIConfig{
			BaseURL: v.GetString("api.base_url"),
			Timeout: v.GetDuration("api.timeout"),
		},
		Favorites: FavoritesConfig{
			Backend: v.GetString("favorites.backend"),
			Path:    v.GetString("favorites.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.term", ranking.DefaultTerm)
	v.SetDefault("search.page_size", pager.DefaultPageSize)
	v.SetDefault("search.lookahead", pager.DefaultLookahead)
	v.SetDefault("api.base_url", itunes.DefaultBaseURL)
	v.SetDefault("api.timeout", itunes.DefaultTimeout)
	v.SetDefault("favorites.backend", favorites.BackendSQLite)
	v.SetDefault("favorites.path", getDataDir())
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Search.Term) == "" {
		return fmt.Errorf("%w: search.term must not be empty", ErrInvalid)
	}
	if c.Search.PageSize < 1 || c.Search.PageSize > itunes.MaxLimit {
		return fmt.Errorf("%w: search.page_size must be between 1 and %d, got %d",
			ErrInvalid, itunes.MaxLimit, c.Search.PageSize)
	}
	if c.Search.Lookahead < 1 {
		return fmt.Errorf("%w: search.lookahead must be at least 1, got %d", ErrInvalid, c.Search.Lookahead)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Favorites.Backend) {
	case favorites.BackendSQLite, favorites.BackendBolt, favorites.BackendFile:
	default:
		return fmt.Errorf("%w: favorites.backend %q (want sqlite, bolt or file)",
			ErrInvalid, c.Favorites.Backend)
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "storefront")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// getDataDir returns the default directory for persisted favorites
func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "storefront")
}

// ConfigFile returns the path Save writes to
func ConfigFile() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	v.Set("search.term", c.Search.Term)
	v.Set("search.page_size", c.Search.PageSize)
	v.Set("search.lookahead", c.Search.Lookahead)
	v.Set("api.base_url", c.API.BaseURL)
	v.Set("api.timeout", c.API.Timeout.String())
	v.Set("favorites.backend", c.Favorites.Backend)
	v.Set("favorites.path", c.Favorites.Path)
	v.Set("log.level", c.Log.Level)
	v.Set("log.file", c.Log.File)

	return v.WriteConfigAs(ConfigFile())
}
