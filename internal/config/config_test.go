package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at a temp dir and runs from it so no real config
// file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Search.Term != "Yoasobi" {
		t.Errorf("expected default term Yoasobi, got %q", cfg.Search.Term)
	}
	if cfg.Search.PageSize != 36 {
		t.Errorf("expected page size 36, got %d", cfg.Search.PageSize)
	}
	if cfg.Search.Lookahead != 10 {
		t.Errorf("expected lookahead 10, got %d", cfg.Search.Lookahead)
	}
	if cfg.API.BaseURL != "https://itunes.apple.com/search" {
		t.Errorf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.API.Timeout)
	}
	if cfg.Favorites.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", cfg.Favorites.Backend)
	}
	wantPath := filepath.Join(home, ".local", "share", "storefront")
	if cfg.Favorites.Path != wantPath {
		t.Errorf("expected favorites path %q, got %q", wantPath, cfg.Favorites.Path)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("STOREFRONT_SEARCH_TERM", "Ado")
	t.Setenv("STOREFRONT_SEARCH_PAGE_SIZE", "50")
	t.Setenv("STOREFRONT_FAVORITES_BACKEND", "bolt")
	t.Setenv("STOREFRONT_API_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Search.Term != "Ado" {
		t.Errorf("expected term from env, got %q", cfg.Search.Term)
	}
	if cfg.Search.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.Search.PageSize)
	}
	if cfg.Favorites.Backend != "bolt" {
		t.Errorf("expected bolt backend, got %q", cfg.Favorites.Backend)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %v", cfg.API.Timeout)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Search.Term = "Aimer"
	cfg.Search.PageSize = 20
	cfg.API.Timeout = 4 * time.Second
	cfg.Favorites.Backend = "file"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(ConfigFile()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if loaded.Search.Term != "Aimer" || loaded.Search.PageSize != 20 {
		t.Errorf("search settings not persisted: %+v", loaded.Search)
	}
	if loaded.API.Timeout != 4*time.Second {
		t.Errorf("timeout not persisted: %v", loaded.API.Timeout)
	}
	if loaded.Favorites.Backend != "file" {
		t.Errorf("backend not persisted: %q", loaded.Favorites.Backend)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(ConfigFile(), []byte("search: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Search:    SearchConfig{Term: "Yoasobi", PageSize: 36, Lookahead: 10},
			API:       APIConfig{BaseURL: "https://itunes.apple.com/search", Timeout: time.Second},
			Favorites: FavoritesConfig{Backend: "sqlite"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "max page size", mutate: func(c *Config) { c.Search.PageSize = 200 }},
		{name: "zero page size", mutate: func(c *Config) { c.Search.PageSize = 0 }, wantErr: true},
		{name: "page size over limit", mutate: func(c *Config) { c.Search.PageSize = 201 }, wantErr: true},
		{name: "blank term", mutate: func(c *Config) { c.Search.Term = "  " }, wantErr: true},
		{name: "negative lookahead", mutate: func(c *Config) { c.Search.Lookahead = -1 }, wantErr: true},
		{name: "zero lookahead", mutate: func(c *Config) { c.Search.Lookahead = 0 }, wantErr: true},
		{name: "last row lookahead", mutate: func(c *Config) { c.Search.Lookahead = 1 }},
		{name: "zero timeout", mutate: func(c *Config) { c.API.Timeout = 0 }, wantErr: true},
		{name: "bolt backend", mutate: func(c *Config) { c.Favorites.Backend = "bolt" }},
		{name: "uppercase backend", mutate: func(c *Config) { c.Favorites.Backend = "FILE" }},
		{name: "unknown backend", mutate: func(c *Config) { c.Favorites.Backend = "redis" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("expected ErrInvalid, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
