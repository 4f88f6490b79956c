package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jfmyers9/storefront/internal/config"
	"github.com/jfmyers9/storefront/internal/favorites"
	"github.com/jfmyers9/storefront/internal/ranking"
	"github.com/jfmyers9/storefront/pkg/itunes"
	"github.com/rs/zerolog"
)

// requestTimeout bounds a whole command's network work.
const requestTimeout = 30 * time.Second

// app holds the components a command works with. The favorites store is
// created once here and shared by every view.
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	client     *itunes.Client
	aggregator *ranking.Aggregator
	likes      *favorites.Store
}

// appOptions tweak how newApp builds the components.
type appOptions struct {
	// quiet discards logs unless a log file is set; the TUI owns the terminal
	quiet bool
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := setupLogger(cfg.Log.File, cfg.Log.Level)
	if opts.quiet && cfg.Log.File == "" {
		logger = zerolog.Nop()
	}

	client, err := itunes.NewClient(itunes.Config{
		BaseURL:    cfg.API.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.API.Timeout},
		Logger:     itunesLogger{logger: logger.With().Str("component", "itunes").Logger()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create iTunes client: %w", err)
	}

	slot, err := favorites.Open(cfg.Favorites.Backend, cfg.Favorites.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open favorites: %w", err)
	}

	logger.Debug().
		Str("term", cfg.Search.Term).
		Str("backend", cfg.Favorites.Backend).
		Str("path", cfg.Favorites.Path).
		Msg("Starting storefront")

	return &app{
		cfg:    cfg,
		logger: logger,
		client: client,
		aggregator: ranking.New(client.Search(), ranking.Config{
			Term:       cfg.Search.Term,
			PageSize:   cfg.Search.PageSize,
			DisplayCap: cfg.Search.PageSize,
		}, logger),
		likes: favorites.New(slot, logger),
	}, nil
}

// fetchOverview loads the first page of both kinds.
func (a *app) fetchOverview(ctx context.Context) error {
	if err := a.aggregator.FetchInitial(ctx); err != nil {
		return fmt.Errorf("failed to fetch overview for %q: %w", a.cfg.Search.Term, err)
	}
	return nil
}

func (a *app) Close() error {
	return a.likes.Close()
}
