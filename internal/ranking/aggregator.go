// Package ranking builds the landing overview: the first page of tracks and
// albums for one search term, fetched together and shown together.
package ranking

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"

	"github.com/jfmyers9/storefront/internal/notify"
	"github.com/jfmyers9/storefront/internal/pager"
	"github.com/jfmyers9/storefront/pkg/itunes"
)

// DefaultTerm is the artist the overview searches for when none is
// configured.
const DefaultTerm = "Yoasobi"

// Searcher issues paged catalog searches. *itunes.SearchService satisfies it.
type Searcher interface {
	Tracks(ctx context.Context, term string, limit, offset int) (*itunes.Page[itunes.Track], error)
	Collections(ctx context.Context, term string, limit, offset int) (*itunes.Page[itunes.Collection], error)
}

// Config holds aggregator configuration
type Config struct {
	Term       string // Search term for both queries
	PageSize   int    // Items requested per query
	DisplayCap int    // Maximum items kept per sequence
}

// Snapshot is a copy of the overview's observable state.
type Snapshot struct {
	Tracks      []itunes.Track
	Collections []itunes.Collection
	Loading     bool
	Err         error // *AggregateError from the last fetch, nil after a success
}

// Aggregator fetches and holds the overview state.
type Aggregator struct {
	searcher Searcher
	config   Config
	logger   zerolog.Logger

	mu          sync.Mutex
	tracks      []itunes.Track
	collections []itunes.Collection
	loading     bool
	err         error

	changes notify.Hub[Snapshot]
}

// New creates an aggregator. Zero config fields fall back to DefaultTerm
// and pager.DefaultPageSize.
func New(searcher Searcher, cfg Config, logger zerolog.Logger) *Aggregator {
	if cfg.Term == "" {
		cfg.Term = DefaultTerm
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = pager.DefaultPageSize
	}
	if cfg.DisplayCap <= 0 {
		cfg.DisplayCap = cfg.PageSize
	}

	return &Aggregator{
		searcher: searcher,
		config:   cfg,
		logger:   logger.With().Str("component", "ranking").Str("term", cfg.Term).Logger(),
	}
}

// FetchInitial loads the first page of tracks and of collections.
//
// Both queries start together and the state is applied only after both
// have resolved. The sequences are replaced only when both succeed; on any
// failure the previous sequences are kept and the returned error, also
// stored in the snapshot, is an *AggregateError. A call made while a
// previous fetch is still loading does nothing and returns nil.
func (a *Aggregator) FetchInitial(ctx context.Context) error {
	a.mu.Lock()
	if a.loading {
		a.mu.Unlock()
		return nil
	}
	a.loading = true
	a.mu.Unlock()
	a.publish()

	// A panicking searcher must not leave the overview loading forever
	applied := false
	defer func() {
		if applied {
			return
		}
		a.mu.Lock()
		a.loading = false
		a.mu.Unlock()
		a.publish()
	}()

	a.logger.Debug().Int("limit", a.config.PageSize).Msg("Fetching overview")

	var (
		tracks   *itunes.Page[itunes.Track]
		colls    *itunes.Page[itunes.Collection]
		trackErr error
		collErr  error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		tracks, trackErr = a.searcher.Tracks(ctx, a.config.Term, a.config.PageSize, 0)
	})
	wg.Go(func() {
		colls, collErr = a.searcher.Collections(ctx, a.config.Term, a.config.PageSize, 0)
	})
	wg.Wait()

	err := joinErrors(trackErr, collErr)

	a.mu.Lock()
	if err == nil {
		a.tracks = capItems(results(tracks), a.config.DisplayCap)
		a.collections = capItems(results(colls), a.config.DisplayCap)
	}
	a.err = err
	a.loading = false
	applied = true
	nTracks, nColls := len(a.tracks), len(a.collections)
	a.mu.Unlock()

	if err != nil {
		a.logger.Warn().Err(err).Msg("Overview fetch failed")
	} else {
		a.logger.Info().
			Int("tracks", nTracks).
			Int("collections", nColls).
			Msg("Overview loaded")
	}

	a.publish()
	return err
}

// Snapshot returns a copy of the current state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return Snapshot{
		Tracks:      cloneItems(a.tracks),
		Collections: cloneItems(a.collections),
		Loading:     a.loading,
		Err:         a.err,
	}
}

// Subscribe registers fn to receive a snapshot on every loading, data, or
// error transition.
func (a *Aggregator) Subscribe(fn func(Snapshot)) (cancel func()) {
	return a.changes.Subscribe(fn)
}

// Term returns the search term both queries use.
func (a *Aggregator) Term() string {
	return a.config.Term
}

func (a *Aggregator) publish() {
	a.changes.Publish(a.Snapshot())
}

// TrackSeed returns the current track page as a pager seed.
func (a *Aggregator) TrackSeed() pager.Seed[itunes.Track] {
	return pager.Seed[itunes.Track]{Term: a.config.Term, Items: a.Snapshot().Tracks}
}

// CollectionSeed returns the current collection page as a pager seed.
func (a *Aggregator) CollectionSeed() pager.Seed[itunes.Collection] {
	return pager.Seed[itunes.Collection]{Term: a.config.Term, Items: a.Snapshot().Collections}
}

// NewTrackList creates a detail controller that resumes track pagination
// after the overview's first page.
func (a *Aggregator) NewTrackList(logger zerolog.Logger) *pager.Controller[itunes.Track] {
	return pager.New(TrackFetcher(a.searcher, a.config.Term), a.TrackSeed(), a.config.PageSize, logger)
}

// NewCollectionList creates a detail controller that resumes collection
// pagination after the overview's first page.
func (a *Aggregator) NewCollectionList(logger zerolog.Logger) *pager.Controller[itunes.Collection] {
	return pager.New(CollectionFetcher(a.searcher, a.config.Term), a.CollectionSeed(), a.config.PageSize, logger)
}

// TrackFetcher adapts s to a pager.Fetcher for track pages of term.
func TrackFetcher(s Searcher, term string) pager.Fetcher[itunes.Track] {
	return func(ctx context.Context, offset, limit int) ([]itunes.Track, error) {
		page, err := s.Tracks(ctx, term, limit, offset)
		if err != nil {
			return nil, err
		}
		return results(page), nil
	}
}

// CollectionFetcher adapts s to a pager.Fetcher for collection pages of term.
func CollectionFetcher(s Searcher, term string) pager.Fetcher[itunes.Collection] {
	return func(ctx context.Context, offset, limit int) ([]itunes.Collection, error) {
		page, err := s.Collections(ctx, term, limit, offset)
		if err != nil {
			return nil, err
		}
		return results(page), nil
	}
}

func results[T itunes.Result](page *itunes.Page[T]) []T {
	if page == nil {
		return nil
	}
	return page.Results
}

func capItems[T any](items []T, max int) []T {
	if len(items) > max {
		items = items[:max]
	}
	return cloneItems(items)
}

func cloneItems[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
