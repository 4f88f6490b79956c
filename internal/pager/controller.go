// Package pager implements incremental fetch-more pagination for a single
// result kind.
package pager

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/storefront/internal/notify"
)

// DefaultPageSize is the page size used by the overview and detail lists.
const DefaultPageSize = 36

// Fetcher loads up to limit items starting at offset.
type Fetcher[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// Seed is the initial item sequence a controller resumes from, usually the
// first page already fetched by the overview.
type Seed[T any] struct {
	Term  string // Search term the items were fetched for
	Items []T
}

// State is the pagination bookkeeping for one controller.
type State struct {
	Offset    int  // Items received so far, including the seed
	PageSize  int  // Items requested per fetch
	Exhausted bool // Set once a fetch returns fewer than PageSize items
	InFlight  bool // A fetch has been started and not yet resolved
}

// Snapshot is a copy of a controller's observable state.
type Snapshot[T any] struct {
	Items []T
	State State
	Err   error // Error from the most recent fetch, nil after a success
}

// Controller owns one pagination state and the accumulated items, and
// extends them on demand.
//
// The controller is pull-based: nothing happens until LoadMore is called.
type Controller[T any] struct {
	fetch  Fetcher[T]
	term   string
	logger zerolog.Logger

	mu    sync.Mutex
	items []T
	state State
	err   error

	changes notify.Hub[Snapshot[T]]
}

// New creates a controller seeded with seed. The offset starts at the seed
// length. A non-positive pageSize falls back to DefaultPageSize.
func New[T any](fetch Fetcher[T], seed Seed[T], pageSize int, logger zerolog.Logger) *Controller[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	items := make([]T, len(seed.Items))
	copy(items, seed.Items)

	return &Controller[T]{
		fetch:  fetch,
		term:   seed.Term,
		logger: logger.With().Str("component", "pager").Str("term", seed.Term).Logger(),
		items:  items,
		state: State{
			Offset:   len(items),
			PageSize: pageSize,
		},
	}
}

// LoadMore fetches the next page and appends it.
//
// It returns immediately with no items and no error when a fetch is
// already in flight or the list is exhausted; no request is made in that
// case. On failure the accumulated items and offset are left unchanged and
// the error is both returned and stored.
func (c *Controller[T]) LoadMore(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	if c.state.InFlight || c.state.Exhausted {
		c.mu.Unlock()
		return nil, nil
	}
	c.state.InFlight = true
	offset, limit := c.state.Offset, c.state.PageSize
	c.mu.Unlock()
	c.publish()

	c.logger.Debug().Int("offset", offset).Int("limit", limit).Msg("Loading page")

	defer func() {
		c.mu.Lock()
		c.state.InFlight = false
		c.mu.Unlock()
		c.publish()
	}()

	page, err := c.fetch(ctx, offset, limit)
	if err != nil {
		c.logger.Warn().Err(err).Int("offset", offset).Msg("Failed to load page")
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.items = append(c.items, page...)
	c.state.Offset += len(page)
	if len(page) < c.state.PageSize {
		c.state.Exhausted = true
	}
	c.err = nil
	exhausted := c.state.Exhausted
	c.mu.Unlock()

	c.logger.Debug().
		Int("received", len(page)).
		Bool("exhausted", exhausted).
		Msg("Loaded page")

	added := make([]T, len(page))
	copy(added, page)
	return added, nil
}

// Snapshot returns a copy of the current state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Items returns a copy of the accumulated items.
func (c *Controller[T]) Items() []T {
	return c.Snapshot().Items
}

// State returns the current pagination state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to receive a snapshot whenever the in-flight flag,
// the items, or the error slot change.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	return c.changes.Subscribe(fn)
}

func (c *Controller[T]) publish() {
	c.changes.Publish(c.Snapshot())
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items: items,
		State: c.state,
		Err:   c.err,
	}
}
