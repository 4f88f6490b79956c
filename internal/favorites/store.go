// Package favorites keeps the set of liked track identifiers.
//
// A Store is created once per process and passed to every view that shows
// like state, so all of them read and toggle the same set.
package favorites

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jfmyers9/storefront/internal/notify"
)

// Change describes one toggle.
type Change struct {
	ID    int64
	Liked bool
}

// Store is the favorites set, persisted through a Slot and cached in
// memory after the first access.
type Store struct {
	slot   Slot
	logger zerolog.Logger

	mu      sync.Mutex
	loaded  bool
	loadErr error
	ids     map[int64]struct{}

	changes notify.Hub[Change]
}

// New creates a store over slot. Nothing is read until first access.
func New(slot Slot, logger zerolog.Logger) *Store {
	return &Store{
		slot:   slot,
		logger: logger.With().Str("component", "favorites").Logger(),
	}
}

// Load reads the persisted set if it has not been read yet.
// A failed load is retried on the next access.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLoaded(ctx)
}

// Toggle flips membership of id and returns the new membership.
//
// The flip is computed against the persisted slot inside a single
// read-modify-write, so toggling twice always restores the prior state.
func (s *Store) Toggle(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return false, err
	}

	var liked bool
	var stored []int64
	err := s.slot.Update(ctx, func(ids []int64) ([]int64, error) {
		next, nowLiked := toggleID(ids, id)
		liked = nowLiked
		stored = next
		return next, nil
	})
	if err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("failed to toggle favorite %d: %w", id, err)
	}

	s.ids = toSet(stored)
	s.mu.Unlock()

	s.logger.Debug().Int64("id", id).Bool("liked", liked).Msg("Toggled favorite")
	s.changes.Publish(Change{ID: id, Liked: liked})

	return liked, nil
}

// IsFavorite reports whether id is in the set. If the set cannot be
// loaded it reports false; call Load to see the error.
func (s *Store) IsFavorite(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(context.Background()); err != nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

// IDs returns the liked ids in ascending order.
func (s *Store) IDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(context.Background()); err != nil {
		return nil
	}

	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subscribe registers fn to be called after every successful toggle.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	return s.changes.Subscribe(fn)
}

// Close closes the underlying slot.
func (s *Store) Close() error {
	return s.slot.Close()
}

// ensureLoaded reads the slot once.
// Must be called with lock held
func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	ids, err := s.slot.Read(ctx)
	if err != nil {
		if s.loadErr == nil {
			s.logger.Error().Err(err).Msg("Failed to load favorites")
		}
		s.loadErr = err
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	s.ids = toSet(ids)
	s.loaded = true
	s.loadErr = nil
	s.logger.Debug().Int("count", len(s.ids)).Msg("Loaded favorites")
	return nil
}

// toggleID removes every copy of id if present, otherwise appends it.
func toggleID(ids []int64, id int64) ([]int64, bool) {
	next := make([]int64, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, id)
	}
	return next, !found
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
