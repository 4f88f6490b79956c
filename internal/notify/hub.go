// Package notify provides explicit observer registration for components
// whose state is rendered by more than one view.
package notify

import (
	"sort"
	"sync"
)

// Hub fans a value out to every registered subscriber.
//
// Subscribers are called synchronously, in registration order, on the
// goroutine that calls Publish. Publishers must not hold their own locks
// while publishing.
type Hub[T any] struct {
	mu   sync.Mutex
	next int
	subs map[int]func(T)
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (h *Hub[T]) Subscribe(fn func(T)) (cancel func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs == nil {
		h.subs = make(map[int]func(T))
	}
	id := h.next
	h.next++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish delivers v to all current subscribers.
func (h *Hub[T]) Publish(v T) {
	for _, fn := range h.snapshot() {
		fn(v)
	}
}

func (h *Hub[T]) snapshot() []func(T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]int, 0, len(h.subs))
	for id := range h.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(T), len(ids))
	for i, id := range ids {
		fns[i] = h.subs[id]
	}
	return fns
}
