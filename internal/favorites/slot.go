package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SlotName is the name of the persisted slot holding liked track ids.
const SlotName = "liked_items"

// Slot persists a single named array of integers. Implementations read and
// write the array as a whole.
type Slot interface {
	// Read returns the stored ids. A slot that was never written reads as
	// empty.
	Read(ctx context.Context) ([]int64, error)

	// Update reads the stored ids, passes them to fn, and writes fn's result
	// back as one atomic step. If fn returns an error nothing is written.
	Update(ctx context.Context, fn func([]int64) ([]int64, error)) error

	// Close releases resources held by the slot.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendFile   = "file"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("favorites: unknown backend")

// Open creates the slot for the named backend, storing its data under dir.
func Open(backend, dir string) (Slot, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create favorites directory: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendSQLite, "":
		return NewSQLiteSlot(filepath.Join(dir, "favorites.db"), SlotName)
	case BackendBolt:
		return NewBoltSlot(filepath.Join(dir, "favorites.bolt"), SlotName)
	case BackendFile:
		return NewFileSlot(filepath.Join(dir, "favorites.json")), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// encodeIDs and decodeIDs define the on-disk form shared by the database
// backends: a JSON array of integers.
func encodeIDs(ids []int64) ([]byte, error) {
	if ids == nil {
		ids = []int64{}
	}
	return json.Marshal(ids)
}

func decodeIDs(data []byte) ([]int64, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode slot: %w", err)
	}
	return ids, nil
}
