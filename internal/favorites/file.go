package favorites

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// FileSlot stores the slot as a JSON array in a single file.
// Writes go through a temp file and rename so a crash never leaves a
// truncated file behind.
type FileSlot struct {
	mu       sync.Mutex
	filePath string
}

// NewFileSlot returns a slot backed by filePath. The file is created on
// first write.
func NewFileSlot(filePath string) *FileSlot {
	return &FileSlot{filePath: filePath}
}

// Read returns the stored ids.
func (s *FileSlot) Read(ctx context.Context) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.restore()
}

// Update performs fn as a read-modify-write under the slot's lock.
func (s *FileSlot) Update(ctx context.Context, fn func([]int64) ([]int64, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	ids, err := s.restore()
	if err != nil {
		return err
	}

	next, err := fn(ids)
	if err != nil {
		return err
	}

	return s.persist(next)
}

// Close is a no-op; FileSlot holds no open handles.
func (s *FileSlot) Close() error {
	return nil
}

// persist saves ids to disk
// Must be called with lock held
func (s *FileSlot) persist(ids []int64) error {
	data, err := encodeIDs(ids)
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write atomically via temp file + rename
	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.filePath)
}

// restore loads ids from disk
// Must be called with lock held
func (s *FileSlot) restore() ([]int64, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeIDs(data)
}
