package favorites

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketSlots = []byte("slots")

// BoltSlot stores the slot as one key in a BoltDB bucket.
type BoltSlot struct {
	db  *bolt.DB
	key []byte
}

// NewBoltSlot opens (creating if needed) a BoltDB file at dbPath and
// returns the slot called name.
func NewBoltSlot(dbPath, name string) (*BoltSlot, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSlots)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltSlot{db: db, key: []byte(name)}, nil
}

// Read returns the stored ids.
func (s *BoltSlot) Read(ctx context.Context) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ids []int64
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		ids, err = decodeIDs(tx.Bucket(bucketSlots).Get(s.key))
		return err
	})
	return ids, err
}

// Update performs fn as a read-modify-write inside one bolt transaction.
func (s *BoltSlot) Update(ctx context.Context, fn func([]int64) ([]int64, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSlots)

		ids, err := decodeIDs(b.Get(s.key))
		if err != nil {
			return err
		}

		next, err := fn(ids)
		if err != nil {
			return err
		}

		data, err := encodeIDs(next)
		if err != nil {
			return fmt.Errorf("failed to encode slot: %w", err)
		}
		return b.Put(s.key, data)
	})
}

// Close closes the bolt database.
func (s *BoltSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
