package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteSlot stores the slot as one row of a key/value table in SQLite.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// NewSQLiteSlot opens (creating if needed) a SQLite database at dbPath and
// returns the slot called name. Use ":memory:" for a throwaway database.
func NewSQLiteSlot(dbPath, name string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent and
	// serializes read-modify-write transactions.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Write-Ahead Logging for concurrent access
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteSlot{db: db, name: name}, nil
}

// Read returns the stored ids.
func (s *SQLiteSlot) Read(ctx context.Context) ([]int64, error) {
	return s.read(ctx, s.db)
}

// Update performs fn as a read-modify-write inside one transaction.
func (s *SQLiteSlot) Update(ctx context.Context, fn func([]int64) ([]int64, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids, err := s.read(ctx, tx)
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

	query := `
		INSERT INTO slots (name, value, updated_at)
		VALUES (?, ?, strftime('%s', 'now'))
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, s.name, string(data)); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *SQLiteSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLiteSlot) read(ctx context.Context, q queryer) ([]int64, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM slots WHERE name = ?", s.name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}
	return decodeIDs([]byte(value))
}
