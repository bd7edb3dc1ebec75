// Package store persists generated docstring blocks in a local SQLite
// database keyed by content hash, so repeated runs over unchanged code
// skip delegated generation entirely.
//
// The schema is versioned through SQLite's user_version pragma. Two
// drivers are supported behind build tags: modernc.org/sqlite (pure Go,
// the default) and mattn/go-sqlite3 (cgo_sqlite tag).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// schemaVersion tracks the cache database schema
const schemaVersion = 1

const createTableSQL = `
CREATE TABLE IF NOT EXISTS docstrings (
    key        TEXT PRIMARY KEY,
    style      TEXT NOT NULL,
    content    TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// Store is a durable docstring cache. It satisfies the generator's Store
// interface.
type Store struct {
	db *sql.DB
}

// Open creates or opens the cache database at path, creating parent
// directories and running migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	if version >= schemaVersion {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	return err
}

// Get returns the cached block for key, reporting whether it was present
func (s *Store) Get(ctx context.Context, key string) (*types.DocBlock, bool, error) {
	var content string
	err := s.db.QueryRowContext(ctx, "SELECT content FROM docstrings WHERE key = ?", key).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &types.DocBlock{Lines: strings.Split(content, "\n")}, true, nil
}

// Put stores or replaces the cached block for key
func (s *Store) Put(ctx context.Context, key string, style types.DocStyle, block *types.DocBlock) error {
	if err := block.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO docstrings (key, style, content) VALUES (?, ?, ?)",
		key, string(style), strings.Join(block.Lines, "\n"))
	return err
}

// Len returns the number of cached blocks
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM docstrings").Scan(&n)
	return n, err
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}
