package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/nsutil/pkg/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS namespaces (
	prefix     TEXT PRIMARY KEY,
	uri        TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Store implements ports.NamespaceStore on a SQLite database.
// Each Put runs in autocommit mode, so it is durable when it returns.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to ensure database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Load selects every binding.
func (s *Store) Load(ctx context.Context) (domain.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT prefix, uri FROM namespaces`)
	if err != nil {
		return nil, fmt.Errorf("failed to query namespaces: %w", err)
	}
	defer rows.Close()

	table := domain.Table{}
	for rows.Next() {
		var prefix, uri string
		if err := rows.Scan(&prefix, &uri); err != nil {
			return nil, fmt.Errorf("failed to scan namespace row: %w", err)
		}
		table[prefix] = uri
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read namespaces: %w", err)
	}
	return table, nil
}

// Put upserts a binding.
func (s *Store) Put(ctx context.Context, prefix, uri string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO namespaces (prefix, uri) VALUES (?, ?)
		ON CONFLICT(prefix) DO UPDATE SET uri = excluded.uri, updated_at = CURRENT_TIMESTAMP`,
		prefix, uri)
	if err != nil {
		return fmt.Errorf("failed to upsert namespace: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
