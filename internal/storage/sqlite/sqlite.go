// Package sqlite stores visitor preferences in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aditya2671/portfolio/internal/theme"
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_preferences",
		sql: `
		CREATE TABLE IF NOT EXISTS preferences (
			owner TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (owner, key)
		)`,
	},
}

// Open opens (creating if needed) the database at path and runs migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return err
	}

	for _, m := range migrations {
		var applied int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&applied); err != nil {
			return err
		}
		if applied > 0 {
			continue
		}
		if _, err := s.db.ExecContext(ctx, m.sql); err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO migrations (name) VALUES (?)", m.name); err != nil {
			return err
		}
	}
	return nil
}

// Preferences returns the preference store for one visitor.
func (s *Store) Preferences(owner string) *PreferenceStore {
	return &PreferenceStore{db: s.db, owner: owner}
}

// PreferenceStore implements theme.Store over the preferences table.
type PreferenceStore struct {
	db    *sql.DB
	owner string
}

func (p *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		"SELECT value FROM preferences WHERE owner = ? AND key = ?",
		p.owner, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load preference %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PreferenceStore) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO preferences (owner, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(owner, key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, p.owner, key, value)
	if err != nil {
		return fmt.Errorf("save preference %s: %w", key, err)
	}
	return nil
}

var _ theme.Store = (*PreferenceStore)(nil)
