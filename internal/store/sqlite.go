// Package store persists arena match results to SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/efreeman/hexfront/internal/bot"
)

// MatchStore records completed matches.
type MatchStore interface {
	SaveMatch(ctx context.Context, r *bot.ArenaResult) error
	Close() error
}

// SQLiteStore is a MatchStore backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (and if needed creates) the match database at path.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	winner      TEXT NOT NULL,
	turns       INTEGER NOT NULL,
	seed        INTEGER NOT NULL,
	units       TEXT NOT NULL,
	buildings   TEXT NOT NULL,
	recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_name ON matches(name);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveMatch appends one match result.
func (s *SQLiteStore) SaveMatch(ctx context.Context, r *bot.ArenaResult) error {
	units, err := json.Marshal(r.Units)
	if err != nil {
		return fmt.Errorf("marshal unit counts: %w", err)
	}
	buildings, err := json.Marshal(r.Buildings)
	if err != nil {
		return fmt.Errorf("marshal building counts: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO matches (name, winner, turns, seed, units, buildings, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Name, r.Winner, r.Turns, r.Seed, string(units), string(buildings),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
