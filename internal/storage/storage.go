// Package storage is the workout journal, a libsql database of finished
// workouts.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

var ErrNotConfigured = errors.New("workout journal not configured: set database.connection_string or TURSO_DATABASE_URL")

type Storage struct {
	DB *sql.DB
}

// Open connects to the libsql database at url and creates the schema.
func Open(ctx context.Context, url string) (*Storage, error) {
	if url == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db %s: %w", url, err)
	}

	st, err := New(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// New wraps an open database and creates the schema.
func New(ctx context.Context, db *sql.DB) (*Storage, error) {
	if err := initializeDB(ctx, db); err != nil {
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		template_name TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workout_sets (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_index INTEGER NOT NULL,
		weight REAL NOT NULL,
		reps INTEGER NOT NULL,
		rpe INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	)`,
}

// Statements run one at a time, remote libsql does not take batches.
func initializeDB(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
