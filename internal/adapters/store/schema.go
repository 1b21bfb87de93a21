package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// SQL dialects supported by the point stores.
type Dialect string

const (
	Postgres Dialect = "postgres"
	Sqlite   Dialect = "sqlite"
)

// Initialize the points table for the given dialect.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case Postgres:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS points (
			seq BIGSERIAL PRIMARY KEY,
			id UUID NOT NULL UNIQUE,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			popup TEXT NOT NULL DEFAULT '',
			tooltip TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
		`}
	case Sqlite:
		statements = []string{`
		CREATE TABLE IF NOT EXISTS points (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			lat REAL NOT NULL,
			lon REAL NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			popup TEXT NOT NULL DEFAULT '',
			tooltip TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);
		`}
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
