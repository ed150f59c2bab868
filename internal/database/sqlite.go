package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS mining_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		runs INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS mining_pairs (
		run_id INTEGER NOT NULL REFERENCES mining_runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		low TEXT NOT NULL,
		high TEXT NOT NULL,
		frequency REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE TABLE IF NOT EXISTS ev_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		runs INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		wins INTEGER NOT NULL,
		losses INTEGER NOT NULL,
		pushes INTEGER NOT NULL,
		total REAL NOT NULL,
		ev REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_ev_runs_created ON ev_runs(created_at);
	`

	_, err := db.Exec(schema)
	return err
}
