package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"maxjack/internal/database"
	"maxjack/internal/game"
	"maxjack/internal/player"
	"maxjack/internal/strategy"
)

var ErrNoMiningRuns = errors.New("no mining runs archived")

type MiningRun struct {
	ID          int64
	Runs        int
	Workers     int
	Seed        int64
	Frequencies []strategy.Frequency
	CreatedAt   time.Time
}

type EVRun struct {
	ID        int64
	Runs      int
	Workers   int
	Seed      int64
	Ledger    player.Ledger
	CreatedAt time.Time
}

// Repository archives simulation runs.
type Repository interface {
	SaveMining(ctx context.Context, run *MiningRun) error
	SaveEV(ctx context.Context, run *EVRun) error
	LatestTable(ctx context.Context) (*strategy.Table, error)
	RecentEV(ctx context.Context, limit int) ([]EVRun, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) SaveMining(ctx context.Context, run *MiningRun) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin mining save: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO mining_runs (runs, seed, workers)
		VALUES (?, ?, ?)
	`, run.Runs, run.Seed, run.Workers)
	if err != nil {
		return fmt.Errorf("failed to save mining run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read mining run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO mining_pairs (run_id, position, low, high, frequency)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare pair insert: %w", err)
	}
	defer stmt.Close()

	for i, f := range run.Frequencies {
		if _, err := stmt.ExecContext(ctx, id, i, f.Pair.Low.String(), f.Pair.High.String(), f.Count); err != nil {
			return fmt.Errorf("failed to save pair %s: %w", f.Pair, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mining run: %w", err)
	}
	run.ID = id
	return nil
}

func (r *SQLiteRepository) SaveEV(ctx context.Context, run *EVRun) error {
	l := run.Ledger
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO ev_runs (runs, seed, workers, wins, losses, pushes, total, ev)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.Runs, run.Seed, run.Workers, l.Wins, l.Losses, l.Pushes, l.Total, l.EV())
	if err != nil {
		return fmt.Errorf("failed to save ev run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read ev run id: %w", err)
	}
	run.ID = id
	return nil
}

// LatestTable rebuilds the strategy table from the newest mining run.
func (r *SQLiteRepository) LatestTable(ctx context.Context) (*strategy.Table, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id FROM mining_runs ORDER BY id DESC LIMIT 1
	`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoMiningRuns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find mining run: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT low, high FROM mining_pairs
		WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load mining pairs: %w", err)
	}
	defer rows.Close()

	var pairs []strategy.Pair
	for rows.Next() {
		var low, high string
		if err := rows.Scan(&low, &high); err != nil {
			return nil, err
		}
		a, err := game.ParseRank(low)
		if err != nil {
			return nil, fmt.Errorf("mining run %d: %w", id, err)
		}
		b, err := game.ParseRank(high)
		if err != nil {
			return nil, fmt.Errorf("mining run %d: %w", id, err)
		}
		pairs = append(pairs, strategy.NewPair(a, b))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	table, err := strategy.NewTable(pairs)
	if err != nil {
		return nil, fmt.Errorf("mining run %d: %w", id, err)
	}
	return table, nil
}

func (r *SQLiteRepository) RecentEV(ctx context.Context, limit int) ([]EVRun, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, runs, seed, workers, wins, losses, pushes, total, created_at
		FROM ev_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []EVRun
	for rows.Next() {
		var run EVRun
		if err := rows.Scan(
			&run.ID, &run.Runs, &run.Seed, &run.Workers,
			&run.Ledger.Wins, &run.Ledger.Losses, &run.Ledger.Pushes,
			&run.Ledger.Total, &run.CreatedAt,
		); err != nil {
			return nil, err
		}
		run.Ledger.Rounds = run.Runs
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Open connects to the archive at path and returns a repository with its
// closer.
func Open(path string) (*SQLiteRepository, func() error, error) {
	db, err := database.New(path)
	if err != nil {
		return nil, nil, err
	}
	return NewRepository(db.DB), db.Close, nil
}
