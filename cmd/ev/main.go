// Command ev estimates the expected value of playing Max Jack with a
// strategy table.
//
//	ev [runs]
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"maxjack/internal/config"
	"maxjack/internal/console"
	"maxjack/internal/logging"
	"maxjack/internal/sim"
	"maxjack/internal/store"
	"maxjack/internal/strategy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		logger.Error("ev estimate failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	runs, ok := config.ParseRuns(args, cfg.DefaultRuns)
	if !ok {
		logger.Warn("Invalid argument for number of runs, using default", "argument", args[0], "default", console.Count(runs))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var repo store.Repository
	if cfg.DatabasePath != "" {
		r, closeDB, err := store.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer closeDB()
		repo = r
	}

	table := strategy.Default()
	if cfg.UseLatestTable() {
		if repo == nil {
			return config.ErrLatestNeedsDatabase
		}
		t, err := repo.LatestTable(ctx)
		if err != nil {
			return fmt.Errorf("load mined table: %w", err)
		}
		table = t
		logger.Info("using latest mined strategy table")
	}

	opts := sim.Options{Runs: runs, Workers: cfg.Workers, Seed: seed, Table: table}
	logger.Debug("ev estimate started", "runs", runs, "workers", cfg.Workers, "seed", seed)

	ledger, err := sim.EstimateEV(ctx, opts)
	if err != nil {
		return err
	}

	report, err := console.RenderEV(ledger)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)

	if repo == nil {
		return nil
	}

	record := &store.EVRun{Runs: runs, Workers: cfg.Workers, Seed: seed, Ledger: ledger}
	return archive(ctx, repo, record, logger)
}

// archive saves record and logs the EV of the run archived before it.
func archive(ctx context.Context, repo store.Repository, record *store.EVRun, logger *slog.Logger) error {
	if err := repo.SaveEV(ctx, record); err != nil {
		return err
	}
	logger.Info("ev run archived", "id", record.ID, "ev", fmt.Sprintf("%.5f", record.Ledger.EV()))

	recent, err := repo.RecentEV(ctx, 2)
	if err != nil {
		return fmt.Errorf("load previous ev run: %w", err)
	}
	if len(recent) < 2 {
		return nil
	}
	prev := recent[1]
	logger.Info("previous ev run",
		"id", prev.ID,
		"runs", prev.Runs,
		"ev", fmt.Sprintf("%.5f", prev.Ledger.EV()),
		"delta", fmt.Sprintf("%+.5f", record.Ledger.EV()-prev.Ledger.EV()),
	)
	return nil
}
