// Command mine simulates Max Jack rounds and prints the starting pairs that
// most often reach the best total.
//
//	mine [runs]
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
		logger.Error("mining failed", "error", err)
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

	opts := sim.Options{Runs: runs, Workers: cfg.Workers, Seed: seed}
	logger.Debug("mining started", "runs", runs, "workers", cfg.Workers, "seed", seed)

	started := time.Now()
	counts, err := sim.Mine(ctx, opts)
	if err != nil {
		return err
	}
	logger.Debug("mining finished", "elapsed", time.Since(started).String())

	freqs := counts.Fold()
	report, err := console.RenderMining(freqs, runs, cfg.Top)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)

	if cfg.DatabasePath == "" {
		return nil
	}

	repo, closeDB, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB()

	record := &store.MiningRun{Runs: runs, Workers: cfg.Workers, Seed: seed, Frequencies: freqs}
	if err := repo.SaveMining(ctx, record); err != nil {
		return err
	}
	logger.Info("mining run archived", "id", record.ID, "path", cfg.DatabasePath)
	return nil
}
