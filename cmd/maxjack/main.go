// Command maxjack is the interactive game: four hands are dealt with two
// cards showing, you pick one, and the best total wins.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"maxjack/internal/config"
	"maxjack/internal/console"
	"maxjack/internal/logging"
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

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("dealer ready", "seed", seed, "suited", cfg.Suited)

	g := &console.Game{
		In:     os.Stdin,
		Out:    os.Stdout,
		Rand:   rand.New(rand.NewSource(seed)),
		Suited: cfg.Suited,
		Log:    logger,
	}

	if _, err := g.Run(ctx); err != nil {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
