// Package sim runs Max Jack rounds in bulk: frequency mining of winning
// starting pairs and expected-value estimation of a strategy table.
//
// Each worker owns its rng and accumulator; results are combined by
// counter addition, so the totals do not depend on worker scheduling.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"maxjack/internal/game"
	"maxjack/internal/player"
	"maxjack/internal/strategy"
)

var ErrNoRuns = errors.New("run count must be positive")

// how many rounds a worker plays between context checks
const checkEvery = 4096

type Options struct {
	Runs    int
	Workers int

	// Seed for worker w is Seed+w.
	Seed int64

	// Table defaults to strategy.Default().
	Table *strategy.Table
}

func (o Options) workers() int {
	w := o.Workers
	if w > o.Runs {
		w = o.Runs
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (o Options) table() *strategy.Table {
	if o.Table == nil {
		return strategy.Default()
	}
	return o.Table
}

// batches splits runs into n contiguous shares, the remainder going to
// the first shares.
func batches(runs, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = runs / n
		if i < runs%n {
			out[i]++
		}
	}
	return out
}

// fanOut runs fn once per worker with that worker's share of rounds and
// rng. fn results are kept per worker for the caller to merge in order.
func fanOut(ctx context.Context, opts Options, fn func(ctx context.Context, rng *rand.Rand, rounds, worker int) error) error {
	if opts.Runs <= 0 {
		return ErrNoRuns
	}

	g, ctx := errgroup.WithContext(ctx)
	for w, rounds := range batches(opts.Runs, opts.workers()) {
		rng := rand.New(rand.NewSource(opts.Seed + int64(w)))
		g.Go(func() error {
			return fn(ctx, rng, rounds, w)
		})
	}
	return g.Wait()
}

// Mine plays opts.Runs rounds and tallies the winning starting pairs.
func Mine(ctx context.Context, opts Options) (*strategy.Counts, error) {
	partial := make([]*strategy.Counts, opts.workers())

	err := fanOut(ctx, opts, func(ctx context.Context, rng *rand.Rand, rounds, worker int) error {
		counts := strategy.NewCounts()
		for i := 0; i < rounds; i++ {
			if i%checkEvery == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			r, err := game.Deal(game.NewDeck(rng, false))
			if err != nil {
				return err
			}
			counts.Record(r)
		}
		partial[worker] = counts
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mine: %w", err)
	}

	total := strategy.NewCounts()
	for _, c := range partial {
		total.Merge(c)
	}
	return total, nil
}

// EstimateEV plays opts.Runs rounds choosing hands by opts.Table.
func EstimateEV(ctx context.Context, opts Options) (player.Ledger, error) {
	table := opts.table()
	partial := make([]player.Ledger, opts.workers())

	err := fanOut(ctx, opts, func(ctx context.Context, rng *rand.Rand, rounds, worker int) error {
		var ledger player.Ledger
		for i := 0; i < rounds; i++ {
			if i%checkEvery == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			res, err := PlayRound(rng, table)
			if err != nil {
				return err
			}
			ledger.Add(res)
		}
		partial[worker] = ledger
		return nil
	})
	if err != nil {
		return player.Ledger{}, fmt.Errorf("estimate ev: %w", err)
	}

	var total player.Ledger
	for _, l := range partial {
		total.Merge(l)
	}
	return total, nil
}

// PlayRound deals one round from a fresh deck and resolves the hand the
// table selects.
func PlayRound(rng *rand.Rand, table *strategy.Table) (game.Result, error) {
	r, err := game.Deal(game.NewDeck(rng, false))
	if err != nil {
		return game.Result{}, err
	}

	chosen, err := table.SelectRound(r)
	if err != nil {
		return game.Result{}, err
	}

	return game.Resolve(chosen, r.Totals())
}
