package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maxjack/internal/config"
	"maxjack/internal/logging"
	"maxjack/internal/store"
	"maxjack/internal/strategy"
)

func testConfig() *config.Config {
	return &config.Config{DefaultRuns: 300, Workers: 2, Seed: 4, Top: 10, Table: "default"}
}

func TestRunPrintsTopPairs(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out bytes.Buffer
	err := run(context.Background(), testConfig(), logging.New(io.Discard, "error"), []string{"2000"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Top 10 Winning Starting Pairs (out of 2,000 runs):")
}

func TestRunFallsBackToDefaultRuns(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out, logs bytes.Buffer
	err := run(context.Background(), testConfig(), logging.New(&logs, "warn"), []string{"many"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "(out of 300 runs)")
	assert.Contains(t, logs.String(), "Invalid argument for number of runs")
}

func TestRunArchivesToDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "runs.db")

	err := run(context.Background(), cfg, logging.New(io.Discard, "error"), nil, io.Discard)
	require.NoError(t, err)

	repo, closeDB, err := store.Open(cfg.DatabasePath)
	require.NoError(t, err)
	defer closeDB()

	table, err := repo.LatestTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, strategy.NumPairs, table.Len())
}
