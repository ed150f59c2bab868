package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultRuns, cfg.DefaultRuns)
	assert.Equal(t, 1, cfg.Workers)
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.Suited)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.DatabasePath)
	assert.Equal(t, 10, cfg.Top)
	assert.False(t, cfg.UseLatestTable())
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAXJACK_WORKERS", "8")
	t.Setenv("MAXJACK_SEED", "1234")
	t.Setenv("MAXJACK_SUITED", "false")
	t.Setenv("MAXJACK_DATABASE_PATH", "runs.db")
	t.Setenv("MAXJACK_TABLE", "Latest")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.False(t, cfg.Suited)
	assert.True(t, cfg.UseLatestTable())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"MAXJACK_WORKERS":      "0",
		"MAXJACK_DEFAULT_RUNS": "-5",
		"MAXJACK_SEED":         "abc",
		"MAXJACK_TABLE":        "newest",
		"MAXJACK_TOP":          "0",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsLatestWithoutDatabase(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MAXJACK_TABLE", "latest")

	_, err := Load()
	assert.ErrorIs(t, err, ErrLatestNeedsDatabase)
}

func TestParseRuns(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		runs   int
		wantOK bool
	}{
		{"absent", nil, DefaultRuns, true},
		{"valid", []string{"5000"}, 5000, true},
		{"padded", []string{" 42 "}, 42, true},
		{"not a number", []string{"lots"}, DefaultRuns, false},
		{"zero", []string{"0"}, DefaultRuns, false},
		{"negative", []string{"-3"}, DefaultRuns, false},
		{"extra args ignored", []string{"10", "20"}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, ok := ParseRuns(tt.args, DefaultRuns)
			assert.Equal(t, tt.runs, runs)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
