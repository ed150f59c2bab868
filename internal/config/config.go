package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrLatestNeedsDatabase rejects MAXJACK_TABLE=latest when no archive is
// configured to read the mined table from.
var ErrLatestNeedsDatabase = errors.New("MAXJACK_TABLE=latest requires MAXJACK_DATABASE_PATH")

// DefaultRuns is used when no run count is given on the command line.
const DefaultRuns = 1_000_000

type Config struct {
	DefaultRuns  int    `env:"MAXJACK_DEFAULT_RUNS"  envDefault:"1000000"`
	Workers      int    `env:"MAXJACK_WORKERS"       envDefault:"1"`
	Seed         int64  `env:"MAXJACK_SEED"          envDefault:"0"`
	Suited       bool   `env:"MAXJACK_SUITED"        envDefault:"true"`
	LogLevel     string `env:"MAXJACK_LOG_LEVEL"     envDefault:"info"`
	DatabasePath string `env:"MAXJACK_DATABASE_PATH"`
	Table        string `env:"MAXJACK_TABLE"         envDefault:"default"`
	Top          int    `env:"MAXJACK_TOP"           envDefault:"10"`
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DefaultRuns <= 0 {
		return nil, fmt.Errorf("MAXJACK_DEFAULT_RUNS must be positive, got %d", cfg.DefaultRuns)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("MAXJACK_WORKERS must be positive, got %d", cfg.Workers)
	}
	if cfg.Top <= 0 {
		return nil, fmt.Errorf("MAXJACK_TOP must be positive, got %d", cfg.Top)
	}
	cfg.Table = strings.ToLower(cfg.Table)
	if cfg.Table != "default" && cfg.Table != "latest" {
		return nil, fmt.Errorf("MAXJACK_TABLE must be default or latest, got %q", cfg.Table)
	}
	if cfg.UseLatestTable() && cfg.DatabasePath == "" {
		return nil, ErrLatestNeedsDatabase
	}

	return &cfg, nil
}

// UseLatestTable reports whether the newest archived mining run should
// replace the shipped strategy table.
func (c *Config) UseLatestTable() bool {
	return c.Table == "latest"
}

// ParseRuns reads the optional run count from the positional arguments
// (program name excluded). ok is false when an argument was given but is
// not a positive integer; def is returned in that case.
func ParseRuns(args []string, def int) (runs int, ok bool) {
	if len(args) == 0 {
		return def, true
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || n <= 0 {
		return def, false
	}
	return n, true
}
