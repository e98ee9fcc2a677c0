// Package config reads command line flags, falling back to BLOCKFALL_*
// environment variables for anything not given on the command line.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"time"
)

const (
	defaultScores = "scores.txt"
	defaultPoll   = 10 * time.Millisecond
)

type Config struct {
	// ScoresPath is the append-only score ledger.
	ScoresPath string
	// LogPath receives diagnostics. Empty discards them.
	LogPath string
	// Seed for the shared piece randomizer. 0 seeds from the clock.
	Seed int64
	// Poll is the period of one input/render/gravity iteration.
	Poll time.Duration
}

// Load parses args (without the program name). getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Config{
		ScoresPath: defaultScores,
		Poll:       defaultPoll,
	}

	if v := getenv("BLOCKFALL_SCORES"); v != "" {
		cfg.ScoresPath = v
	}
	cfg.LogPath = getenv("BLOCKFALL_LOG")
	if v := getenv("BLOCKFALL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("BLOCKFALL_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("BLOCKFALL_POLL"); v != "" {
		poll, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("BLOCKFALL_POLL: %w", err)
		}
		cfg.Poll = poll
	}

	fs := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	fs.StringVar(&cfg.ScoresPath, "scores", cfg.ScoresPath, "Score ledger file")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Diagnostic log file (empty to discard)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Piece randomizer seed (0 = from clock)")
	fs.DurationVar(&cfg.Poll, "poll", cfg.Poll, "Input poll window")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Poll <= 0 {
		return Config{}, fmt.Errorf("poll window must be positive, got %s", cfg.Poll)
	}
	if cfg.ScoresPath == "" {
		return Config{}, fmt.Errorf("score ledger path is empty")
	}
	return cfg, nil
}
