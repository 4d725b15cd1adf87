package workspacefinder

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

type envOverrides struct {
	DataDir      string        `env:"AOC_DATA_DIR"`
	RunsDir      string        `env:"AOC_RUNS_DIR"`
	Parallelism  int           `env:"AOC_PARALLELISM"`
	Timeout      time.Duration `env:"AOC_TIMEOUT"`
	DefaultInput string        `env:"AOC_DEFAULT_INPUT"`
}

// ApplyEnv overlays AOC_* environment variables on cfg. Unset variables
// leave cfg untouched.
func ApplyEnv(cfg *domain.Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.DataDir != "" {
		cfg.Paths.DataDir = o.DataDir
	}
	if o.RunsDir != "" {
		cfg.Paths.RunsDir = o.RunsDir
	}
	if o.Parallelism < 0 {
		return fmt.Errorf("AOC_PARALLELISM must be >= 1, got %d", o.Parallelism)
	}
	if o.Parallelism > 0 {
		cfg.Run.Parallelism = o.Parallelism
	}
	if o.Timeout > 0 {
		cfg.Run.Timeout = o.Timeout
	}
	if o.DefaultInput != "" {
		k, err := domain.ParseFixtureKind(o.DefaultInput)
		if err != nil {
			return fmt.Errorf("AOC_DEFAULT_INPUT: %w", err)
		}
		cfg.Run.DefaultInput = k
	}
	return nil
}
