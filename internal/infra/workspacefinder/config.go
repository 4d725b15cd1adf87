package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

// LoadConfig loads aoc.yaml from the workspace root, applies defaults and
// then AOC_* environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := applyYAML(&cfg, y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	return cfg, nil
}

// LoadConfigOrDefault is LoadConfig that falls back to defaults (plus env)
// when aoc.yaml does not exist.
func LoadConfigOrDefault(root string) (domain.Config, error) {
	cfg, err := LoadConfig(root)
	if err != nil && domain.IsKind(err, domain.KindNotFound) {
		cfg = domain.DefaultConfig()
		if envErr := ApplyEnv(&cfg); envErr != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.env",
				Kind: domain.KindInvalidConfig,
				Err:  envErr,
			}
		}
		return cfg, nil
	}
	return cfg, err
}

func applyYAML(cfg *domain.Config, y yamlConfig) error {
	// Apply parsed values on top of defaults.
	if y.AOC.Year != 0 {
		cfg.Year = y.AOC.Year
	}
	if y.AOC.Paths.DataDir != "" {
		cfg.Paths.DataDir = y.AOC.Paths.DataDir
	}
	if y.AOC.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.AOC.Paths.RunsDir
	}
	if y.AOC.Paths.AnswersFile != "" {
		cfg.Paths.AnswersFile = y.AOC.Paths.AnswersFile
	}
	if y.AOC.Run.Parallelism != nil {
		if *y.AOC.Run.Parallelism < 1 {
			return fmt.Errorf("run.parallelism must be >= 1, got %d", *y.AOC.Run.Parallelism)
		}
		cfg.Run.Parallelism = *y.AOC.Run.Parallelism
	}
	if s := strings.TrimSpace(y.AOC.Run.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("run.timeout: %w", err)
		}
		cfg.Run.Timeout = d
	}
	if s := strings.TrimSpace(y.AOC.Run.DefaultInput); s != "" {
		k, err := domain.ParseFixtureKind(s)
		if err != nil {
			return fmt.Errorf("run.default_input: %w", err)
		}
		cfg.Run.DefaultInput = k
	}
	return nil
}

type yamlConfig struct {
	AOC struct {
		Year int `yaml:"year"`

		Paths struct {
			DataDir     string `yaml:"data_dir"`
			RunsDir     string `yaml:"runs_dir"`
			AnswersFile string `yaml:"answers_file"`
		} `yaml:"paths"`

		Run struct {
			Parallelism  *int   `yaml:"parallelism"`
			Timeout      string `yaml:"timeout"`
			DefaultInput string `yaml:"default_input"`
		} `yaml:"run"`
	} `yaml:"aoc"`
}

// DataDir resolves the configured data directory against root.
func DataDir(root string, cfg domain.Config) string {
	if filepath.IsAbs(cfg.Paths.DataDir) {
		return cfg.Paths.DataDir
	}
	return filepath.Join(root, cfg.Paths.DataDir)
}

// AnswersPath resolves the answer book. Relative paths live under the data directory.
func AnswersPath(root string, cfg domain.Config) string {
	if filepath.IsAbs(cfg.Paths.AnswersFile) {
		return cfg.Paths.AnswersFile
	}
	return filepath.Join(DataDir(root, cfg), cfg.Paths.AnswersFile)
}
