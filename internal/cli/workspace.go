package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/answerbook"
	"github.com/aalvaropc/aoc2021/internal/infra/fixtures"
	"github.com/aalvaropc/aoc2021/internal/infra/logger"
	"github.com/aalvaropc/aoc2021/internal/infra/runstore"
	"github.com/aalvaropc/aoc2021/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	fixtures *fixtures.Loader
	answers  *answerbook.Book
	store    *runstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := fixtures.NewLoader(root, fixtures.WithDataDir(cfg.Paths.DataDir))

	book, err := answerbook.Load(workspacefinder.AnswersPath(root, cfg))
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		fixtures: loader,
		answers:  book,
		store:    runstore.NewJSONStore(root, cfg, runstore.WithIndex(true), runstore.WithLogger(logger.L())),
	}, nil
}

// fileRunConfig is the config for a --file run. A workspace is optional;
// without one the defaults plus AOC_* env apply.
func fileRunConfig(workspaceFlag string) (domain.Config, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err == nil {
		return workspacefinder.LoadConfigOrDefault(root)
	}
	if strings.TrimSpace(workspaceFlag) != "" {
		return domain.Config{}, err
	}

	cfg := domain.DefaultConfig()
	if err := workspacefinder.ApplyEnv(&cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return cfg, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `aoc2021 init`): %w", wd, err)
	}
	return root, nil
}

// parseDays accepts day numbers and inclusive ranges such as "3-7".
func parseDays(args []string) ([]int, error) {
	var days []int
	for _, a := range args {
		lo, hi, isRange := strings.Cut(strings.TrimSpace(a), "-")
		from, err := parseDay(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseDay(hi); err != nil {
				return nil, err
			}
			if to < from {
				return nil, fmt.Errorf("%w: day range %q is reversed", domain.ErrInvalidInput, a)
			}
		}
		for d := from; d <= to; d++ {
			days = append(days, d)
		}
	}
	return days, nil
}

func parseDay(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !domain.ValidDay(d) {
		return 0, fmt.Errorf("%w: %q is not a day between %d and %d", domain.ErrInvalidInput, s, domain.FirstDay, domain.LastDay)
	}
	return d, nil
}
