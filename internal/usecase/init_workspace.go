package usecase

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace at dir, creating it if needed, and returns
// its absolute root.
func (uc *InitWorkspace) Execute(dir string, force bool) (string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.initworkspace",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  fmt.Errorf("invalid workspace path: %w", err),
		}
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "usecase.initworkspace",
			Kind: domain.KindExecution,
			Path: root,
			Err:  err,
		}
	}
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}
	return root, nil
}
