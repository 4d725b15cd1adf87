package tui

import (
	"log/slog"

	"github.com/aalvaropc/aoc2021/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer
	Catalog              ports.PuzzleCatalog

	Logger *slog.Logger
	Debug  bool
}
