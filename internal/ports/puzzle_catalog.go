package ports

import "github.com/aalvaropc/aoc2021/internal/domain"

// PuzzleCatalog exposes the registered solvers.
type PuzzleCatalog interface {
	Lookup(day int) (domain.Puzzle, bool)
	All() []domain.Puzzle
}
