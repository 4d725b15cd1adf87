package ports

import "github.com/aalvaropc/aoc2021/internal/domain"

// FixtureLoader reads puzzle fixtures from a source (e.g., the data directory).
type FixtureLoader interface {
	Load(ref domain.FixtureRef) ([]byte, error)
	Exists(ref domain.FixtureRef) bool
	List() ([]domain.FixtureRef, error)
}
