package ports

import "github.com/aalvaropc/aoc2021/internal/domain"

// ArtifactStore persists run reports.
type ArtifactStore interface {
	SaveRun(run domain.RunReport) (id string, err error)
}

// ArtifactReader lists and reads persisted run reports.
type ArtifactReader interface {
	ListRuns() ([]domain.RunSummary, error)
	LoadRun(id string) ([]byte, error)
}
