package ports

import "github.com/aalvaropc/aoc2021/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
