package domain

import "time"

// Config represents the workspace configuration loaded from aoc.yaml.
type Config struct {
	Year  int
	Paths PathsConfig
	Run   RunConfig
}

type PathsConfig struct {
	DataDir     string
	RunsDir     string
	AnswersFile string // relative to DataDir
}

type RunConfig struct {
	Parallelism  int
	Timeout      time.Duration
	DefaultInput FixtureKind
}

// DefaultConfig provides sane defaults if aoc.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Year: 2021,
		Paths: PathsConfig{
			DataDir:     "data",
			RunsDir:     "runs",
			AnswersFile: "answers.yaml",
		},
		Run: RunConfig{
			Parallelism:  4,
			Timeout:      2 * time.Minute,
			DefaultInput: FixtureTest,
		},
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}
