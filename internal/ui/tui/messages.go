package tui

import "github.com/aalvaropc/aoc2021/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type runnerDoneMsg struct {
	day    int
	result domain.DayResult
	id     string
	err    error
}
