package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/answerbook"
	"github.com/aalvaropc/aoc2021/internal/infra/fixtures"
	"github.com/aalvaropc/aoc2021/internal/infra/runstore"
	"github.com/aalvaropc/aoc2021/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc2021/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

// cmdRunDay solves one day in the workspace and saves the run.
func cmdRunDay(deps Deps, workspaceRoot string, day int, kind domain.FixtureKind) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		log.Info("tui.run.start", "workspace", workspaceRoot, "day", day, "kind", kind, "debug", deps.Debug)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("tui.run.load_config.failed", "err", err)
			return runnerDoneMsg{day: day, err: err}
		}

		loader := fixtures.NewLoader(workspaceRoot, fixtures.WithDataDir(cfg.Paths.DataDir))
		book, err := answerbook.Load(workspacefinder.AnswersPath(workspaceRoot, cfg))
		if err != nil {
			log.Error("tui.run.load_answers.failed", "err", err)
			return runnerDoneMsg{day: day, err: err}
		}
		store := runstore.NewJSONStore(workspaceRoot, cfg, runstore.WithIndex(true), runstore.WithLogger(log))

		uc := usecase.NewRunPuzzles(deps.Catalog, loader, book, store,
			usecase.WithLogger(log),
			usecase.WithTimeout(cfg.Run.Timeout),
		)

		report, id, execErr := uc.Execute(context.Background(), usecase.RunRequest{
			Days: []int{day},
			Kind: kind,
		})
		if execErr != nil {
			log.Error("tui.run.failed", "err", execErr, "saved_id", id)
		} else {
			log.Info("tui.run.ok", "saved_id", id)
		}

		msg := runnerDoneMsg{day: day, id: id, err: execErr}
		if len(report.Results) == 1 {
			msg.result = report.Results[0]
		}
		return msg
	}
}
