package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc2021/internal/infra/fsworkspace"
	"github.com/aalvaropc/aoc2021/internal/infra/logger"
	"github.com/aalvaropc/aoc2021/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
	"github.com/aalvaropc/aoc2021/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var closeLog func() error

	cmd := &cobra.Command{
		Use:          "aoc2021",
		Short:        "Advent of Code 2021 solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ws, _ := cmd.Flags().GetString("workspace")
			closeLog = setupLogger(ws, debug)
			if debug && logger.Path() != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logger.Path())
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Catalog:              puzzles.Catalog{},
				Logger:               logger.L(),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .aoc2021/logs/aoc2021.log")

	cmd.AddCommand(
		runCmd(),
		listCmd(),
		initCmd(),
		runsCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogger writes logs under the workspace when one can be found.
// Outside a workspace logging stays disabled.
func setupLogger(workspaceFlag string, debug bool) func() error {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil
	}
	if _, err := os.Stat(filepath.Join(root, workspacefinder.ConfigFileName)); err != nil {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil {
		return nil
	}
	return cleanup
}
