package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc2021/internal/infra/fsworkspace"
	"github.com/aalvaropc/aoc2021/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Scaffold a workspace (aoc.yaml, data/, runs/, .gitignore)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			root, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(dir, force)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite aoc.yaml and data/answers.yaml if they exist")
	return c
}
