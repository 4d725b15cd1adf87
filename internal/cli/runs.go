package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/usecase/query"
)

func runsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsListCmd(), runsShowCmd())
	return c
}

func runsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			runs, err := ws.store.ListRuns()
			if err != nil {
				return err
			}
			printRunSummaries(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func runsShowCmd() *cobra.Command {
	var workspace string
	var path string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved run, optionally narrowed by a JSONPath expression",
		Example: "  aoc2021 runs show 20211201T050000Z_test\n" +
			"  aoc2021 runs show 20211201T050000Z_test --path '$.results[?(@.day == 13)].parts[1].answer'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			doc, err := ws.store.LoadRun(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if strings.TrimSpace(path) == "" {
				_, err = out.Write(doc)
				return err
			}

			v, err := query.Select(doc, path)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&path, "path", "", "JSONPath expression, e.g. $.results[0].parts[0].answer")
	return cmd
}

func printRunSummaries(w io.Writer, runs []domain.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "(no runs saved)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Input", "Days", "Failures", "Started"})
	for _, r := range runs {
		t.AppendRow(table.Row{r.ID, string(r.Kind), formatDays(r.Days), r.Failures, r.StartedAt.Format(time.RFC3339)})
	}
	t.Render()
}

// formatDays collapses consecutive days into ranges: 1-3,7.
func formatDays(days []int) string {
	var parts []string
	for i := 0; i < len(days); {
		j := i
		for j+1 < len(days) && days[j+1] == days[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, strconv.Itoa(days[i]))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", days[i], days[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}
