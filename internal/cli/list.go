package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc2021/internal/puzzles"
	"github.com/aalvaropc/aoc2021/internal/usecase"
)

func listCmd() *cobra.Command {
	var workspace string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List solved days with their fixtures and recorded answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			rows, err := usecase.NewListPuzzles(puzzles.Catalog{}, ws.fixtures, ws.answers).Execute()
			if err != nil {
				return err
			}
			return printPuzzles(cmd.OutOrStdout(), rows, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	return c
}

func printPuzzles(w io.Writer, rows []usecase.PuzzleRow, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table", "":
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Day", "Title", "Parts", "Fixtures", "Answers"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.Day, r.Title, r.Parts, joinOrDash(r.Fixtures), joinOrDash(r.Answers)})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected table|json)", format)
	}
}

func joinOrDash(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	return strings.Join(ss, ", ")
}
