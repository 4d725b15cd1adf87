package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/fixtures"
	"github.com/aalvaropc/aoc2021/internal/infra/logger"
	"github.com/aalvaropc/aoc2021/internal/ports"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
	"github.com/aalvaropc/aoc2021/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var input string
	var part int
	var variant int
	var noSave bool
	var parallel int
	var format string
	var file string

	c := &cobra.Command{
		Use:   "run [DAY|FROM-TO]...",
		Short: "Solve days against their fixtures and check the recorded answers",
		Example: "  aoc2021 run\n" +
			"  aoc2021 run 1 5-7 --input input\n" +
			"  aoc2021 run 12 --variant 3 --part 2\n" +
			"  aoc2021 run 22 --file ~/Downloads/input.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}

			var (
				cfg     domain.Config
				loader  ports.FixtureLoader
				answers ports.AnswerBook
				store   ports.ArtifactStore
				kind    domain.FixtureKind
			)
			if file != "" {
				// Ad-hoc inputs have no recorded answers and are not saved.
				if len(days) != 1 {
					return fmt.Errorf("%w: --file solves exactly one day", domain.ErrInvalidInput)
				}
				if cfg, err = fileRunConfig(workspace); err != nil {
					return err
				}
				loader = fixtures.NewFile(file)
				kind = domain.FixtureInput
			} else {
				ws, err := loadWorkspace(workspace)
				if err != nil {
					return err
				}
				cfg, loader, answers = ws.cfg, ws.fixtures, ws.answers
				if !noSave {
					store = ws.store
				}
				kind = cfg.Run.DefaultInput
			}

			if input != "" {
				if kind, err = domain.ParseFixtureKind(input); err != nil {
					return err
				}
			}

			var parts []int
			if part != 0 {
				parts = []int{part}
			}

			if parallel <= 0 {
				parallel = cfg.Run.Parallelism
			}

			uc := usecase.NewRunPuzzles(puzzles.Catalog{}, loader, answers, store,
				usecase.WithParallelism(parallel),
				usecase.WithTimeout(cfg.Run.Timeout),
				usecase.WithLogger(logger.L()),
			)

			run, runID, err := uc.Execute(cmd.Context(), usecase.RunRequest{
				Days:    days,
				Kind:    kind,
				Parts:   parts,
				Variant: variant,
			})
			if file != "" {
				for i := range run.Results {
					run.Results[i].Fixture = file
				}
			}
			if err != nil {
				// Print whatever was solved before the run stopped.
				if len(run.Results) > 0 {
					_ = printRun(cmd.OutOrStdout(), run, runID, format)
				}
				return err
			}

			if err := printRun(cmd.OutOrStdout(), run, runID, format); err != nil {
				return err
			}

			if fails := run.Failures(); fails > 0 {
				return fmt.Errorf("run failed (%d failed day(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&input, "input", "i", "", "Fixture kind: test|input (defaults to run.default_input)")
	c.Flags().IntVarP(&part, "part", "p", 0, "Only solve this part (1 or 2)")
	c.Flags().IntVar(&variant, "variant", 0, "Fixture variant, e.g. 2 for NN_test2.txt")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().IntVar(&parallel, "parallel", 0, "Days solved concurrently (defaults to run.parallelism)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|table|json")
	c.Flags().StringVarP(&file, "file", "f", "", "Solve this input file instead of a workspace fixture (one day, answers unchecked)")
	return c
}

func printRun(w io.Writer, run domain.RunReport, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "table":
		printTableRun(w, run)
		return nil
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|table|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunReport, runID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Input:      %s\n", run.Kind)
	fmt.Fprintf(w, "Started:    %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:   %s\n", total.Round(time.Millisecond))
	if runID != "" {
		fmt.Fprintf(w, "Run ID:     %s\n", runID)
	}
	fmt.Fprintln(w)

	for _, d := range run.Results {
		status := "OK"
		if d.Failed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "- [%s] Day %02d: %s (%s)\n", status, d.Day, d.Title, d.Fixture)

		if d.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", d.Error.Message, d.Error.Kind)
			continue
		}

		for _, p := range d.Parts {
			fmt.Fprintf(w, "  %s part %d: %s  %dms\n", statusMark(p.Status), p.Part, inlineAnswer(p.Answer), p.DurationMS)
			if p.Status == domain.StatusFail || p.Status == domain.StatusError || p.Error != nil {
				fmt.Fprintf(w, "      %s\n", p.Message)
			}
		}
	}

	fmt.Fprintln(w)
	tally := run.Tally()
	fmt.Fprintf(w, "%d pass / %d fail / %d error / %d unchecked / %d skipped\n",
		tally[domain.StatusPass], tally[domain.StatusFail], tally[domain.StatusError],
		tally[domain.StatusUnchecked], tally[domain.StatusSkipped])
}

func printTableRun(w io.Writer, run domain.RunReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Day", "Title", "Fixture", "Part", "Answer", "Expected", "Status", "ms"})

	for _, d := range run.Results {
		if d.Error != nil {
			t.AppendRow(table.Row{d.Day, d.Title, d.Fixture, "-", "", "", string(d.Error.Kind), 0})
			continue
		}
		for _, p := range d.Parts {
			t.AppendRow(table.Row{d.Day, d.Title, d.Fixture, p.Part, p.Answer, p.Expected, string(p.Status), p.DurationMS})
		}
	}
	t.Render()
}

func statusMark(s domain.PartStatus) string {
	switch s {
	case domain.StatusPass:
		return "✓"
	case domain.StatusFail, domain.StatusError:
		return "✗"
	case domain.StatusSkipped:
		return "-"
	default:
		return "?"
	}
}

// inlineAnswer indents multi-line answers (rendered letters) below the label.
func inlineAnswer(a string) string {
	if !strings.Contains(a, "\n") {
		return a
	}
	return "\n        " + strings.ReplaceAll(a, "\n", "\n        ")
}
