package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/all"
)

// --- parseDays ---

func TestParseDays(t *testing.T) {
	cases := []struct {
		args []string
		want []int
	}{
		{nil, nil},
		{[]string{"1"}, []int{1}},
		{[]string{"3-5", "25"}, []int{3, 4, 5, 25}},
		{[]string{" 07 "}, []int{7}},
	}
	for _, c := range cases {
		got, err := parseDays(c.args)
		if err != nil {
			t.Fatalf("parseDays(%v): %v", c.args, err)
		}
		assert.Equal(t, c.want, got, "parseDays(%v)", c.args)
	}
}

func TestParseDays_Invalid(t *testing.T) {
	for _, in := range []string{"0", "26", "x", "5-3", "1-", "-2"} {
		_, err := parseDays([]string{in})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("parseDays(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

// --- formatDays ---

func TestFormatDays(t *testing.T) {
	cases := map[string][]int{
		"":           nil,
		"4":          {4},
		"1-3,7":      {1, 2, 3, 7},
		"1,3,5-6,25": {1, 3, 5, 6, 25},
	}
	for want, in := range cases {
		if got := formatDays(in); got != want {
			t.Errorf("formatDays(%v) = %q, want %q", in, got, want)
		}
	}
}

// --- printers ---

func sampleRun() domain.RunReport {
	start := time.Date(2021, 12, 13, 5, 0, 0, 0, time.UTC)
	return domain.RunReport{
		Kind:      domain.FixtureTest,
		StartedAt: start,
		EndedAt:   start.Add(1500 * time.Millisecond),
		Results: []domain.DayResult{
			{Day: 1, Title: "Sonar Sweep", Fixture: "01_test", Parts: []domain.PartResult{
				{Part: 1, Answer: "7", Expected: "7", Status: domain.StatusPass, DurationMS: 1},
				{Part: 2, Answer: "4", Expected: "5", Status: domain.StatusFail, Message: `expected "5", got "4"`},
			}},
			{Day: 13, Title: "Transparent Origami", Fixture: "13_test", Parts: []domain.PartResult{
				{Part: 2, Answer: "##\n#.", Status: domain.StatusUnchecked},
			}},
			{Day: 20, Title: "Trench Map", Fixture: "20_input", Error: &domain.RunError{Kind: domain.KindNotFound, Message: "no fixture"}},
		},
	}
}

func TestPrintRun_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRun(&buf, sampleRun(), "run-1", "pretty"))
	out := buf.String()

	for _, want := range []string{
		"Run ID:     run-1",
		"Duration:   1.5s",
		"- [FAIL] Day 01: Sonar Sweep (01_test)",
		"✓ part 1: 7  1ms",
		`expected "5", got "4"`,
		"\n        ##\n        #.",
		"error: no fixture (not_found)",
		"1 pass / 1 fail / 0 error / 1 unchecked / 0 skipped",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrintRun_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRun(&buf, sampleRun(), "", "table"))
	out := buf.String()
	assert.Contains(t, out, "Sonar Sweep")
	assert.Contains(t, out, "not_found")
	assert.Contains(t, out, "EXPECTED")
}

func TestPrintRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRun(&buf, sampleRun(), "run-1", "json"))

	var payload struct {
		RunID string           `json:"run_id"`
		Run   domain.RunReport `json:"run"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "run-1", payload.RunID)
	assert.Len(t, payload.Run.Results, 3)
}

func TestPrintRun_UnknownFormat(t *testing.T) {
	err := printRun(&bytes.Buffer{}, domain.RunReport{}, "", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestStatusMark(t *testing.T) {
	assert.Equal(t, "✓", statusMark(domain.StatusPass))
	assert.Equal(t, "✗", statusMark(domain.StatusError))
	assert.Equal(t, "-", statusMark(domain.StatusSkipped))
	assert.Equal(t, "?", statusMark(domain.StatusUnchecked))
}

// --- commands end to end ---

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	out, err := execute(t, "init", root)
	require.NoError(t, err, out)
	require.Contains(t, out, "Workspace ready at")

	data := filepath.Join(root, "data")
	require.NoError(t, os.WriteFile(filepath.Join(data, "01_test.txt"),
		[]byte("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(data, "answers.yaml"),
		[]byte("answers:\n  \"01_test\":\n    part1: \"7\"\n    part2: \"5\"\n"), 0o644))
	return root
}

func TestCommands_RunListShow(t *testing.T) {
	root := newWorkspace(t)

	out, err := execute(t, "run", "1", "-w", root, "--no-save", "--format", "json")
	require.NoError(t, err, out)

	var payload struct {
		RunID string           `json:"run_id"`
		Run   domain.RunReport `json:"run"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Empty(t, payload.RunID)
	require.Len(t, payload.Run.Results, 1)
	for _, p := range payload.Run.Results[0].Parts {
		assert.Equal(t, domain.StatusPass, p.Status, "part %d", p.Part)
	}

	out, err = execute(t, "run", "1", "-w", root)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Run ID:")

	out, err = execute(t, "runs", "list", "-w", root)
	require.NoError(t, err, out)
	assert.Contains(t, out, "_test")

	entries, err := os.ReadDir(filepath.Join(root, "runs"))
	require.NoError(t, err)
	var id string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			id = strings.TrimSuffix(e.Name(), ".json")
		}
	}
	require.NotEmpty(t, id)

	out, err = execute(t, "runs", "show", id, "-w", root, "--path", "$.results[0].parts[0].answer")
	require.NoError(t, err, out)
	assert.Equal(t, "7\n", out)

	out, err = execute(t, "list", "-w", root, "--format", "json")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"01_test"`)
}

func TestCommands_RunFailsOnWrongAnswer(t *testing.T) {
	root := newWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "answers.yaml"),
		[]byte("answers:\n  \"01_test\":\n    part1: \"8\"\n"), 0o644))

	out, err := execute(t, "run", "1", "-w", root, "--no-save")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed day(s)")
	assert.Contains(t, out, `expected "8", got "7"`)
}

func TestCommands_RunMissingFixture(t *testing.T) {
	root := newWorkspace(t)

	out, err := execute(t, "run", "2", "-w", root, "--no-save", "--input", "input")
	require.Error(t, err)
	assert.Contains(t, out, "(not_found)")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "aoc2021 "), out)
}

func TestCommands_RunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sonar.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n"), 0o644))

	out, err := execute(t, "run", "1", "--file", path, "-w", dir, "--format", "json")
	require.NoError(t, err, out)

	var payload struct {
		RunID string           `json:"run_id"`
		Run   domain.RunReport `json:"run"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Empty(t, payload.RunID)
	assert.Equal(t, domain.FixtureInput, payload.Run.Kind)
	require.Len(t, payload.Run.Results, 1)

	day := payload.Run.Results[0]
	assert.Equal(t, path, day.Fixture)
	require.Len(t, day.Parts, 2)
	assert.Equal(t, "7", day.Parts[0].Answer)
	assert.Equal(t, "5", day.Parts[1].Answer)
	for _, p := range day.Parts {
		assert.Equal(t, domain.StatusUnchecked, p.Status, "part %d", p.Part)
	}

	_, err = os.Stat(filepath.Join(dir, "runs"))
	assert.True(t, os.IsNotExist(err), "file runs must not be saved")
}

func TestCommands_RunFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "run", "1", "2", "--file", filepath.Join(dir, "x.txt"), "-w", dir)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := execute(t, "run", "1", "--file", filepath.Join(dir, "missing.txt"), "-w", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed day(s)")
	assert.Contains(t, out, "(not_found)")
}
