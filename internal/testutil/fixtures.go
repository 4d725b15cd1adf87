// Package testutil locates the repository's data directory from package
// tests and checks solvers against the recorded answers.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/answerbook"
	"github.com/aalvaropc/aoc2021/internal/infra/fixtures"
	"github.com/aalvaropc/aoc2021/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
	"github.com/aalvaropc/aoc2021/internal/usecase/verify"
)

// Workspace is the fixture loader and answer book of the enclosing workspace.
type Workspace struct {
	Root    string
	Loader  *fixtures.Loader
	Answers *answerbook.Book
}

// OpenWorkspace finds aoc.yaml above the test's working directory.
func OpenWorkspace(t testing.TB) Workspace {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		t.Fatalf("workspace not found from %s: %v", wd, err)
	}
	cfg, err := workspacefinder.LoadConfigOrDefault(root)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	loader := fixtures.NewLoader(root, fixtures.WithDataDir(cfg.Paths.DataDir))
	book, err := answerbook.Load(filepath.Join(loader.Dir(), cfg.Paths.AnswersFile))
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	return Workspace{Root: root, Loader: loader, Answers: book}
}

// Example returns the worked example for day (variant 0 or 1 is NN_test.txt).
func Example(t testing.TB, day, variant int) []byte {
	t.Helper()
	ws := OpenWorkspace(t)
	b, err := ws.Loader.Load(domain.FixtureRef{Day: day, Kind: domain.FixtureTest, Variant: variant})
	if err != nil {
		t.Fatalf("load example: %v", err)
	}
	return b
}

// CheckFixtures runs the registered solver for day against every fixture of
// that day that has recorded answers. Personal inputs are not committed, so
// a day without any input fixture only exercises its examples.
func CheckFixtures(t *testing.T, day int) {
	t.Helper()

	p, ok := puzzles.Lookup(day)
	if !ok {
		t.Fatalf("day %d is not registered", day)
	}

	ws := OpenWorkspace(t)
	refs, err := ws.Loader.List()
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}

	checked := 0
	for _, kind := range []domain.FixtureKind{domain.FixtureTest, domain.FixtureInput} {
		for _, ref := range fixtures.Variants(refs, day, kind) {
			want, ok := ws.Answers.Expected(ref)
			if !ok {
				continue
			}
			input, err := ws.Loader.Load(ref)
			if err != nil {
				t.Fatalf("%s: %v", ref, err)
			}
			for _, part := range p.Parts() {
				expected := want.For(part.Number)
				if expected == "" {
					continue
				}
				t.Run(ref.Stem()+"/part"+strconv.Itoa(part.Number), func(t *testing.T) {
					got, err := part.Solve(input)
					if err != nil {
						t.Fatalf("solve: %v", err)
					}
					if r := verify.Answer(expected, got); r.Status != domain.StatusPass {
						t.Fatalf("%s (got %q)", r.Message, got)
					}
				})
				checked++
			}
		}
	}
	if checked == 0 {
		t.Skipf("no recorded answers for day %d", day)
	}
}
