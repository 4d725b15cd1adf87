package answerbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

func TestLoad_ParsesAnswers(t *testing.T) {
	p := filepath.Join(t.TempDir(), "answers.yaml")
	content := []byte(`
answers:
  01_test:
    part1: 7
    part2: 5
  06_test:
    part2: 26984457539
  13_test:
    part2: |
      #####
      #...#
  12_test2:
    part1: "19"
`)
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	b, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if b.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", b.Len())
	}

	e, ok := b.Expected(domain.FixtureRef{Day: 1, Kind: domain.FixtureTest})
	if !ok || e.Part1 != "7" || e.Part2 != "5" {
		t.Fatalf("unexpected day 1 answers %+v", e)
	}

	e, _ = b.Expected(domain.FixtureRef{Day: 6, Kind: domain.FixtureTest})
	if e.Part1 != "" || e.Part2 != "26984457539" {
		t.Fatalf("unexpected day 6 answers %+v", e)
	}

	e, _ = b.Expected(domain.FixtureRef{Day: 13, Kind: domain.FixtureTest})
	if e.Part2 != "#####\n#...#" {
		t.Fatalf("unexpected day 13 answer %q", e.Part2)
	}

	if _, ok := b.Expected(domain.FixtureRef{Day: 12, Kind: domain.FixtureTest, Variant: 2}); !ok {
		t.Fatalf("expected variant entry")
	}
	if _, ok := b.Expected(domain.FixtureRef{Day: 2, Kind: domain.FixtureTest}); ok {
		t.Fatalf("expected no entry for day 2")
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected empty book")
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("x.yaml", []byte("answers: [")); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for bad yaml, got: %v", err)
	}
	if _, err := Parse("x.yaml", []byte("answers:\n  day1:\n    part1: 3\n")); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig for bad key, got: %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	b := New()
	b.Set(domain.FixtureRef{Day: 25, Kind: domain.FixtureTest}, domain.ExpectedAnswers{Part1: "58"})
	b.Set(domain.FixtureRef{Day: 13, Kind: domain.FixtureTest}, domain.ExpectedAnswers{Part1: "17", Part2: "##\n#."})

	out, err := b.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	back, err := Parse("mem", out)
	if err != nil {
		t.Fatalf("Parse error: %v\n%s", err, out)
	}
	e, _ := back.Expected(domain.FixtureRef{Day: 13, Kind: domain.FixtureTest})
	if e.Part2 != "##\n#." {
		t.Fatalf("multi-line answer lost: %q\n%s", e.Part2, out)
	}
	e, _ = back.Expected(domain.FixtureRef{Day: 25, Kind: domain.FixtureTest})
	if e.Part1 != "58" || e.Part2 != "" {
		t.Fatalf("unexpected day 25 %+v", e)
	}
}
