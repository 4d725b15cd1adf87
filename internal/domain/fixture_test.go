package domain

import (
	"errors"
	"testing"
)

func TestFixtureRefStem(t *testing.T) {
	cases := []struct {
		ref  FixtureRef
		want string
	}{
		{FixtureRef{Day: 1, Kind: FixtureTest}, "01_test"},
		{FixtureRef{Day: 12, Kind: FixtureTest, Variant: 1}, "12_test"},
		{FixtureRef{Day: 12, Kind: FixtureTest, Variant: 3}, "12_test3"},
		{FixtureRef{Day: 25, Kind: FixtureInput}, "25_input"},
	}
	for _, c := range cases {
		if got := c.ref.Stem(); got != c.want {
			t.Errorf("Stem(%+v) = %q, want %q", c.ref, got, c.want)
		}
		if got := c.ref.FileName(); got != c.want+".txt" {
			t.Errorf("FileName(%+v) = %q", c.ref, got)
		}
	}
}

func TestParseFixtureStem(t *testing.T) {
	cases := []struct {
		in   string
		want FixtureRef
	}{
		{"01_test", FixtureRef{Day: 1, Kind: FixtureTest}},
		{"01_test.txt", FixtureRef{Day: 1, Kind: FixtureTest}},
		{"16_test7.txt", FixtureRef{Day: 16, Kind: FixtureTest, Variant: 7}},
		{"09_input.txt", FixtureRef{Day: 9, Kind: FixtureInput}},
	}
	for _, c := range cases {
		got, err := ParseFixtureStem(c.in)
		if err != nil {
			t.Fatalf("ParseFixtureStem(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseFixtureStem(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseFixtureStem_Invalid(t *testing.T) {
	for _, in := range []string{"answers.yaml", "1_test.txt", "26_test.txt", "01_sample.txt", "01_test1.txt", "01_testx.txt"} {
		_, err := ParseFixtureStem(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseFixtureStem(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestParseFixtureKind(t *testing.T) {
	if k, err := ParseFixtureKind(" Input "); err != nil || k != FixtureInput {
		t.Fatalf("expected input, got %q %v", k, err)
	}
	if _, err := ParseFixtureKind("sample"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPuzzleParts(t *testing.T) {
	solve := func([]byte) (string, error) { return "", nil }

	p := Puzzle{Day: 25, Title: "Sea Cucumber", Part1: solve}
	if parts := p.Parts(); len(parts) != 1 || parts[0].Number != 1 {
		t.Fatalf("expected only part 1, got %+v", parts)
	}

	p.Part2 = solve
	if parts := p.Parts(); len(parts) != 2 || parts[1].Number != 2 {
		t.Fatalf("expected two parts, got %+v", parts)
	}
	if p.String() != "Day 25: Sea Cucumber" {
		t.Fatalf("unexpected String() %q", p.String())
	}
}

func TestExpectedAnswersFor(t *testing.T) {
	e := ExpectedAnswers{Part1: "7", Part2: "5"}
	if e.For(1) != "7" || e.For(2) != "5" || e.For(3) != "" {
		t.Fatalf("unexpected For results")
	}
}
