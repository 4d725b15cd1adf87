// Package day05 solves "Hydrothermal Venture".
package day05

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   5,
		Title: "Hydrothermal Venture",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

type segment struct{ a, b aoc.Pt }

func parse(input []byte) ([]segment, error) {
	lines := aoc.NonEmptyLines(input)
	out := make([]segment, 0, len(lines))
	for i, l := range lines {
		from, to, ok := strings.Cut(l, "->")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("missing ->"))
		}
		a, err := point(from)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := point(to)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if a.X != b.X && a.Y != b.Y && aoc.Abs(a.X-b.X) != aoc.Abs(a.Y-b.Y) {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("segment is not at 45 degrees"))
		}
		out = append(out, segment{a, b})
	}
	return out, nil
}

func point(s string) (aoc.Pt, error) {
	v, err := aoc.Ints(s)
	if err != nil {
		return aoc.Pt{}, err
	}
	if len(v) != 2 {
		return aoc.Pt{}, aoc.Invalidf("bad point %q", s)
	}
	return aoc.Pt{X: v[0], Y: v[1]}, nil
}

func overlaps(segs []segment, diagonals bool) int {
	seen := map[aoc.Pt]int{}
	for _, s := range segs {
		if !diagonals && s.a.X != s.b.X && s.a.Y != s.b.Y {
			continue
		}
		step := aoc.Pt{X: aoc.Sign(s.b.X - s.a.X), Y: aoc.Sign(s.b.Y - s.a.Y)}
		for p := s.a; ; p = p.Add(step) {
			seen[p]++
			if p == s.b {
				break
			}
		}
	}
	n := 0
	for _, c := range seen {
		if c > 1 {
			n++
		}
	}
	return n
}

// Part1 counts points where at least two horizontal or vertical lines overlap.
func Part1(input []byte) (int, error) {
	segs, err := parse(input)
	if err != nil {
		return 0, err
	}
	return overlaps(segs, false), nil
}

// Part2 also considers diagonal lines.
func Part2(input []byte) (int, error) {
	segs, err := parse(input)
	if err != nil {
		return 0, err
	}
	return overlaps(segs, true), nil
}
