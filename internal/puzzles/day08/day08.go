// Package day08 solves "Seven Segment Search".
package day08

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   8,
		Title: "Seven Segment Search",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

type entry struct {
	patterns [10]string
	output   [4]string
}

func parse(input []byte) ([]entry, error) {
	lines := aoc.NonEmptyLines(input)
	out := make([]entry, 0, len(lines))
	for i, l := range lines {
		left, right, ok := strings.Cut(l, "|")
		p, o := strings.Fields(left), strings.Fields(right)
		if !ok || len(p) != 10 || len(o) != 4 {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("want 10 patterns | 4 digits"))
		}
		var e entry
		copy(e.patterns[:], p)
		copy(e.output[:], o)
		out = append(out, e)
	}
	return out, nil
}

// Part1 counts output digits that are 1, 4, 7 or 8 (unique segment counts).
func Part1(input []byte) (int, error) {
	entries, err := parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		for _, d := range e.output {
			switch len(d) {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// Across the ten digits each wire lights a fixed number of times, whatever
// the wiring. Summing those counts over a digit's wires identifies the digit.
var digitByScore = map[int]int{
	42: 0, 17: 1, 34: 2, 39: 3, 30: 4, 37: 5, 41: 6, 25: 7, 49: 8, 45: 9,
}

func (e entry) decode() (int, error) {
	var freq [7]int
	for _, p := range e.patterns {
		for i := 0; i < len(p); i++ {
			c := p[i]
			if c < 'a' || c > 'g' {
				return 0, aoc.Invalidf("bad segment %q", c)
			}
			freq[c-'a']++
		}
	}
	v := 0
	for _, d := range e.output {
		score := 0
		for i := 0; i < len(d); i++ {
			c := d[i]
			if c < 'a' || c > 'g' {
				return 0, aoc.Invalidf("bad segment %q", c)
			}
			score += freq[c-'a']
		}
		digit, ok := digitByScore[score]
		if !ok {
			return 0, aoc.Invalidf("cannot decode %q", d)
		}
		v = v*10 + digit
	}
	return v, nil
}

// Part2 decodes every display and sums the four-digit outputs.
func Part2(input []byte) (int, error) {
	entries, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, e := range entries {
		v, err := e.decode()
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}
