// Package day03 solves "Binary Diagnostic".
package day03

import (
	"strconv"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   3,
		Title: "Binary Diagnostic",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

func parse(input []byte) ([]string, error) {
	lines := aoc.NonEmptyLines(input)
	if len(lines) == 0 {
		return nil, aoc.Invalidf("no report lines")
	}
	w := len(lines[0])
	for i, l := range lines {
		if len(l) != w {
			return nil, aoc.Invalidf("line %d: width %d, want %d", i+1, len(l), w)
		}
		for j := 0; j < w; j++ {
			if l[j] != '0' && l[j] != '1' {
				return nil, aoc.Invalidf("line %d: not binary %q", i+1, l)
			}
		}
	}
	return lines, nil
}

// ones counts the '1' bits at column i.
func ones(lines []string, i int) int {
	n := 0
	for _, l := range lines {
		if l[i] == '1' {
			n++
		}
	}
	return n
}

// Part1 multiplies the gamma and epsilon rates.
func Part1(input []byte) (int, error) {
	lines, err := parse(input)
	if err != nil {
		return 0, err
	}
	w := len(lines[0])
	gamma := 0
	for i := 0; i < w; i++ {
		gamma <<= 1
		if 2*ones(lines, i) >= len(lines) {
			gamma |= 1
		}
	}
	epsilon := ^gamma & (1<<w - 1)
	return gamma * epsilon, nil
}

// Part2 multiplies the oxygen generator and CO2 scrubber ratings.
func Part2(input []byte) (int, error) {
	lines, err := parse(input)
	if err != nil {
		return 0, err
	}
	o2, err := rating(lines, true)
	if err != nil {
		return 0, err
	}
	co2, err := rating(lines, false)
	if err != nil {
		return 0, err
	}
	return o2 * co2, nil
}

// rating narrows lines column by column, keeping the most common bit (ties
// keep '1') or the least common bit (ties keep '0').
func rating(lines []string, mostCommon bool) (int, error) {
	cur := append([]string(nil), lines...)
	for i := 0; i < len(cur[0]) && len(cur) > 1; i++ {
		majority := 2*ones(cur, i) >= len(cur)
		keep := byte('0')
		if majority == mostCommon {
			keep = '1'
		}
		next := cur[:0]
		for _, l := range cur {
			if l[i] == keep {
				next = append(next, l)
			}
		}
		cur = next
	}
	if len(cur) != 1 {
		return 0, aoc.Invalidf("rating did not narrow to one line")
	}
	v, err := strconv.ParseInt(cur[0], 2, 64)
	if err != nil {
		return 0, aoc.Invalidf("%v", err)
	}
	return int(v), nil
}
