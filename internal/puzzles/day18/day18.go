// Package day18 solves "Snailfish".
package day18

import (
	"fmt"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   18,
		Title: "Snailfish",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

func parse(input []byte) ([]number, error) {
	lines := aoc.NonEmptyLines(input)
	if len(lines) == 0 {
		return nil, aoc.Invalidf("no numbers")
	}
	out := make([]number, 0, len(lines))
	for i, l := range lines {
		n, err := parseNumber(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Part1 adds the whole homework list in order and returns the magnitude.
func Part1(input []byte) (int, error) {
	nums, err := parse(input)
	if err != nil {
		return 0, err
	}
	sum := nums[0]
	for _, n := range nums[1:] {
		sum = add(sum, n)
	}
	return sum.magnitude(), nil
}

// Part2 returns the largest magnitude of any sum of two different numbers.
func Part2(input []byte) (int, error) {
	nums, err := parse(input)
	if err != nil {
		return 0, err
	}
	if len(nums) < 2 {
		return 0, domain.ErrNoSolution
	}
	best := 0
	for i, a := range nums {
		for j, b := range nums {
			if i != j {
				best = max(best, add(a, b).magnitude())
			}
		}
	}
	return best, nil
}
