// Package day07 solves "The Treachery of Whales".
package day07

import (
	"slices"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   7,
		Title: "The Treachery of Whales",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

func parse(input []byte) ([]int, error) {
	pos, err := aoc.Ints(string(input))
	if err != nil {
		return nil, err
	}
	if len(pos) == 0 {
		return nil, aoc.Invalidf("no crabs")
	}
	slices.Sort(pos)
	return pos, nil
}

// Part1 aligns on the median, which minimises the sum of distances.
func Part1(input []byte) (int, error) {
	pos, err := parse(input)
	if err != nil {
		return 0, err
	}
	target := pos[len(pos)/2]
	fuel := 0
	for _, p := range pos {
		fuel += aoc.Abs(p - target)
	}
	return fuel, nil
}

// Part2 charges 1+2+...+n for a move of n and scans every target.
func Part2(input []byte) (int, error) {
	pos, err := parse(input)
	if err != nil {
		return 0, err
	}
	best := -1
	for target := pos[0]; target <= pos[len(pos)-1]; target++ {
		fuel := 0
		for _, p := range pos {
			d := aoc.Abs(p - target)
			fuel += d * (d + 1) / 2
		}
		if best < 0 || fuel < best {
			best = fuel
		}
	}
	return best, nil
}
