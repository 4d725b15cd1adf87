// Package day09 solves "Smoke Basin".
package day09

import (
	"slices"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   9,
		Title: "Smoke Basin",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

func lowPoints(g *aoc.Grid[int]) []aoc.Pt {
	var out []aoc.Pt
	g.Each(func(p aoc.Pt, v int) {
		for _, q := range g.Neighbours(p, aoc.Compass4) {
			if g.At(q) <= v {
				return
			}
		}
		out = append(out, p)
	})
	return out
}

// Part1 sums the risk level (height+1) of every low point.
func Part1(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	risk := 0
	for _, p := range lowPoints(g) {
		risk += g.At(p) + 1
	}
	return risk, nil
}

// basin flood-fills from a low point up to the height-9 walls.
func basin(g *aoc.Grid[int], low aoc.Pt) int {
	seen := map[aoc.Pt]bool{low: true}
	stack := []aoc.Pt{low}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, q := range g.Neighbours(p, aoc.Compass4) {
			if !seen[q] && g.At(q) != 9 {
				seen[q] = true
				stack = append(stack, q)
			}
		}
	}
	return len(seen)
}

// Part2 multiplies the sizes of the three largest basins.
func Part2(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	var sizes []int
	for _, p := range lowPoints(g) {
		sizes = append(sizes, basin(g, p))
	}
	if len(sizes) < 3 {
		return 0, domain.ErrNoSolution
	}
	slices.Sort(sizes)
	n := len(sizes)
	return sizes[n-1] * sizes[n-2] * sizes[n-3], nil
}
