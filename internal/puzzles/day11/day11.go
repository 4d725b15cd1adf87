// Package day11 solves "Dumbo Octopus".
package day11

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   11,
		Title: "Dumbo Octopus",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

// maxSteps bounds Part2 on inputs that never synchronise.
const maxSteps = 100_000

// step advances every octopus once and returns how many flashed.
func step(g *aoc.Grid[int]) int {
	var ready []aoc.Pt
	g.Each(func(p aoc.Pt, v int) {
		g.Set(p, v+1)
		if v+1 > 9 {
			ready = append(ready, p)
		}
	})

	flashed := map[aoc.Pt]bool{}
	for len(ready) > 0 {
		p := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, q := range g.Neighbours(p, aoc.Compass8) {
			v := g.At(q) + 1
			g.Set(q, v)
			if v > 9 && !flashed[q] {
				ready = append(ready, q)
			}
		}
	}
	for p := range flashed {
		g.Set(p, 0)
	}
	return len(flashed)
}

// Part1 counts flashes over the first 100 steps.
func Part1(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := 0; i < 100; i++ {
		total += step(g)
	}
	return total, nil
}

// Part2 returns the first step on which every octopus flashes.
func Part2(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	for i := 1; i <= maxSteps; i++ {
		if step(g) == len(g.Cells) {
			return i, nil
		}
	}
	return 0, domain.ErrNoSolution
}
