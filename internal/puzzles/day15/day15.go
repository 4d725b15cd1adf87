// Package day15 solves "Chiton".
package day15

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   15,
		Title: "Chiton",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

func risk(v int) int { return v }

func lowestRisk(g *aoc.Grid[int]) (int, error) {
	d, ok := g.Dijkstra(aoc.Pt{}, aoc.Pt{X: g.W - 1, Y: g.H - 1}, risk)
	if !ok {
		return 0, domain.ErrNoSolution
	}
	return d, nil
}

// tile repeats g n×n times, each tile right or down adding one to the risk
// and wrapping 9 back to 1.
func tile(g *aoc.Grid[int], n int) *aoc.Grid[int] {
	out := aoc.NewGrid[int](g.W*n, g.H*n)
	out.Each(func(p aoc.Pt, _ int) {
		base := g.At(aoc.Pt{X: p.X % g.W, Y: p.Y % g.H})
		v := base + p.X/g.W + p.Y/g.H
		out.Set(p, (v-1)%9+1)
	})
	return out
}

// Part1 finds the lowest total risk from top-left to bottom-right.
func Part1(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	return lowestRisk(g)
}

// Part2 does the same on the map tiled five times in each direction.
func Part2(input []byte) (int, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return 0, err
	}
	return lowestRisk(tile(g, 5))
}
