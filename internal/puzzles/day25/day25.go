// Package day25 solves "Sea Cucumber". There is no second part.
package day25

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   25,
		Title: "Sea Cucumber",
		Part1: puzzles.Int(Part1),
	})
}

const (
	empty = '.'
	east  = '>'
	south = 'v'
)

// maxSteps bounds herds that never settle.
const maxSteps = 1_000_000

func cell(b byte) (byte, error) {
	switch b {
	case empty, east, south:
		return b, nil
	}
	return 0, aoc.Invalidf("bad cell %q", b)
}

// shift moves every cucumber of kind one step along dir if the target cell
// was empty before any of them moved, and reports how many moved.
func shift(g *aoc.Grid[byte], kind byte, dir aoc.Pt) int {
	var movers []aoc.Pt
	g.Each(func(p aoc.Pt, v byte) {
		if v == kind && g.At(g.Wrap(p.Add(dir))) == empty {
			movers = append(movers, p)
		}
	})
	for _, p := range movers {
		g.Set(p, empty)
		g.Set(g.Wrap(p.Add(dir)), kind)
	}
	return len(movers)
}

// Part1 returns the first step on which no sea cucumber moves.
func Part1(input []byte) (int, error) {
	g, err := aoc.ParseGrid(aoc.NonEmptyLines(input), cell)
	if err != nil {
		return 0, err
	}
	g.Toroidal = true
	for step := 1; step <= maxSteps; step++ {
		moved := shift(g, east, aoc.Pt{X: 1}) + shift(g, south, aoc.Pt{Y: 1})
		if moved == 0 {
			return step, nil
		}
	}
	return 0, domain.ErrNoSolution
}
