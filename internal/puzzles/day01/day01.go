// Package day01 solves "Sonar Sweep".
package day01

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   1,
		Title: "Sonar Sweep",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

// Part1 counts depth measurements larger than the previous one.
func Part1(input []byte) (int, error) {
	depths, err := aoc.LineInts(input)
	if err != nil {
		return 0, err
	}
	return increases(depths, 1), nil
}

// Part2 counts increases of the three-measurement sliding sum.
func Part2(input []byte) (int, error) {
	depths, err := aoc.LineInts(input)
	if err != nil {
		return 0, err
	}
	return increases(depths, 3), nil
}

// Two windows of width w share w-1 values, so comparing their sums reduces
// to comparing the values that differ.
func increases(depths []int, w int) int {
	n := 0
	for i := w; i < len(depths); i++ {
		if depths[i] > depths[i-w] {
			n++
		}
	}
	return n
}
