// Package day06 solves "Lanternfish".
package day06

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   6,
		Title: "Lanternfish",
		Part1: puzzles.Int64(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

// school holds the number of fish per timer value.
type school [9]int64

func parse(input []byte) (school, error) {
	var s school
	timers, err := aoc.Ints(string(input))
	if err != nil {
		return s, err
	}
	for _, t := range timers {
		if t < 0 || t > 8 {
			return s, aoc.Invalidf("timer %d out of range", t)
		}
		s[t]++
	}
	return s, nil
}

// simulate advances the school by days and returns the population.
func simulate(s school, days int) int64 {
	for d := 0; d < days; d++ {
		spawning := s[0]
		copy(s[:], s[1:])
		s[6] += spawning
		s[8] = spawning
	}
	var total int64
	for _, n := range s {
		total += n
	}
	return total
}

func run(input []byte, days int) (int64, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	return simulate(s, days), nil
}

func Part1(input []byte) (int64, error) { return run(input, 80) }
func Part2(input []byte) (int64, error) { return run(input, 256) }
