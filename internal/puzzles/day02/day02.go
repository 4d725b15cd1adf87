// Package day02 solves "Dive!".
package day02

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   2,
		Title: "Dive!",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

type command struct {
	dir string
	n   int
}

func parse(input []byte) ([]command, error) {
	lines := aoc.NonEmptyLines(input)
	out := make([]command, 0, len(lines))
	for i, l := range lines {
		dir, arg, ok := strings.Cut(strings.TrimSpace(l), " ")
		if !ok {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("bad command %q", l))
		}
		n, err := aoc.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		switch dir {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("unknown direction %q", dir))
		}
		out = append(out, command{dir: dir, n: n})
	}
	return out, nil
}

// Part1 multiplies final horizontal position by depth.
func Part1(input []byte) (int, error) {
	cmds, err := parse(input)
	if err != nil {
		return 0, err
	}
	var x, depth int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.n
		case "down":
			depth += c.n
		case "up":
			depth -= c.n
		}
	}
	return x * depth, nil
}

// Part2 is Part1 where up/down steer the aim instead.
func Part2(input []byte) (int, error) {
	cmds, err := parse(input)
	if err != nil {
		return 0, err
	}
	var x, depth, aim int
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			x += c.n
			depth += aim * c.n
		case "down":
			aim += c.n
		case "up":
			aim -= c.n
		}
	}
	return x * depth, nil
}
