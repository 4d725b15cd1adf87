// Package day10 solves "Syntax Scoring".
package day10

import (
	"fmt"
	"slices"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   10,
		Title: "Syntax Scoring",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

var (
	opener     = map[byte]byte{')': '(', ']': '[', '}': '{', '>': '<'}
	errorScore = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	closeScore = map[byte]int{'(': 1, '[': 2, '{': 3, '<': 4}
)

// check returns the first illegal closer (0 if none) and the stack of
// still-open chunks.
func check(line string) (byte, []byte, error) {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '(', '[', '{', '<':
			stack = append(stack, c)
		case ')', ']', '}', '>':
			if len(stack) == 0 || stack[len(stack)-1] != opener[c] {
				return c, nil, nil
			}
			stack = stack[:len(stack)-1]
		default:
			return 0, nil, aoc.Invalidf("unexpected %q", c)
		}
	}
	return 0, stack, nil
}

// Part1 sums the syntax error score of corrupted lines.
func Part1(input []byte) (int, error) {
	score := 0
	for i, l := range aoc.NonEmptyLines(input) {
		bad, _, err := check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		score += errorScore[bad]
	}
	return score, nil
}

// Part2 returns the middle completion score of the incomplete lines.
func Part2(input []byte) (int, error) {
	var scores []int
	for i, l := range aoc.NonEmptyLines(input) {
		bad, stack, err := check(l)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if bad != 0 || len(stack) == 0 {
			continue
		}
		s := 0
		for j := len(stack) - 1; j >= 0; j-- {
			s = s*5 + closeScore[stack[j]]
		}
		scores = append(scores, s)
	}
	if len(scores) == 0 {
		return 0, domain.ErrNoSolution
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}
