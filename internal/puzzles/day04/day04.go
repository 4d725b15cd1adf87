// Package day04 solves "Giant Squid".
package day04

import (
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   4,
		Title: "Giant Squid",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

const size = 5

type board struct {
	cells  [size][size]int
	marked [size][size]bool
	won    bool
}

func (b *board) mark(n int) bool {
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.cells[r][c] == n {
				b.marked[r][c] = true
				return b.complete(r, c)
			}
		}
	}
	return false
}

func (b *board) complete(r, c int) bool {
	row, col := true, true
	for i := 0; i < size; i++ {
		row = row && b.marked[r][i]
		col = col && b.marked[i][c]
	}
	return row || col
}

func (b *board) unmarked() int {
	sum := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if !b.marked[r][c] {
				sum += b.cells[r][c]
			}
		}
	}
	return sum
}

func parse(input []byte) ([]int, []*board, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) < 2 {
		return nil, nil, aoc.Invalidf("need draws and at least one board")
	}
	draws, err := aoc.Ints(strings.Join(blocks[0], ","))
	if err != nil {
		return nil, nil, err
	}
	boards := make([]*board, 0, len(blocks)-1)
	for i, blk := range blocks[1:] {
		if len(blk) != size {
			return nil, nil, aoc.Invalidf("board %d has %d rows", i+1, len(blk))
		}
		b := &board{}
		for r, l := range blk {
			row, err := aoc.Ints(l)
			if err != nil {
				return nil, nil, err
			}
			if len(row) != size {
				return nil, nil, aoc.Invalidf("board %d row %d has %d numbers", i+1, r+1, len(row))
			}
			copy(b.cells[r][:], row)
		}
		boards = append(boards, b)
	}
	return draws, boards, nil
}

// scores plays every draw and returns board scores in winning order.
func scores(input []byte) ([]int, error) {
	draws, boards, err := parse(input)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, n := range draws {
		for _, b := range boards {
			if b.won {
				continue
			}
			if b.mark(n) {
				b.won = true
				out = append(out, b.unmarked()*n)
			}
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoSolution
	}
	return out, nil
}

// Part1 scores the first board to win.
func Part1(input []byte) (int, error) {
	s, err := scores(input)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// Part2 scores the last board to win.
func Part2(input []byte) (int, error) {
	s, err := scores(input)
	if err != nil {
		return 0, err
	}
	return s[len(s)-1], nil
}
