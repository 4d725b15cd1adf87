// Package day21 solves "Dirac Dice".
package day21

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   21,
		Title: "Dirac Dice",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

func parse(input []byte) ([2]int, error) {
	var pos [2]int
	lines := aoc.NonEmptyLines(input)
	if len(lines) != 2 {
		return pos, aoc.Invalidf("want two players, got %d lines", len(lines))
	}
	for i, l := range lines {
		_, v, ok := strings.Cut(l, "starting position:")
		if !ok {
			return pos, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("bad player %q", l))
		}
		n, err := aoc.Atoi(v)
		if err != nil {
			return pos, err
		}
		if n < 1 || n > 10 {
			return pos, aoc.Invalidf("position %d off the board", n)
		}
		pos[i] = n
	}
	return pos, nil
}

func move(pos, steps int) int { return (pos+steps-1)%10 + 1 }

// Part1 plays with the deterministic 100-sided die to 1000 points and
// multiplies the losing score by the number of rolls.
func Part1(input []byte) (int, error) {
	pos, err := parse(input)
	if err != nil {
		return 0, err
	}
	var score [2]int
	die, rolls := 0, 0
	roll := func() int {
		die = die%100 + 1
		rolls++
		return die
	}
	for p := 0; ; p ^= 1 {
		pos[p] = move(pos[p], roll()+roll()+roll())
		score[p] += pos[p]
		if score[p] >= 1000 {
			return score[p^1] * rolls, nil
		}
	}
}

// splits[s] is how many universes three Dirac rolls sum to s in.
var splits = func() [10]int64 {
	var out [10]int64
	for a := 1; a <= 3; a++ {
		for b := 1; b <= 3; b++ {
			for c := 1; c <= 3; c++ {
				out[a+b+c]++
			}
		}
	}
	return out
}()

type state struct {
	pos, opp, score, oppScore int
}

type quantum map[state][2]int64

// wins returns universes won by the player to move and by the opponent.
func (memo quantum) wins(s state) [2]int64 {
	if w, ok := memo[s]; ok {
		return w
	}
	var w [2]int64
	for sum := 3; sum <= 9; sum++ {
		p := move(s.pos, sum)
		if s.score+p >= 21 {
			w[0] += splits[sum]
			continue
		}
		sub := memo.wins(state{pos: s.opp, opp: p, score: s.oppScore, oppScore: s.score + p})
		w[0] += splits[sum] * sub[1]
		w[1] += splits[sum] * sub[0]
	}
	memo[s] = w
	return w
}

// Part2 returns the universe count of the player who wins in more of them.
func Part2(input []byte) (int64, error) {
	pos, err := parse(input)
	if err != nil {
		return 0, err
	}
	w := quantum{}.wins(state{pos: pos[0], opp: pos[1]})
	return max(w[0], w[1]), nil
}
