// Package day14 solves "Extended Polymerization".
package day14

import (
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   14,
		Title: "Extended Polymerization",
		Part1: puzzles.Int64(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

type pair [2]byte

type manual struct {
	template string
	rules    map[pair]byte
}

func parse(input []byte) (manual, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return manual{}, aoc.Invalidf("want template and rules separated by a blank line")
	}
	m := manual{template: strings.TrimSpace(blocks[0][0]), rules: map[pair]byte{}}
	if len(m.template) < 2 {
		return manual{}, aoc.Invalidf("template %q too short", m.template)
	}
	for _, l := range blocks[1] {
		from, to, ok := strings.Cut(l, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return manual{}, aoc.Invalidf("bad rule %q", l)
		}
		m.rules[pair{from[0], from[1]}] = to[0]
	}
	return m, nil
}

// grow tracks pair counts, so the polymer itself is never built. The result
// is the most common element count minus the least common one.
func (m manual) grow(steps int) int64 {
	pairs := map[pair]int64{}
	for i := 0; i+1 < len(m.template); i++ {
		pairs[pair{m.template[i], m.template[i+1]}]++
	}
	for s := 0; s < steps; s++ {
		next := make(map[pair]int64, len(pairs))
		for p, n := range pairs {
			ins, ok := m.rules[p]
			if !ok {
				next[p] += n
				continue
			}
			next[pair{p[0], ins}] += n
			next[pair{ins, p[1]}] += n
		}
		pairs = next
	}

	// Every element except the first is the second half of exactly one pair.
	counts := map[byte]int64{m.template[0]: 1}
	for p, n := range pairs {
		counts[p[1]] += n
	}
	var lo, hi int64 = -1, 0
	for _, n := range counts {
		hi = max(hi, n)
		if lo < 0 || n < lo {
			lo = n
		}
	}
	return hi - lo
}

func run(input []byte, steps int) (int64, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	return m.grow(steps), nil
}

func Part1(input []byte) (int64, error) { return run(input, 10) }
func Part2(input []byte) (int64, error) { return run(input, 40) }
