// Package day12 solves "Passage Pathing".
package day12

import (
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   12,
		Title: "Passage Pathing",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

const (
	start = "start"
	end   = "end"
)

func small(cave string) bool { return strings.ToLower(cave) == cave }

type walker struct {
	g       *aoc.Graph
	visited map[string]int
}

// paths counts routes from cave to end. spare says whether one small cave
// may still be entered a second time.
func (w *walker) paths(cave string, spare bool) int {
	if cave == end {
		return 1
	}
	n := 0
	for _, next := range w.g.Neighbours(cave) {
		if next == start {
			continue
		}
		useSpare := false
		if small(next) && w.visited[next] > 0 {
			if !spare {
				continue
			}
			useSpare = true
		}
		w.visited[next]++
		n += w.paths(next, spare && !useSpare)
		w.visited[next]--
	}
	return n
}

func count(input []byte, spare bool) (int, error) {
	g, err := aoc.ParseGraph(input)
	if err != nil {
		return 0, err
	}
	if !g.Has(start) || !g.Has(end) {
		return 0, aoc.Invalidf("graph needs both %q and %q", start, end)
	}
	w := &walker{g: g, visited: map[string]int{start: 1}}
	return w.paths(start, spare), nil
}

// Part1 counts paths visiting small caves at most once.
func Part1(input []byte) (int, error) { return count(input, false) }

// Part2 lets a single small cave be visited twice.
func Part2(input []byte) (int, error) { return count(input, true) }
