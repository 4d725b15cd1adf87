// Package day20 solves "Trench Map".
package day20

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   20,
		Title: "Trench Map",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

// image is a finite lit/dark window over an infinite plane whose cells
// outside the window all share the background value.
type image struct {
	px         *aoc.Grid[bool]
	background bool
}

func pixel(b byte) (bool, error) {
	switch b {
	case '#':
		return true, nil
	case '.':
		return false, nil
	}
	return false, aoc.Invalidf("bad pixel %q", b)
}

func parse(input []byte) ([512]bool, image, error) {
	var algo [512]bool
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return algo, image{}, aoc.Invalidf("want algorithm and image separated by a blank line")
	}
	a := strings.Join(blocks[0], "")
	if len(a) != len(algo) {
		return algo, image{}, aoc.Invalidf("algorithm has %d entries, want %d", len(a), len(algo))
	}
	for i := 0; i < len(a); i++ {
		v, err := pixel(a[i])
		if err != nil {
			return algo, image{}, err
		}
		algo[i] = v
	}
	g, err := aoc.ParseGrid(blocks[1], pixel)
	if err != nil {
		return algo, image{}, err
	}
	return algo, image{px: g}, nil
}

func (im image) at(p aoc.Pt) bool {
	if v, ok := im.px.Get(p); ok {
		return v
	}
	return im.background
}

// enhance grows the window by one cell on every side, then flips the
// background if the algorithm maps an all-dark (or all-lit) square to lit
// (or dark).
func (im image) enhance(algo *[512]bool) image {
	out := aoc.NewGrid[bool](im.px.W+2, im.px.H+2)
	out.Each(func(p aoc.Pt, _ bool) {
		src := aoc.Pt{X: p.X - 1, Y: p.Y - 1}
		idx := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				idx <<= 1
				if im.at(aoc.Pt{X: src.X + dx, Y: src.Y + dy}) {
					idx |= 1
				}
			}
		}
		out.Set(p, algo[idx])
	})
	bg := algo[0]
	if im.background {
		bg = algo[511]
	}
	return image{px: out, background: bg}
}

func (im image) lit() int {
	return im.px.Count(func(v bool) bool { return v })
}

func run(input []byte, steps int) (int, error) {
	algo, im, err := parse(input)
	if err != nil {
		return 0, err
	}
	for i := 0; i < steps; i++ {
		im = im.enhance(&algo)
	}
	if im.background {
		return 0, fmt.Errorf("%w: infinitely many pixels are lit", domain.ErrNoSolution)
	}
	return im.lit(), nil
}

// Part1 counts lit pixels after two enhancements.
func Part1(input []byte) (int, error) { return run(input, 2) }

// Part2 counts lit pixels after fifty enhancements.
func Part2(input []byte) (int, error) { return run(input, 50) }
