// Package day13 solves "Transparent Origami".
package day13

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   13,
		Title: "Transparent Origami",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Text(Part2),
	})
}

type fold struct {
	alongX bool
	at     int
}

type sheet map[aoc.Pt]struct{}

func parse(input []byte) (sheet, []fold, error) {
	blocks := aoc.Blocks(input)
	if len(blocks) != 2 {
		return nil, nil, aoc.Invalidf("want dots and folds separated by a blank line")
	}
	dots := sheet{}
	for _, l := range blocks[0] {
		v, err := aoc.Ints(l)
		if err != nil {
			return nil, nil, err
		}
		if len(v) != 2 {
			return nil, nil, aoc.Invalidf("bad dot %q", l)
		}
		dots[aoc.Pt{X: v[0], Y: v[1]}] = struct{}{}
	}
	var folds []fold
	for _, l := range blocks[1] {
		rest, ok := strings.CutPrefix(l, "fold along ")
		axis, at, ok2 := strings.Cut(rest, "=")
		if !ok || !ok2 || (axis != "x" && axis != "y") {
			return nil, nil, aoc.Invalidf("bad fold %q", l)
		}
		n, err := aoc.Atoi(at)
		if err != nil {
			return nil, nil, err
		}
		folds = append(folds, fold{alongX: axis == "x", at: n})
	}
	return dots, folds, nil
}

func (s sheet) fold(f fold) sheet {
	out := make(sheet, len(s))
	for p := range s {
		if f.alongX && p.X > f.at {
			p.X = 2*f.at - p.X
		} else if !f.alongX && p.Y > f.at {
			p.Y = 2*f.at - p.Y
		}
		out[p] = struct{}{}
	}
	return out
}

// render draws the dots as rows of '#' and '.', trimmed to the bounding box
// anchored at the origin.
func (s sheet) render() string {
	var w, h int
	for p := range s {
		w = max(w, p.X+1)
		h = max(h, p.Y+1)
	}
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if _, ok := s[aoc.Pt{X: x, Y: y}]; ok {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Part1 counts visible dots after the first fold.
func Part1(input []byte) (int, error) {
	dots, folds, err := parse(input)
	if err != nil {
		return 0, err
	}
	if len(folds) == 0 {
		return 0, fmt.Errorf("%w: no folds", domain.ErrNoSolution)
	}
	return len(dots.fold(folds[0])), nil
}

// Part2 applies every fold and renders the code.
func Part2(input []byte) (string, error) {
	dots, folds, err := parse(input)
	if err != nil {
		return "", err
	}
	for _, f := range folds {
		dots = dots.fold(f)
	}
	return dots.render(), nil
}
