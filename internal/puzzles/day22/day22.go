// Package day22 solves "Reactor Reboot".
package day22

import (
	"fmt"
	"regexp"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   22,
		Title: "Reactor Reboot",
		Part1: puzzles.Int64(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

var stepRe = regexp.MustCompile(`^(on|off) x=(-?\d+)\.\.(-?\d+),y=(-?\d+)\.\.(-?\d+),z=(-?\d+)\.\.(-?\d+)$`)

// cuboid bounds are inclusive.
type cuboid struct {
	lo, hi aoc.Pt3Int
}

func (c cuboid) volume() int64 {
	return int64(c.hi.X-c.lo.X+1) * int64(c.hi.Y-c.lo.Y+1) * int64(c.hi.Z-c.lo.Z+1)
}

func (c cuboid) intersect(o cuboid) (cuboid, bool) {
	r := cuboid{
		lo: aoc.Pt3Int{X: max(c.lo.X, o.lo.X), Y: max(c.lo.Y, o.lo.Y), Z: max(c.lo.Z, o.lo.Z)},
		hi: aoc.Pt3Int{X: min(c.hi.X, o.hi.X), Y: min(c.hi.Y, o.hi.Y), Z: min(c.hi.Z, o.hi.Z)},
	}
	if r.lo.X > r.hi.X || r.lo.Y > r.hi.Y || r.lo.Z > r.hi.Z {
		return cuboid{}, false
	}
	return r, true
}

type step struct {
	on  bool
	box cuboid
}

func parse(input []byte) ([]step, error) {
	lines := aoc.NonEmptyLines(input)
	out := make([]step, 0, len(lines))
	for i, l := range lines {
		m := stepRe.FindStringSubmatch(l)
		if m == nil {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("bad step %q", l))
		}
		var v [6]int
		for j := range v {
			n, err := aoc.Atoi(m[j+2])
			if err != nil {
				return nil, err
			}
			v[j] = n
		}
		if v[0] > v[1] || v[2] > v[3] || v[4] > v[5] {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("empty range"))
		}
		out = append(out, step{
			on: m[1] == "on",
			box: cuboid{
				lo: aoc.Pt3Int{X: v[0], Y: v[2], Z: v[4]},
				hi: aoc.Pt3Int{X: v[1], Y: v[3], Z: v[5]},
			},
		})
	}
	return out, nil
}

type signed struct {
	box  cuboid
	sign int64
}

// litVolume applies steps by inclusion-exclusion: each new box cancels its
// overlap with every box already counted, and "on" boxes are added whole.
func litVolume(steps []step) int64 {
	var boxes []signed
	for _, s := range steps {
		n := len(boxes)
		for _, b := range boxes[:n] {
			if x, ok := b.box.intersect(s.box); ok {
				boxes = append(boxes, signed{x, -b.sign})
			}
		}
		if s.on {
			boxes = append(boxes, signed{s.box, 1})
		}
	}
	var total int64
	for _, b := range boxes {
		total += b.sign * b.box.volume()
	}
	return total
}

var initRegion = cuboid{
	lo: aoc.Pt3Int{X: -50, Y: -50, Z: -50},
	hi: aoc.Pt3Int{X: 50, Y: 50, Z: 50},
}

// Part1 counts lit cubes inside the -50..50 initialization region.
func Part1(input []byte) (int64, error) {
	steps, err := parse(input)
	if err != nil {
		return 0, err
	}
	var clipped []step
	for _, s := range steps {
		if b, ok := s.box.intersect(initRegion); ok {
			clipped = append(clipped, step{on: s.on, box: b})
		}
	}
	return litVolume(clipped), nil
}

// Part2 counts every lit cube.
func Part2(input []byte) (int64, error) {
	steps, err := parse(input)
	if err != nil {
		return 0, err
	}
	return litVolume(steps), nil
}
