// Package day19 solves "Beacon Scanner".
package day19

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   19,
		Title: "Beacon Scanner",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

// minOverlap is how many beacons two scanners must share to be aligned.
const minOverlap = 12

type scanner struct {
	beacons []vec
	dists   map[int]int // squared pairwise distance -> multiplicity
}

func newScanner(beacons []vec) *scanner {
	s := &scanner{beacons: beacons, dists: map[int]int{}}
	for i, a := range beacons {
		for _, b := range beacons[i+1:] {
			d := a.Sub(b)
			s.dists[d.X*d.X+d.Y*d.Y+d.Z*d.Z]++
		}
	}
	return s
}

// mayOverlap is a rotation-independent check that s and o share enough
// pairwise distances to possibly have minOverlap beacons in common.
func (s *scanner) mayOverlap(o *scanner) bool {
	shared := 0
	for d, n := range s.dists {
		shared += min(n, o.dists[d])
	}
	return shared >= minOverlap*(minOverlap-1)/2
}

func parse(input []byte) ([]*scanner, error) {
	var out []*scanner
	for _, blk := range aoc.Blocks(input) {
		if !strings.HasPrefix(blk[0], "--- scanner") {
			return nil, aoc.Invalidf("bad scanner header %q", blk[0])
		}
		beacons := make([]vec, 0, len(blk)-1)
		for _, l := range blk[1:] {
			v, err := aoc.Ints(l)
			if err != nil {
				return nil, err
			}
			if len(v) != 3 {
				return nil, aoc.Invalidf("bad beacon %q", l)
			}
			beacons = append(beacons, vec{X: v[0], Y: v[1], Z: v[2]})
		}
		out = append(out, newScanner(beacons))
	}
	if len(out) == 0 {
		return nil, aoc.Invalidf("no scanners")
	}
	return out, nil
}

// align finds the rotation and offset that place o's beacons onto known,
// which are already in the reference frame.
func align(known []vec, o *scanner) (rotation, vec, bool) {
	for _, r := range rotations {
		votes := map[vec]int{}
		for _, b := range o.beacons {
			rb := r.apply(b)
			for _, k := range known {
				off := k.Sub(rb)
				votes[off]++
				if votes[off] >= minOverlap {
					return r, off, true
				}
			}
		}
	}
	return rotation{}, vec{}, false
}

type mapping struct {
	beacons  map[vec]struct{}
	scanners []vec
}

// locate places every scanner relative to scanner 0.
func locate(scanners []*scanner) (mapping, error) {
	placed := make([][]vec, len(scanners))
	pos := make([]vec, len(scanners))
	placed[0] = scanners[0].beacons

	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for j, s := range scanners {
			if placed[j] != nil || !scanners[i].mayOverlap(s) {
				continue
			}
			r, off, ok := align(placed[i], s)
			if !ok {
				continue
			}
			abs := make([]vec, len(s.beacons))
			for k, b := range s.beacons {
				abs[k] = r.apply(b).Add(off)
			}
			placed[j] = abs
			pos[j] = off
			queue = append(queue, j)
		}
	}

	m := mapping{beacons: map[vec]struct{}{}, scanners: pos}
	for j, bs := range placed {
		if bs == nil {
			return mapping{}, fmt.Errorf("%w: scanner %d overlaps no other scanner", domain.ErrNoSolution, j)
		}
		for _, b := range bs {
			m.beacons[b] = struct{}{}
		}
	}
	return m, nil
}

func solve(input []byte) (mapping, error) {
	scanners, err := parse(input)
	if err != nil {
		return mapping{}, err
	}
	return locate(scanners)
}

// Part1 counts distinct beacons.
func Part1(input []byte) (int, error) {
	m, err := solve(input)
	if err != nil {
		return 0, err
	}
	return len(m.beacons), nil
}

// Part2 returns the largest Manhattan distance between two scanners.
func Part2(input []byte) (int, error) {
	m, err := solve(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, a := range m.scanners {
		for _, b := range m.scanners[i+1:] {
			best = max(best, a.MDist(b))
		}
	}
	return best, nil
}
