// Package day17 solves "Trick Shot".
package day17

import (
	"regexp"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   17,
		Title: "Trick Shot",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

var targetRe = regexp.MustCompile(`^target area: x=(-?\d+)\.\.(-?\d+), y=(-?\d+)\.\.(-?\d+)\s*$`)

type target struct{ x1, x2, y1, y2 int }

func parse(input []byte) (target, error) {
	m := targetRe.FindSubmatch(input)
	if m == nil {
		return target{}, aoc.Invalidf("bad target area %q", input)
	}
	var v [4]int
	for i := range v {
		n, err := aoc.Atoi(string(m[i+1]))
		if err != nil {
			return target{}, err
		}
		v[i] = n
	}
	t := target{min(v[0], v[1]), max(v[0], v[1]), min(v[2], v[3]), max(v[2], v[3])}
	if t.x1 < 0 || t.y2 >= 0 {
		return target{}, aoc.Invalidf("target must be right of and below the launcher")
	}
	return t, nil
}

// fire simulates a launch and reports the apex and whether the probe is
// ever inside the target after a step.
func (t target) fire(vx, vy int) (apex int, hit bool) {
	var x, y int
	for x <= t.x2 && y >= t.y1 {
		x += vx
		y += vy
		vx -= aoc.Sign(vx)
		vy--
		apex = max(apex, y)
		if x >= t.x1 && x <= t.x2 && y >= t.y1 && y <= t.y2 {
			return apex, true
		}
	}
	return apex, false
}

// hits scans every velocity that can reach the target: vx beyond x2
// overshoots on step one, vy below y1 undershoots, and a probe launched up
// with vy returns to y=0 at speed -vy-1, so vy > -y1-1 overshoots too.
func (t target) hits() (best, count int) {
	for vx := 0; vx <= t.x2; vx++ {
		for vy := t.y1; vy <= -t.y1; vy++ {
			if apex, ok := t.fire(vx, vy); ok {
				best = max(best, apex)
				count++
			}
		}
	}
	return best, count
}

// Part1 returns the highest y reachable on a trajectory that hits.
func Part1(input []byte) (int, error) {
	t, err := parse(input)
	if err != nil {
		return 0, err
	}
	best, n := t.hits()
	if n == 0 {
		return 0, domain.ErrNoSolution
	}
	return best, nil
}

// Part2 counts distinct initial velocities that hit.
func Part2(input []byte) (int, error) {
	t, err := parse(input)
	if err != nil {
		return 0, err
	}
	_, n := t.hits()
	return n, nil
}
