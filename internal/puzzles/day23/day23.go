// Package day23 solves "Amphipod".
package day23

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   23,
		Title: "Amphipod",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int(Part2),
	})
}

const (
	hallLen = 11
	rooms   = 4
	empty   = '.'
)

var energy = [rooms]int{1, 10, 100, 1000}

// unfolded are the two rows revealed when the diagram is unfolded.
var unfolded = [2]string{"DCBA", "DBAC"}

// door is the hallway cell above room r.
func door(r int) int { return 2 + 2*r }

func isDoor(h int) bool { return h >= 2 && h <= 8 && h%2 == 0 }

// burrow is a hallway followed by each room listed top to bottom. As a
// string it is directly usable as a map key.
type burrow struct {
	depth int
}

func (b burrow) slot(s string, r, i int) byte { return s[hallLen+r*b.depth+i] }

func (b burrow) set(s string, pos int, c byte) string {
	buf := []byte(s)
	buf[pos] = c
	return string(buf)
}

func (b burrow) goal() string {
	buf := make([]byte, hallLen+rooms*b.depth)
	for i := 0; i < hallLen; i++ {
		buf[i] = empty
	}
	for r := 0; r < rooms; r++ {
		for i := 0; i < b.depth; i++ {
			buf[hallLen+r*b.depth+i] = byte('A' + r)
		}
	}
	return string(buf)
}

// settled reports whether room r holds only its own kind from slot i down.
func (b burrow) settled(s string, r, i int) bool {
	for ; i < b.depth; i++ {
		if b.slot(s, r, i) != byte('A'+r) {
			return false
		}
	}
	return true
}

// clear reports whether the hallway between from and to, excluding from, is empty.
func clear(s string, from, to int) bool {
	step := aoc.Sign(to - from)
	for h := from + step; ; h += step {
		if s[h] != empty {
			return false
		}
		if h == to {
			return true
		}
	}
}

type move struct {
	next string
	cost int
}

func (b burrow) moves(s string) []move {
	var out []move

	// Hallway to destination room.
	for h := 0; h < hallLen; h++ {
		c := s[h]
		if c == empty {
			continue
		}
		r := int(c - 'A')
		target := -1
		for i := b.depth - 1; i >= 0; i-- {
			v := b.slot(s, r, i)
			if v == empty {
				target = i
				break
			}
			if v != c {
				break
			}
		}
		if target < 0 || !clear(s, h, door(r)) {
			continue
		}
		next := b.set(b.set(s, h, empty), hallLen+r*b.depth+target, c)
		steps := aoc.Abs(h-door(r)) + target + 1
		out = append(out, move{next, steps * energy[r]})
	}

	// Top of a room into the hallway.
	for r := 0; r < rooms; r++ {
		i := 0
		for i < b.depth && b.slot(s, r, i) == empty {
			i++
		}
		if i == b.depth || b.settled(s, r, i) {
			continue
		}
		c := b.slot(s, r, i)
		from := b.set(s, hallLen+r*b.depth+i, empty)
		for h := 0; h < hallLen; h++ {
			if isDoor(h) || s[h] != empty || !clear(s, door(r), h) {
				continue
			}
			steps := i + 1 + aoc.Abs(h-door(r))
			out = append(out, move{b.set(from, h, c), steps * energy[c-'A']})
		}
	}
	return out
}

// organize returns the least energy needed to sort every amphipod.
func (b burrow) organize(start string) (int, error) {
	goal := b.goal()
	dist := map[string]int{start: 0}
	pq := aoc.NewPriorityQueue[string]()
	pq.Push(start, 0)
	for pq.Len() > 0 {
		s, d := pq.Pop()
		if s == goal {
			return d, nil
		}
		if d > dist[s] {
			continue
		}
		for _, m := range b.moves(s) {
			nd := d + m.cost
			if old, ok := dist[m.next]; !ok || nd < old {
				dist[m.next] = nd
				pq.Push(m.next, nd)
			}
		}
	}
	return 0, domain.ErrNoSolution
}

// parse reads the diagram, optionally inserting the unfolded rows, and
// returns the burrow shape and its starting state.
func parse(input []byte, unfold bool) (burrow, string, error) {
	var rows []string
	for _, l := range aoc.NonEmptyLines(input) {
		var row []byte
		for i := 0; i < len(l); i++ {
			if l[i] >= 'A' && l[i] <= 'D' {
				row = append(row, l[i])
			}
		}
		switch len(row) {
		case 0:
			continue
		case rooms:
			rows = append(rows, string(row))
		default:
			return burrow{}, "", aoc.Invalidf("room row %q", l)
		}
	}
	if len(rows) < 2 {
		return burrow{}, "", aoc.Invalidf("want at least two room rows, got %d", len(rows))
	}
	if unfold {
		rows = append([]string{rows[0], unfolded[0], unfolded[1]}, rows[1:]...)
	}

	b := burrow{depth: len(rows)}
	buf := make([]byte, hallLen+rooms*b.depth)
	for i := 0; i < hallLen; i++ {
		buf[i] = empty
	}
	counts := map[byte]int{}
	for i, row := range rows {
		for r := 0; r < rooms; r++ {
			buf[hallLen+r*b.depth+i] = row[r]
			counts[row[r]]++
		}
	}
	for c := byte('A'); c <= 'D'; c++ {
		if counts[c] != b.depth {
			return burrow{}, "", aoc.Invalidf("%d amphipods of kind %c, want %d", counts[c], c, b.depth)
		}
	}
	return b, string(buf), nil
}

func solve(input []byte, unfold bool) (int, error) {
	b, start, err := parse(input, unfold)
	if err != nil {
		return 0, err
	}
	return b.organize(start)
}

// Part1 organises the folded burrow (rooms two deep).
func Part1(input []byte) (int, error) { return solve(input, false) }

// Part2 organises the unfolded burrow (rooms four deep).
func Part2(input []byte) (int, error) { return solve(input, true) }
