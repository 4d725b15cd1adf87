package aoc

import (
	"fmt"
	"strings"
)

// Grid is a dense W×H matrix indexed by Pt{X: col, Y: row}.
type Grid[T any] struct {
	W, H  int
	Cells []T

	// Toroidal grids wrap around their edges when looking up neighbours.
	Toroidal bool
}

// NewGrid allocates a zeroed grid.
func NewGrid[T any](w, h int) *Grid[T] {
	return &Grid[T]{W: w, H: h, Cells: make([]T, w*h)}
}

// ParseGrid builds a grid from equal-length lines, mapping each byte.
func ParseGrid[T any](lines []string, cell func(b byte) (T, error)) (*Grid[T], error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, Invalidf("empty grid")
	}
	w := len(lines[0])
	g := NewGrid[T](w, len(lines))
	for y, l := range lines {
		if len(l) != w {
			return nil, Invalidf("row %d has %d columns, want %d", y, len(l), w)
		}
		for x := 0; x < w; x++ {
			v, err := cell(l[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.Cells[y*w+x] = v
		}
	}
	return g, nil
}

// ParseDigitGrid parses a matrix of single decimal digits.
func ParseDigitGrid(input []byte) (*Grid[int], error) {
	return ParseGrid(NonEmptyLines(input), func(b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, Invalidf("bad digit %q", b)
		}
		return int(b - '0'), nil
	})
}

func (g *Grid[T]) InBounds(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

func (g *Grid[T]) index(p Pt) int { return p.Y*g.W + p.X }

// At returns the cell at p. p must be in bounds.
func (g *Grid[T]) At(p Pt) T { return g.Cells[g.index(p)] }

// Set stores v at p. p must be in bounds.
func (g *Grid[T]) Set(p Pt, v T) { g.Cells[g.index(p)] = v }

// Get is At with a bounds check.
func (g *Grid[T]) Get(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.At(p), true
}

// Wrap maps p onto the grid modulo its size.
func (g *Grid[T]) Wrap(p Pt) Pt {
	x, y := p.X%g.W, p.Y%g.H
	if x < 0 {
		x += g.W
	}
	if y < 0 {
		y += g.H
	}
	return Pt{x, y}
}

// Neighbours returns the in-bound (or wrapped, for toroidal grids) neighbours of p.
func (g *Grid[T]) Neighbours(p Pt, pattern NeighbourPattern) []Pt {
	offs := pattern.Offsets()
	out := make([]Pt, 0, len(offs))
	for _, o := range offs {
		q := p.Add(o)
		if g.Toroidal {
			out = append(out, g.Wrap(q))
			continue
		}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Pt, v T)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fn(Pt{x, y}, g.Cells[y*g.W+x])
		}
	}
}

// Count counts cells matching pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.Cells {
		if pred(v) {
			n++
		}
	}
	return n
}

func (g *Grid[T]) Clone() *Grid[T] {
	c := *g
	c.Cells = append([]T(nil), g.Cells...)
	return &c
}

// Pad returns a new grid with a border of width n filled with fill.
func (g *Grid[T]) Pad(n int, fill T) *Grid[T] {
	out := NewGrid[T](g.W+2*n, g.H+2*n)
	for i := range out.Cells {
		out.Cells[i] = fill
	}
	g.Each(func(p Pt, v T) {
		out.Set(Pt{p.X + n, p.Y + n}, v)
	})
	return out
}

// Format renders the grid with one string per cell.
func (g *Grid[T]) Format(cell func(T) string) string {
	var b strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			b.WriteString(cell(g.Cells[y*g.W+x]))
		}
	}
	return b.String()
}

func (g *Grid[T]) String() string {
	return g.Format(func(v T) string { return fmt.Sprint(v) })
}

// Dijkstra returns the lowest total cost of moving from start to goal using
// Compass4 moves, where entering a cell costs cost(cell). The start cell's
// own cost is not counted.
func (g *Grid[T]) Dijkstra(start, goal Pt, cost func(T) int) (int, bool) {
	dist := make([]int, len(g.Cells))
	for i := range dist {
		dist[i] = -1
	}
	pq := NewPriorityQueue[Pt]()
	dist[g.index(start)] = 0
	pq.Push(start, 0)

	for pq.Len() > 0 {
		p, d := pq.Pop()
		if p == goal {
			return d, true
		}
		if d > dist[g.index(p)] {
			continue
		}
		for _, q := range g.Neighbours(p, Compass4) {
			nd := d + cost(g.At(q))
			qi := g.index(q)
			if dist[qi] == -1 || nd < dist[qi] {
				dist[qi] = nd
				pq.Push(q, nd)
			}
		}
	}
	return 0, false
}
