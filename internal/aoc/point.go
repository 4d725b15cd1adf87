package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a 2D point. X grows to the right (column), Y grows downwards (row).
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt3 is a 3D point.
type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt = Pt2[int]
type Pt3Int = Pt3[int]

func absDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }

// MDist returns the manhattan distance between p and q.
func (p Pt2[T]) MDist(q Pt2[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

func (p Pt2[T]) String() string { return fmt.Sprintf("(%v,%v)", p.X, p.Y) }

func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// MDist returns the manhattan distance between p and q.
func (p Pt3[T]) MDist(q Pt3[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y) + absDiff(p.Z, q.Z)
}

func (p Pt3[T]) String() string { return fmt.Sprintf("(%v,%v,%v)", p.X, p.Y, p.Z) }

// NeighbourPattern selects which adjacent cells count as neighbours.
type NeighbourPattern int

const (
	// Compass4 is N W E S.
	Compass4 NeighbourPattern = iota
	// Compass8 is NW N NE W E SW S SE.
	Compass8
)

var (
	offsets4 = []Pt{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	offsets8 = []Pt{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// Offsets returns the unit offsets for the pattern in reading order.
func (n NeighbourPattern) Offsets() []Pt {
	if n == Compass8 {
		return offsets8
	}
	return offsets4
}

// Neighbours4 returns the four orthogonal neighbours of p (N W E S).
func (p Pt2[T]) Neighbours4() []Pt2[T] {
	return []Pt2[T]{{p.X, p.Y - 1}, {p.X - 1, p.Y}, {p.X + 1, p.Y}, {p.X, p.Y + 1}}
}

// Neighbours8 returns all eight surrounding points of p in reading order.
func (p Pt2[T]) Neighbours8() []Pt2[T] {
	out := make([]Pt2[T], 0, 8)
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				out = append(out, Pt2[T]{p.X + dx, p.Y + dy})
			}
		}
	}
	return out
}
