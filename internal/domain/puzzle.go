package domain

import "fmt"

// FirstDay and LastDay bound the days of an Advent of Code event.
const (
	FirstDay = 1
	LastDay  = 25
)

// PartFunc solves one part of a puzzle from the raw fixture bytes.
type PartFunc func(input []byte) (string, error)

// Puzzle is one day's solver.
type Puzzle struct {
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc // nil on day 25
}

// Part pairs a part number with its solver.
type Part struct {
	Number int
	Solve  PartFunc
}

// Parts returns the puzzle's non-nil parts in order.
func (p Puzzle) Parts() []Part {
	var out []Part
	if p.Part1 != nil {
		out = append(out, Part{Number: 1, Solve: p.Part1})
	}
	if p.Part2 != nil {
		out = append(out, Part{Number: 2, Solve: p.Part2})
	}
	return out
}

func (p Puzzle) String() string {
	return fmt.Sprintf("Day %02d: %s", p.Day, p.Title)
}

// ValidDay reports whether d is a day of the event.
func ValidDay(d int) bool {
	return d >= FirstDay && d <= LastDay
}
