// Package puzzles is the registry of daily solvers. Each day package
// registers itself from init, so importing internal/puzzles/all populates it.
package puzzles

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

var (
	mu    sync.RWMutex
	byDay = map[int]domain.Puzzle{}
)

// Register adds a puzzle. It panics on an invalid or duplicate day.
func Register(p domain.Puzzle) {
	if !domain.ValidDay(p.Day) {
		panic(fmt.Sprintf("puzzles: invalid day %d", p.Day))
	}
	if p.Part1 == nil {
		panic(fmt.Sprintf("puzzles: day %d has no part 1", p.Day))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := byDay[p.Day]; dup {
		panic(fmt.Sprintf("puzzles: day %d registered twice", p.Day))
	}
	byDay[p.Day] = p
}

// Lookup returns the puzzle for day.
func Lookup(day int) (domain.Puzzle, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := byDay[day]
	return p, ok
}

// All returns every registered puzzle sorted by day.
func All() []domain.Puzzle {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]domain.Puzzle, 0, len(byDay))
	for _, p := range byDay {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// Catalog adapts the package registry to ports.PuzzleCatalog.
type Catalog struct{}

func (Catalog) Lookup(day int) (domain.Puzzle, bool) { return Lookup(day) }
func (Catalog) All() []domain.Puzzle                 { return All() }

// Int adapts a part that returns an int.
func Int(f func([]byte) (int, error)) domain.PartFunc {
	return func(in []byte) (string, error) {
		n, err := f(in)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}
}

// Int64 adapts a part that returns an int64.
func Int64(f func([]byte) (int64, error)) domain.PartFunc {
	return func(in []byte) (string, error) {
		n, err := f(in)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
}

// Text adapts a part whose answer is already text.
func Text(f func([]byte) (string, error)) domain.PartFunc {
	return domain.PartFunc(f)
}
