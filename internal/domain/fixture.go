package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FixtureKind distinguishes the worked example from the personal input.
type FixtureKind string

const (
	FixtureTest  FixtureKind = "test"
	FixtureInput FixtureKind = "input"
)

// ParseFixtureKind accepts "test" or "input" (case-insensitive).
func ParseFixtureKind(s string) (FixtureKind, error) {
	switch FixtureKind(strings.ToLower(strings.TrimSpace(s))) {
	case FixtureTest:
		return FixtureTest, nil
	case FixtureInput:
		return FixtureInput, nil
	default:
		return "", fmt.Errorf("%w: unknown fixture kind %q (expected test|input)", ErrInvalidConfig, s)
	}
}

// FixtureRef names one fixture file in the data directory.
//
// Variant numbers additional examples of the same kind: variant 0 and 1 map
// to NN_kind.txt, variant 2 to NN_kind2.txt, and so on.
type FixtureRef struct {
	Day     int
	Kind    FixtureKind
	Variant int
}

// Stem is the file name without extension, also used as the answer book key.
func (r FixtureRef) Stem() string {
	s := fmt.Sprintf("%02d_%s", r.Day, r.Kind)
	if r.Variant > 1 {
		s += strconv.Itoa(r.Variant)
	}
	return s
}

func (r FixtureRef) FileName() string {
	return r.Stem() + ".txt"
}

func (r FixtureRef) String() string {
	return r.Stem()
}

// ParseFixtureStem is the inverse of Stem. A ".txt" suffix is accepted.
func ParseFixtureStem(s string) (FixtureRef, error) {
	stem := strings.TrimSuffix(s, ".txt")
	dayPart, rest, ok := strings.Cut(stem, "_")
	if !ok {
		return FixtureRef{}, fmt.Errorf("%w: fixture name %q has no kind", ErrInvalidInput, s)
	}
	day, err := strconv.Atoi(dayPart)
	if err != nil || len(dayPart) != 2 || !ValidDay(day) {
		return FixtureRef{}, fmt.Errorf("%w: fixture name %q has bad day", ErrInvalidInput, s)
	}

	for _, kind := range []FixtureKind{FixtureInput, FixtureTest} {
		suffix, found := strings.CutPrefix(rest, string(kind))
		if !found {
			continue
		}
		ref := FixtureRef{Day: day, Kind: kind}
		if suffix == "" {
			return ref, nil
		}
		v, err := strconv.Atoi(suffix)
		if err != nil || v < 2 {
			return FixtureRef{}, fmt.Errorf("%w: fixture name %q has bad variant", ErrInvalidInput, s)
		}
		ref.Variant = v
		return ref, nil
	}
	return FixtureRef{}, fmt.Errorf("%w: fixture name %q has unknown kind", ErrInvalidInput, s)
}

// ExpectedAnswers holds the recorded answers for one fixture. Empty means unknown.
type ExpectedAnswers struct {
	Part1 string
	Part2 string
}

// For returns the expected answer for part n.
func (e ExpectedAnswers) For(part int) string {
	switch part {
	case 1:
		return e.Part1
	case 2:
		return e.Part2
	default:
		return ""
	}
}
