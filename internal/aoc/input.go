package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

// ErrInvalidInput is returned (wrapped) for any malformed puzzle input.
var ErrInvalidInput = domain.ErrInvalidInput

// Invalidf builds an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Lines splits input into lines, dropping the trailing newline and any '\r'.
func Lines(input []byte) []string {
	s := strings.ReplaceAll(string(input), "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// NonEmptyLines is Lines without blank lines.
func NonEmptyLines(input []byte) []string {
	var out []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Blocks splits input into groups of lines separated by blank lines.
func Blocks(input []byte) [][]string {
	var out [][]string
	var cur []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Atoi parses a signed decimal, wrapping failures in ErrInvalidInput.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Invalidf("not a number %q", s)
	}
	return n, nil
}

// Ints parses every integer in s separated by commas and/or whitespace.
func Ints(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// LineInts parses one integer per non-blank line.
func LineInts(input []byte) ([]int, error) {
	lines := NonEmptyLines(input)
	out := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := Atoi(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Digits converts a string of decimal digits.
func Digits(s string) ([]int, error) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, Invalidf("not a digit %q in %q", c, s)
		}
		out[i] = int(c - '0')
	}
	return out, nil
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
