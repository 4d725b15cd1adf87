// Package verify compares solver answers with the recorded ones.
package verify

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

type Result struct {
	Status  domain.PartStatus
	Message string
}

// Answer checks got against expected. An empty expected answer is unchecked.
func Answer(expected, got string) Result {
	want := Normalize(expected)
	have := Normalize(got)

	if want == "" {
		return Result{
			Status:  domain.StatusUnchecked,
			Message: "no recorded answer",
		}
	}
	if have == want {
		return Result{
			Status:  domain.StatusPass,
			Message: fmt.Sprintf("answer %s", summarize(have)),
		}
	}
	return Result{
		Status:  domain.StatusFail,
		Message: fmt.Sprintf("expected %s, got %s", summarize(want), summarize(have)),
	}
}

// Normalize drops trailing whitespace on every line and surrounding blank
// lines, so rendered answers compare independently of editor settings.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// summarize quotes single-line answers and reports multi-line ones by shape.
func summarize(s string) string {
	if !strings.Contains(s, "\n") {
		return fmt.Sprintf("%q", s)
	}
	lines := strings.Split(s, "\n")
	return fmt.Sprintf("<%d lines, %d wide>", len(lines), len(lines[0]))
}
