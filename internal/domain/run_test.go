package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewRunError_Nil(t *testing.T) {
	if NewRunError(nil) != nil {
		t.Fatalf("expected nil RunError for nil error")
	}
}

func TestNewRunError_ClassifiesInput(t *testing.T) {
	re := NewRunError(fmt.Errorf("line 2: %w", ErrInvalidInput))
	if re.Kind != KindInvalidInput {
		t.Fatalf("expected invalid_input, got=%s", re.Kind)
	}
	if re.Message != "line 2: invalid puzzle input" {
		t.Fatalf("unexpected message %q", re.Message)
	}
}

func TestDayResultFailed(t *testing.T) {
	cases := []struct {
		name string
		day  DayResult
		want bool
	}{
		{"empty", DayResult{}, false},
		{"pass", DayResult{Parts: []PartResult{{Status: StatusPass}, {Status: StatusUnchecked}}}, false},
		{"fail", DayResult{Parts: []PartResult{{Status: StatusPass}, {Status: StatusFail}}}, true},
		{"part error", DayResult{Parts: []PartResult{{Status: StatusError}}}, true},
		{"day error", DayResult{Error: NewRunError(errors.New("x"))}, true},
		{"skipped", DayResult{Parts: []PartResult{{Status: StatusSkipped}}}, false},
	}
	for _, c := range cases {
		if got := c.day.Failed(); got != c.want {
			t.Errorf("%s: Failed() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRunReportFailuresAndTally(t *testing.T) {
	r := RunReport{Results: []DayResult{
		{Parts: []PartResult{{Status: StatusPass}, {Status: StatusPass}}},
		{Parts: []PartResult{{Status: StatusFail}, {Status: StatusUnchecked}}},
		{Error: &RunError{Kind: KindNotFound}},
	}}

	if n := r.Failures(); n != 2 {
		t.Fatalf("expected 2 failures, got %d", n)
	}
	tally := r.Tally()
	if tally[StatusPass] != 2 || tally[StatusFail] != 1 || tally[StatusUnchecked] != 1 {
		t.Fatalf("unexpected tally %v", tally)
	}
}
