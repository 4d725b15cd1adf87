package domain

import "time"

// PartStatus is the outcome of solving one part.
type PartStatus string

const (
	StatusPass      PartStatus = "pass"
	StatusFail      PartStatus = "fail"
	StatusUnchecked PartStatus = "unchecked"
	StatusError     PartStatus = "error"
	StatusSkipped   PartStatus = "skipped"
)

// RunError represents a structured error produced while solving.
type RunError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// NewRunError converts any error into a RunError.
func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{Kind: KindOf(err), Message: err.Error()}
}

// PartResult is the output of solving a single part.
type PartResult struct {
	Part       int        `json:"part"`
	Answer     string     `json:"answer"`
	Expected   string     `json:"expected,omitempty"`
	Status     PartStatus `json:"status"`
	Message    string     `json:"message,omitempty"`
	DurationMS int64      `json:"duration_ms"`
	Error      *RunError  `json:"error,omitempty"`
}

// DayResult groups the parts solved for a day.
type DayResult struct {
	Day     int          `json:"day"`
	Title   string       `json:"title"`
	Fixture string       `json:"fixture"`
	Parts   []PartResult `json:"parts"`
	Error   *RunError    `json:"error,omitempty"`
}

// Failed reports whether the day could not be solved or any part failed.
func (d DayResult) Failed() bool {
	if d.Error != nil {
		return true
	}
	for _, p := range d.Parts {
		if p.Status == StatusFail || p.Status == StatusError {
			return true
		}
	}
	return false
}

// RunReport is the result of running a set of days against one fixture kind.
type RunReport struct {
	ID        string      `json:"id,omitempty"`
	Kind      FixtureKind `json:"kind"`
	StartedAt time.Time   `json:"started_at"`
	EndedAt   time.Time   `json:"ended_at"`
	Results   []DayResult `json:"results"`
}

// Failures counts failed days.
func (r RunReport) Failures() int {
	n := 0
	for _, d := range r.Results {
		if d.Failed() {
			n++
		}
	}
	return n
}

// Tally counts part statuses across the report.
func (r RunReport) Tally() map[PartStatus]int {
	out := map[PartStatus]int{}
	for _, d := range r.Results {
		for _, p := range d.Parts {
			out[p.Status]++
		}
	}
	return out
}

// RunSummary is one line of the run index.
type RunSummary struct {
	ID        string      `json:"id"`
	File      string      `json:"file"`
	Kind      FixtureKind `json:"kind"`
	Days      []int       `json:"days"`
	Failures  int         `json:"failures"`
	StartedAt time.Time   `json:"started_at"`
}
