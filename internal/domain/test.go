package domain

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the terminal status of a single test
type Outcome string

const (
	OutcomeUnknown Outcome = ""
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeError   Outcome = "error"
	OutcomeSkipped Outcome = "skipped"
)

// Outcomes lists every known outcome in display order
var Outcomes = []Outcome{OutcomePassed, OutcomeFailed, OutcomeError, OutcomeSkipped}

// IsFailure reports whether the outcome counts as a failed test
func (o Outcome) IsFailure() bool {
	return o == OutcomeFailed || o == OutcomeError
}

// Valid reports whether o is one of the known outcomes
func (o Outcome) Valid() bool {
	for _, known := range Outcomes {
		if o == known {
			return true
		}
	}
	return false
}

// TestRecord holds the timing of one test within a run
type TestRecord struct {
	ID       string        // Test identifier, unique within a run
	Start    time.Time     // Clock reading at test start
	Elapsed  time.Duration // Set once on stop, never negative
	Outcome  Outcome       // Latched outcome; passed when nothing else was signaled
	Finished bool          // Whether the stop callback has been seen
	Paused   time.Duration // Time spent paused, excluded from Elapsed
	PausedAt time.Time     // Start of the current pause, zero when running
}

// Seconds returns the elapsed time in float seconds
func (r *TestRecord) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// ParseOutcome parses an outcome name as accepted on the command line.
// Short forms like "pass" and "fail" are accepted too.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed", "pass", "ok":
		return OutcomePassed, nil
	case "failed", "fail", "failure":
		return OutcomeFailed, nil
	case "error", "errors", "errored":
		return OutcomeError, nil
	case "skipped", "skip":
		return OutcomeSkipped, nil
	}
	return OutcomeUnknown, fmt.Errorf("unknown test outcome %q (expected passed, failed, error or skipped)", s)
}
