// Package events translates the go test -json (test2json) event stream into
// lifecycle callbacks.
package events

import (
	"strings"
	"time"
)

// Actions emitted by test2json
const (
	ActionStart  = "start"
	ActionRun    = "run"
	ActionPause  = "pause"
	ActionCont   = "cont"
	ActionPass   = "pass"
	ActionBench  = "bench"
	ActionFail   = "fail"
	ActionOutput = "output"
	ActionSkip   = "skip"

	ActionBuildOutput = "build-output"
	ActionBuildFail   = "build-fail"
)

// Event is one line of go test -json output
type Event struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package,omitempty"`
	Test    string    `json:"Test,omitempty"`
	Elapsed float64   `json:"Elapsed,omitempty"` // Seconds, as measured by go test
	Output  string    `json:"Output,omitempty"`

	ImportPath string `json:"ImportPath,omitempty"` // Set on build events
}

// TestID returns the identifier the event's test is reported under
func (e Event) TestID() string {
	if e.Package == "" {
		return e.Test
	}
	return e.Package + "." + e.Test
}

// IsPanic reports whether an output line is the start of a panic
func (e Event) IsPanic() bool {
	return strings.HasPrefix(strings.TrimSpace(e.Output), "panic: ")
}

// Summary counts what a stream reported
type Summary struct {
	Passed         int
	Failed         int
	Errored        int
	Skipped        int
	FailedPackages []string
}

// Total returns the number of finished tests
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Errored + s.Skipped
}

// OK reports whether nothing failed
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0 && len(s.FailedPackages) == 0
}
