package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"gtt/internal/domain"
)

// ProgressBar shows a live count of finished tests
type ProgressBar struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewProgressBar creates a new progress spinner. The total number of tests
// is not known ahead of time.
func NewProgressBar(out io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, out: out}
}

func describe(passed, failed, skipped int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("skipped: %d]", skipped)
}

// Update updates the progress bar with the outcome counts
func (p *ProgressBar) Update(passed, failed, skipped int) {
	_ = p.bar.Set(passed + failed + skipped)
	p.bar.Describe(describe(passed, failed, skipped))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// ProgressTracker is a lifecycle listener that feeds a ProgressBar
type ProgressTracker struct {
	bar      *ProgressBar
	outcomes map[string]domain.Outcome

	passed, failed, skipped int
}

// NewProgressTracker creates a tracker for bar
func NewProgressTracker(bar *ProgressBar) *ProgressTracker {
	return &ProgressTracker{bar: bar, outcomes: make(map[string]domain.Outcome)}
}

// RunStarted resets the counters
func (t *ProgressTracker) RunStarted() {
	t.outcomes = make(map[string]domain.Outcome)
	t.passed, t.failed, t.skipped = 0, 0, 0
}

// TestStarted registers a running test
func (t *ProgressTracker) TestStarted(id string) {
	t.outcomes[id] = domain.OutcomeUnknown
}

// TestOutcome remembers the outcome until the test stops
func (t *ProgressTracker) TestOutcome(id string, outcome domain.Outcome) {
	current, ok := t.outcomes[id]
	if !ok || outcome == domain.OutcomeUnknown || current.IsFailure() {
		return
	}
	t.outcomes[id] = outcome
}

// TestStopped counts the test and refreshes the bar
func (t *ProgressTracker) TestStopped(id string) {
	outcome, ok := t.outcomes[id]
	if !ok {
		return
	}
	delete(t.outcomes, id)

	switch {
	case outcome.IsFailure():
		t.failed++
	case outcome == domain.OutcomeSkipped:
		t.skipped++
	default:
		t.passed++
	}
	t.bar.Update(t.passed, t.failed, t.skipped)
}

// RunFinished completes the bar
func (t *ProgressTracker) RunFinished() error {
	t.bar.Finish()
	return nil
}

// Counts returns the passed, failed and skipped counts so far
func (t *ProgressTracker) Counts() (passed, failed, skipped int) {
	return t.passed, t.failed, t.skipped
}
