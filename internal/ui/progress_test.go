package ui

import (
	"io"
	"testing"

	"gtt/internal/domain"
)

func TestProgressTracker_Counts(t *testing.T) {
	tracker := NewProgressTracker(NewProgressBar(io.Discard))
	tracker.RunStarted()

	finish := func(id string, outcomes ...domain.Outcome) {
		tracker.TestStarted(id)
		for _, o := range outcomes {
			tracker.TestOutcome(id, o)
		}
		tracker.TestStopped(id)
	}

	finish("a", domain.OutcomePassed)
	finish("b", domain.OutcomeFailed)
	finish("c", domain.OutcomeError)
	finish("d", domain.OutcomeSkipped)
	finish("e")
	finish("f", domain.OutcomeFailed, domain.OutcomePassed)

	// Stops for unknown tests are not counted
	tracker.TestStopped("ghost")

	passed, failed, skipped := tracker.Counts()
	if passed != 2 || failed != 3 || skipped != 1 {
		t.Errorf("expected 2/3/1, got %d/%d/%d", passed, failed, skipped)
	}

	if err := tracker.RunFinished(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tracker.RunStarted()
	passed, failed, skipped = tracker.Counts()
	if passed+failed+skipped != 0 {
		t.Errorf("expected counters to reset, got %d/%d/%d", passed, failed, skipped)
	}
}
