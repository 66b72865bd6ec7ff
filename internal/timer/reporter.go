// Package timer records per-test execution times and turns them into a
// sorted, threshold-classified report.
package timer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gtt/internal/config"
	"gtt/internal/domain"
)

// Clock supplies the current time for start and stop readings
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the monotonic wall clock
var SystemClock Clock = ClockFunc(time.Now)

// Printer renders the selected report entries
type Printer interface {
	PrintReport(entries []domain.Entry) error
}

// Store persists a finished report
type Store interface {
	Save(report domain.Report) error
}

// Reporter is a lifecycle listener that times every test of a run
type Reporter struct {
	opts    config.Timer
	clock   Clock
	printer Printer
	stores  []Store
	log     logrus.FieldLogger

	records map[string]*domain.TestRecord
	order   []string
}

// NewReporter creates a Reporter. Stores are saved to in order before the
// report is printed.
func NewReporter(opts config.Timer, clock Clock, printer Printer, log logrus.FieldLogger, stores ...Store) *Reporter {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Reporter{
		opts:    opts,
		clock:   clock,
		printer: printer,
		stores:  stores,
		log:     log,
		records: make(map[string]*domain.TestRecord),
	}
}

// RunStarted drops the records of any previous run
func (r *Reporter) RunStarted() {
	r.records = make(map[string]*domain.TestRecord)
	r.order = nil
}

// TestStarted records the start time of a test. Starting a test twice
// restarts its timing; the test keeps its original position.
func (r *Reporter) TestStarted(id string) {
	now := r.clock.Now()
	if rec, ok := r.records[id]; ok {
		r.log.WithField("test", id).Debug("Test started again, restarting timer")
		*rec = domain.TestRecord{ID: id, Start: now}
		return
	}
	r.records[id] = &domain.TestRecord{ID: id, Start: now}
	r.order = append(r.order, id)
}

// TestOutcome latches the outcome of a running test. Failures and errors
// always win; a skip only replaces a non-failure; passes never overwrite.
func (r *Reporter) TestOutcome(id string, outcome domain.Outcome) {
	rec, ok := r.records[id]
	if !ok || rec.Finished {
		r.log.WithFields(logrus.Fields{"test": id, "outcome": outcome}).Debug("Ignoring outcome for test that is not running")
		return
	}
	switch {
	case outcome.IsFailure():
		rec.Outcome = outcome
	case outcome == domain.OutcomeSkipped && !rec.Outcome.IsFailure():
		rec.Outcome = outcome
	}
}

// TestPaused stops charging time to a test, e.g. while it waits in
// t.Parallel for the sequential tests of its package
func (r *Reporter) TestPaused(id string) {
	rec, ok := r.records[id]
	if !ok || rec.Finished || !rec.PausedAt.IsZero() {
		return
	}
	rec.PausedAt = r.clock.Now()
}

// TestResumed charges time to a paused test again
func (r *Reporter) TestResumed(id string) {
	rec, ok := r.records[id]
	if !ok || rec.Finished {
		return
	}
	r.resume(rec, r.clock.Now())
}

func (r *Reporter) resume(rec *domain.TestRecord, now time.Time) {
	if rec.PausedAt.IsZero() {
		return
	}
	if d := now.Sub(rec.PausedAt); d > 0 {
		rec.Paused += d
	}
	rec.PausedAt = time.Time{}
}

// TestStopped finalizes the elapsed time and outcome of a test. Paused
// time is not part of the elapsed time.
// A stop without a matching start is ignored.
func (r *Reporter) TestStopped(id string) {
	rec, ok := r.records[id]
	if !ok {
		r.log.WithField("test", id).Debug("Ignoring stop for test that never started")
		return
	}
	if rec.Finished {
		r.log.WithField("test", id).Debug("Ignoring repeated stop")
		return
	}

	now := r.clock.Now()
	r.resume(rec, now)
	elapsed := now.Sub(rec.Start) - rec.Paused
	if elapsed < 0 {
		elapsed = 0
	}
	rec.Elapsed = elapsed
	if rec.Outcome == domain.OutcomeUnknown {
		rec.Outcome = domain.OutcomePassed
	}
	rec.Finished = true
}

// RunFinished saves the report to every store and prints it
func (r *Reporter) RunFinished() error {
	report := r.Report()

	for _, store := range r.stores {
		if err := store.Save(report); err != nil {
			return fmt.Errorf("save timing report: %w", err)
		}
	}

	if r.printer == nil {
		return nil
	}
	return r.printer.PrintReport(Select(report, r.opts))
}

// Records returns the finished records in insertion order
func (r *Reporter) Records() []domain.TestRecord {
	records := make([]domain.TestRecord, 0, len(r.order))
	for _, id := range r.order {
		rec := r.records[id]
		if !rec.Finished {
			continue
		}
		records = append(records, *rec)
	}
	return records
}

// Report builds the sorted report of all finished tests
func (r *Reporter) Report() domain.Report {
	for _, id := range r.order {
		if !r.records[id].Finished {
			r.log.WithField("test", id).Debug("Test never stopped, leaving it out of the report")
		}
	}
	return BuildReport(r.Records(), r.opts)
}
