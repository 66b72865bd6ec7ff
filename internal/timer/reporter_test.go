package timer

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtt/internal/config"
	"gtt/internal/domain"
	"gtt/internal/lifecycle"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type capturePrinter struct {
	entries []domain.Entry
	calls   *[]string
}

func (p *capturePrinter) PrintReport(entries []domain.Entry) error {
	p.entries = entries
	if p.calls != nil {
		*p.calls = append(*p.calls, "print")
	}
	return nil
}

type captureStore struct {
	report domain.Report
	err    error
	calls  *[]string
}

func (s *captureStore) Save(report domain.Report) error {
	s.report = report
	if s.calls != nil {
		*s.calls = append(*s.calls, "save")
	}
	return s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestReporter(opts config.Timer, printer Printer, stores ...Store) (*Reporter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewReporter(opts, clock, printer, quietLogger(), stores...), clock
}

func runTest(r *Reporter, clock *fakeClock, id string, d time.Duration, outcomes ...domain.Outcome) {
	r.TestStarted(id)
	clock.Advance(d)
	for _, o := range outcomes {
		r.TestOutcome(id, o)
	}
	r.TestStopped(id)
}

func TestReporter_RecordsElapsedAndDefaultsToPassed(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	runTest(r, clock, "pkg.TestA", 1500*time.Millisecond)

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "pkg.TestA", records[0].ID)
	assert.Equal(t, 1500*time.Millisecond, records[0].Elapsed)
	assert.Equal(t, domain.OutcomePassed, records[0].Outcome)
	assert.True(t, records[0].Finished)
}

func TestReporter_OutcomeLatchIsPerTest(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []domain.Outcome
		expected domain.Outcome
	}{
		{name: "no outcome", expected: domain.OutcomePassed},
		{name: "explicit pass", outcomes: []domain.Outcome{domain.OutcomePassed}, expected: domain.OutcomePassed},
		{name: "failure", outcomes: []domain.Outcome{domain.OutcomeFailed}, expected: domain.OutcomeFailed},
		{name: "pass does not overwrite failure", outcomes: []domain.Outcome{domain.OutcomeFailed, domain.OutcomePassed}, expected: domain.OutcomeFailed},
		{name: "unknown does not overwrite error", outcomes: []domain.Outcome{domain.OutcomeError, domain.OutcomeUnknown}, expected: domain.OutcomeError},
		{name: "error overwrites failure", outcomes: []domain.Outcome{domain.OutcomeFailed, domain.OutcomeError}, expected: domain.OutcomeError},
		{name: "skip", outcomes: []domain.Outcome{domain.OutcomeSkipped}, expected: domain.OutcomeSkipped},
		{name: "skip does not overwrite failure", outcomes: []domain.Outcome{domain.OutcomeFailed, domain.OutcomeSkipped}, expected: domain.OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, clock := newTestReporter(config.New().Timer, nil)
			r.RunStarted()
			runTest(r, clock, "t", time.Second, tt.outcomes...)

			records := r.Records()
			require.Len(t, records, 1)
			assert.Equal(t, tt.expected, records[0].Outcome)
		})
	}
}

func TestReporter_FailureDoesNotLeakIntoNextTest(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	runTest(r, clock, "first", time.Second, domain.OutcomeFailed)
	runTest(r, clock, "second", time.Second)

	records := r.Records()
	require.Len(t, records, 2)
	assert.Equal(t, domain.OutcomeFailed, records[0].Outcome)
	assert.Equal(t, domain.OutcomePassed, records[1].Outcome)
}

func TestReporter_StopWithoutStartIsIgnored(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	r.TestOutcome("ghost", domain.OutcomeFailed)
	r.TestStopped("ghost")
	runTest(r, clock, "real", time.Second)

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "real", records[0].ID)
	for _, entry := range r.Report().Entries {
		assert.NotEqual(t, "ghost", entry.ID)
	}
}

func TestReporter_RestartKeepsPositionAndLastStartWins(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	r.TestStarted("a")
	clock.Advance(5 * time.Second)
	r.TestStarted("b")
	r.TestStarted("a")
	clock.Advance(time.Second)
	r.TestStopped("a")
	r.TestStopped("b")

	records := r.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, time.Second, records[0].Elapsed)
	assert.Equal(t, "b", records[1].ID)
}

func TestReporter_RepeatedStopIsIgnored(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	runTest(r, clock, "a", time.Second)
	clock.Advance(time.Hour)
	r.TestOutcome("a", domain.OutcomeFailed)
	r.TestStopped("a")

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, time.Second, records[0].Elapsed)
	assert.Equal(t, domain.OutcomePassed, records[0].Outcome)
}

func TestReporter_UnfinishedTestsAreLeftOut(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	r.TestStarted("hanging")
	runTest(r, clock, "done", time.Second)

	report := r.Report()
	require.Len(t, report.Entries, 1)
	assert.Equal(t, "done", report.Entries[0].ID)
}

func TestReporter_RunStartedResets(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()
	runTest(r, clock, "old", time.Second)

	r.RunStarted()
	runTest(r, clock, "new", time.Second)

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)
}

func TestReporter_ElapsedNeverNegative(t *testing.T) {
	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	runTest(r, clock, "backwards", -time.Second)

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, time.Duration(0), records[0].Elapsed)
}

func TestReporter_RunFinishedSavesThenPrints(t *testing.T) {
	var calls []string
	printer := &capturePrinter{calls: &calls}
	store := &captureStore{calls: &calls}
	opts := config.New().Timer
	opts.TypeFilter = []domain.Outcome{domain.OutcomeFailed}

	r, clock := newTestReporter(opts, printer, store)
	r.RunStarted()
	runTest(r, clock, "slow", 3*time.Second)
	runTest(r, clock, "broken", time.Second, domain.OutcomeFailed)

	require.NoError(t, r.RunFinished())
	assert.Equal(t, []string{"save", "print"}, calls)

	// The store gets every test, the printer only the filtered ones
	require.Len(t, store.report.Entries, 2)
	require.Len(t, printer.entries, 1)
	assert.Equal(t, "broken", printer.entries[0].ID)
}

func TestReporter_RunFinishedStoreError(t *testing.T) {
	var calls []string
	printer := &capturePrinter{calls: &calls}
	diskFull := errors.New("disk full")
	store := &captureStore{err: diskFull, calls: &calls}

	r, clock := newTestReporter(config.New().Timer, printer, store)
	r.RunStarted()
	runTest(r, clock, "a", time.Second)

	err := r.RunFinished()
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
	assert.Equal(t, []string{"save"}, calls)
}

func TestReporter_PausedTimeIsExcluded(t *testing.T) {
	var _ lifecycle.Pauser = (*Reporter)(nil)

	r, clock := newTestReporter(config.New().Timer, nil)
	r.RunStarted()

	r.TestStarted("pkg.TestPar")
	clock.Advance(10 * time.Millisecond)
	r.TestPaused("pkg.TestPar")
	clock.Advance(5 * time.Second)
	r.TestResumed("pkg.TestPar")
	clock.Advance(90 * time.Millisecond)
	r.TestStopped("pkg.TestPar")

	records := r.Records()
	require.Len(t, records, 1)
	assert.Equal(t, 100*time.Millisecond, records[0].Elapsed)
}

func TestReporter_PauseEdgeCases(t *testing.T) {
	t.Run("stop while paused ends the pause", func(t *testing.T) {
		r, clock := newTestReporter(config.New().Timer, nil)
		r.TestStarted("pkg.TestA")
		clock.Advance(time.Second)
		r.TestPaused("pkg.TestA")
		clock.Advance(3 * time.Second)
		r.TestStopped("pkg.TestA")

		assert.Equal(t, time.Second, r.Records()[0].Elapsed)
	})

	t.Run("repeated pause keeps the first pause start", func(t *testing.T) {
		r, clock := newTestReporter(config.New().Timer, nil)
		r.TestStarted("pkg.TestA")
		r.TestPaused("pkg.TestA")
		clock.Advance(time.Second)
		r.TestPaused("pkg.TestA")
		clock.Advance(time.Second)
		r.TestResumed("pkg.TestA")
		clock.Advance(time.Second)
		r.TestStopped("pkg.TestA")

		assert.Equal(t, time.Second, r.Records()[0].Elapsed)
	})

	t.Run("resume without pause changes nothing", func(t *testing.T) {
		r, clock := newTestReporter(config.New().Timer, nil)
		r.TestStarted("pkg.TestA")
		clock.Advance(time.Second)
		r.TestResumed("pkg.TestA")
		r.TestPaused("pkg.TestMissing")
		r.TestStopped("pkg.TestA")

		assert.Equal(t, time.Second, r.Records()[0].Elapsed)
	})
}
