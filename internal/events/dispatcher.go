package events

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"gtt/internal/domain"
	"gtt/internal/lifecycle"
)

// maxLineSize bounds a single event line; test output can be long
const maxLineSize = 4 * 1024 * 1024

// Dispatcher reads test2json events and drives a lifecycle listener
type Dispatcher struct {
	listener lifecycle.Listener
	clock    *StreamClock
	log      logrus.FieldLogger
	passthru io.Writer

	panicked map[string]bool
	running  map[string]bool
	summary  Summary
}

// NewDispatcher creates a Dispatcher. The clock is advanced to every event's
// timestamp before the listener is called; pass the same clock to listeners
// that read time. Lines that are not events are copied to passthru when set.
func NewDispatcher(listener lifecycle.Listener, clock *StreamClock, log logrus.FieldLogger, passthru io.Writer) *Dispatcher {
	if clock == nil {
		clock = &StreamClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		listener: listener,
		clock:    clock,
		log:      log,
		passthru: passthru,
		panicked: make(map[string]bool),
		running:  make(map[string]bool),
	}
}

// Clock returns the stream clock driven by this dispatcher
func (d *Dispatcher) Clock() *StreamClock {
	return d.clock
}

// Run consumes the stream until EOF. The listener sees RunStarted before the
// first event and RunFinished after the last one.
func (d *Dispatcher) Run(r io.Reader) (Summary, error) {
	d.panicked = make(map[string]bool)
	d.running = make(map[string]bool)
	d.summary = Summary{}

	d.listener.RunStarted()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var ev Event
		if line[0] != '{' || json.Unmarshal(line, &ev) != nil {
			d.log.WithField("line", string(line)).Debug("Skipping non-event line")
			if d.passthru != nil {
				fmt.Fprintf(d.passthru, "%s\n", line)
			}
			continue
		}
		d.Handle(ev)
	}
	if err := scanner.Err(); err != nil {
		return d.summary, fmt.Errorf("read test events: %w", err)
	}

	if err := d.listener.RunFinished(); err != nil {
		return d.summary, err
	}
	return d.summary, nil
}

// Handle dispatches a single event
func (d *Dispatcher) Handle(ev Event) {
	d.clock.Set(ev.Time)

	if ev.Test == "" || ev.Action == ActionBuildOutput {
		d.handlePackage(ev)
		return
	}

	id := ev.TestID()
	switch ev.Action {
	case ActionRun:
		delete(d.panicked, id)
		d.running[id] = true
		d.listener.TestStarted(id)
	case ActionOutput:
		if ev.IsPanic() {
			d.panicked[id] = true
		}
	case ActionPause:
		if p, ok := d.listener.(lifecycle.Pauser); ok {
			p.TestPaused(id)
		}
	case ActionCont:
		if p, ok := d.listener.(lifecycle.Pauser); ok {
			p.TestResumed(id)
		}
	case ActionPass:
		d.finish(id, domain.OutcomePassed)
	case ActionSkip:
		d.finish(id, domain.OutcomeSkipped)
	case ActionFail:
		if d.panicked[id] {
			d.finish(id, domain.OutcomeError)
		} else {
			d.finish(id, domain.OutcomeFailed)
		}
	case ActionBench, ActionStart:
	default:
		d.log.WithFields(logrus.Fields{"action": ev.Action, "test": id}).Debug("Unknown test action")
	}
}

// finish reports the outcome and stop of a test. Only tests that were
// started are counted in the summary.
func (d *Dispatcher) finish(id string, outcome domain.Outcome) {
	d.listener.TestOutcome(id, outcome)
	d.listener.TestStopped(id)
	delete(d.panicked, id)

	if !d.running[id] {
		d.log.WithField("test", id).Debug("Result for test that was never started")
		return
	}
	delete(d.running, id)

	switch outcome {
	case domain.OutcomePassed:
		d.summary.Passed++
	case domain.OutcomeSkipped:
		d.summary.Skipped++
	case domain.OutcomeError:
		d.summary.Errored++
	default:
		d.summary.Failed++
	}
}

func (d *Dispatcher) handlePackage(ev Event) {
	switch ev.Action {
	case ActionFail:
		d.summary.FailedPackages = append(d.summary.FailedPackages, ev.Package)
		d.log.WithField("package", ev.Package).Debug("Package failed")
	case ActionBuildOutput:
		if d.passthru != nil {
			fmt.Fprint(d.passthru, ev.Output)
		}
	case ActionBuildFail:
		d.log.WithField("package", ev.ImportPath).Debug("Package build failed")
	}
}
