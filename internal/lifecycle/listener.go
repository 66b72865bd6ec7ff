package lifecycle

import "gtt/internal/domain"

// Listener receives test lifecycle notifications from a test-execution engine.
// Callbacks are delivered sequentially.
type Listener interface {
	RunStarted()
	TestStarted(id string)
	TestOutcome(id string, outcome domain.Outcome)
	TestStopped(id string)
	RunFinished() error
}

// Pauser is implemented by listeners that exclude the time a test spends
// waiting to run in parallel
type Pauser interface {
	TestPaused(id string)
	TestResumed(id string)
}

// Multi forwards every callback to each listener in order
type Multi []Listener

// RunStarted notifies all listeners
func (m Multi) RunStarted() {
	for _, l := range m {
		l.RunStarted()
	}
}

// TestStarted notifies all listeners
func (m Multi) TestStarted(id string) {
	for _, l := range m {
		l.TestStarted(id)
	}
}

// TestOutcome notifies all listeners
func (m Multi) TestOutcome(id string, outcome domain.Outcome) {
	for _, l := range m {
		l.TestOutcome(id, outcome)
	}
}

// TestStopped notifies all listeners
func (m Multi) TestStopped(id string) {
	for _, l := range m {
		l.TestStopped(id)
	}
}

// TestPaused notifies the listeners that implement Pauser
func (m Multi) TestPaused(id string) {
	for _, l := range m {
		if p, ok := l.(Pauser); ok {
			p.TestPaused(id)
		}
	}
}

// TestResumed notifies the listeners that implement Pauser
func (m Multi) TestResumed(id string) {
	for _, l := range m {
		if p, ok := l.(Pauser); ok {
			p.TestResumed(id)
		}
	}
}

// RunFinished notifies all listeners and returns the first error.
// Listeners after a failing one are still notified.
func (m Multi) RunFinished() error {
	var first error
	for _, l := range m {
		if err := l.RunFinished(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
