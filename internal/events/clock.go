package events

import "time"

// StreamClock reports the timestamp of the event being dispatched, so
// replayed streams keep their original durations
type StreamClock struct {
	now time.Time
}

// Set moves the clock to t. A zero t falls back to the wall clock.
func (c *StreamClock) Set(t time.Time) {
	if t.IsZero() {
		t = time.Now()
	}
	c.now = t
}

// Now returns the time of the current event
func (c *StreamClock) Now() time.Time {
	if c.now.IsZero() {
		return time.Now()
	}
	return c.now
}
