package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Until returns the duration from the clock's now until t, or zero if t is
// unset or already past
func Until(c Clock, t time.Time) time.Duration {
	if t.IsZero() {
		return 0
	}
	d := t.Sub(c.Now())
	if d < 0 {
		return 0
	}
	return d
}
