// Package debounce provides a reset-on-retrigger timer that fires once
// after a quiet period. It is driven by explicit timestamps so the
// owner decides when to poll it: a frame loop, a ticker or a test.
package debounce

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the wall clock.
var System Clock = systemClock{}

// Debouncer calls fn once the window has elapsed since the last Trigger.
type Debouncer struct {
	window   time.Duration
	fn       func()
	deadline time.Time
	armed    bool
}

func New(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger (re)arms the timer. A pending deadline is superseded, not
// accumulated.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.window)
	d.armed = true
}

// Poll fires the callback if the deadline has been reached and reports
// whether it did.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	if d.fn != nil {
		d.fn()
	}
	return true
}

// Pending reports whether a deadline is armed.
func (d *Debouncer) Pending() bool { return d.armed }

// Deadline returns the armed deadline, or the zero time.
func (d *Debouncer) Deadline() time.Time {
	if !d.armed {
		return time.Time{}
	}
	return d.deadline
}

// Stop disarms the timer without firing.
func (d *Debouncer) Stop() { d.armed = false }
