package services

import (
	"time"

	"tcr/internal/ports"
)

// SystemClock is the wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time { return time.Now() }

// Debouncer suppresses triggers that arrive within a quiet window of the previous one.
// The window slides: a suppressed trigger still moves the reference instant,
// so a steady burst keeps being suppressed until it settles.
// Not safe for concurrent use; it belongs to the single event consumer.
type Debouncer struct {
	clock       ports.Clock
	lastTrigger *time.Time
	window      time.Duration
}

// NewDebouncer creates a debouncer with the given quiet window
func NewDebouncer(window time.Duration, clock ports.Clock) *Debouncer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debouncer{
		clock:  clock,
		window: window,
	}
}

// ShouldDebounce records now as the latest trigger and reports whether the
// previous trigger was less than the window ago
func (d *Debouncer) ShouldDebounce() bool {
	now := d.clock.Now()
	last := d.lastTrigger
	d.lastTrigger = &now

	return last != nil && now.Sub(*last) < d.window
}

// Window returns the configured quiet window
func (d *Debouncer) Window() time.Duration {
	return d.window
}
