package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestDebouncer_FirstTriggerAccepted(t *testing.T) {
	d := NewDebouncer(10*time.Second, newFakeClock())

	assert.False(t, d.ShouldDebounce())
}

func TestDebouncer_BurstWithinWindow(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10*time.Second, clock)

	assert.False(t, d.ShouldDebounce())
	assert.True(t, d.ShouldDebounce())
	assert.True(t, d.ShouldDebounce())
	assert.True(t, d.ShouldDebounce())
}

func TestDebouncer_AcceptsOnceWindowElapsed(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10*time.Second, clock)

	assert.False(t, d.ShouldDebounce())

	clock.Advance(10 * time.Second)
	assert.False(t, d.ShouldDebounce(), "exactly one window later is accepted")

	clock.Advance(9 * time.Second)
	assert.True(t, d.ShouldDebounce())
}

func TestDebouncer_WindowSlides(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(10*time.Second, clock)

	assert.False(t, d.ShouldDebounce()) // t=0

	clock.Advance(6 * time.Second)
	assert.True(t, d.ShouldDebounce()) // t=6

	clock.Advance(6 * time.Second)
	assert.True(t, d.ShouldDebounce(), "t=12 is within the window of the suppressed trigger at t=6")

	clock.Advance(11 * time.Second)
	assert.False(t, d.ShouldDebounce()) // t=23
}

func TestDebouncer_ZeroWindowNeverDebounces(t *testing.T) {
	d := NewDebouncer(0, newFakeClock())

	for i := 0; i < 3; i++ {
		assert.False(t, d.ShouldDebounce())
	}
}

func TestDebouncer_DefaultsToSystemClock(t *testing.T) {
	d := NewDebouncer(time.Hour, nil)

	assert.False(t, d.ShouldDebounce())
	assert.True(t, d.ShouldDebounce())
	assert.Equal(t, time.Hour, d.Window())
}
