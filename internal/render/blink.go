// Package render projects the maze onto the LED matrix and the run
// status onto the text display.
package render

import "time"

// BlinkClock is a free-running on/off toggle with a fixed period.
type BlinkClock struct {
	period time.Duration
	last   time.Duration
	on     bool
}

// NewBlinkClock creates a clock that starts in the off phase.
func NewBlinkClock(period time.Duration) *BlinkClock {
	return &BlinkClock{period: period}
}

// Update toggles the phase once more than a period has passed since the
// last toggle. It reports whether the phase changed.
func (c *BlinkClock) Update(now time.Duration) bool {
	if now-c.last <= c.period {
		return false
	}
	c.on = !c.on
	c.last = now
	return true
}

// On reports the current phase.
func (c *BlinkClock) On() bool { return c.on }
