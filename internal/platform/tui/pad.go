package tui

import (
	"time"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
)

// axisHold is how long one key press keeps an axis deflected. Terminal
// key repeat refreshes it while a key is held down.
const axisHold = 150 * time.Millisecond

// Pad turns key presses into analog joystick and button readings. A
// terminal reports presses but never releases, so every input stays active
// for a hold window after its last key event.
type Pad struct {
	x, y                uint16
	xUntil, yUntil      time.Duration
	buttonUntil         time.Duration
	pressHold, longHold time.Duration
}

// NewPad sizes the button windows so that a tap survives the debounce and a
// synthesised long press crosses the long-press threshold.
func NewPad(cfg config.InputConfig) *Pad {
	debounce := cfg.Debounce()
	return &Pad{
		x:         core.AxisCenter,
		y:         core.AxisCenter,
		pressHold: 2*debounce + 40*time.Millisecond,
		longHold:  cfg.LongPress() + 2*debounce + 100*time.Millisecond,
	}
}

// Deflect pushes the stick fully towards d.
func (p *Pad) Deflect(d core.Direction, now time.Duration) {
	switch d {
	case core.DirUp:
		p.y, p.yUntil = 0, now+axisHold
	case core.DirDown:
		p.y, p.yUntil = core.AxisMax, now+axisHold
	case core.DirLeft:
		p.x, p.xUntil = 0, now+axisHold
	case core.DirRight:
		p.x, p.xUntil = core.AxisMax, now+axisHold
	}
}

// Press holds the button long enough for one debounced press.
func (p *Pad) Press(now time.Duration) {
	p.holdButton(now + p.pressHold)
}

// LongPress holds the button past the long-press threshold.
func (p *Pad) LongPress(now time.Duration) {
	p.holdButton(now + p.longHold)
}

func (p *Pad) holdButton(until time.Duration) {
	if until > p.buttonUntil {
		p.buttonUntil = until
	}
}

// Raw returns the reading at now, releasing expired inputs.
func (p *Pad) Raw(now time.Duration) core.RawInput {
	if now >= p.xUntil {
		p.x = core.AxisCenter
	}
	if now >= p.yUntil {
		p.y = core.AxisCenter
	}
	return core.RawInput{
		X:      p.x,
		Y:      p.y,
		Button: now < p.buttonUntil,
	}
}
