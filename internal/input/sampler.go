// Package input turns raw per-tick device readings into the debounced,
// edge-detected Frame the state machine consumes.
package input

import (
	"time"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
)

// Frame is the sampled input for one poll tick.
type Frame struct {
	// X and Y are axis deflections: -1, 0 or +1. X grows to the right,
	// Y grows downward.
	X, Y int

	// Pressed is the debounced button level. It reads false after Consume
	// until the button is released and pressed again.
	Pressed bool
	// JustPressed is true only on the tick of the debounced rising edge.
	JustPressed bool
	// PressedAt is the tick time of the most recent rising edge.
	PressedAt time.Duration

	// Tilt is the most recent accelerometer direction, DirNone when tilt
	// is disabled, unavailable or level.
	Tilt core.Direction
}

// LongPress reports whether the button has been held since PressedAt for at
// least threshold.
func (f Frame) LongPress(now, threshold time.Duration) bool {
	return f.Pressed && now-f.PressedAt >= threshold
}

// Deflected reports whether either axis is outside the dead zone.
func (f Frame) Deflected() bool {
	return f.X != 0 || f.Y != 0
}

// Joystick returns the single cardinal direction of the stick. The vertical
// axis wins when both are deflected.
func (f Frame) Joystick() core.Direction {
	switch {
	case f.Y < 0:
		return core.DirUp
	case f.Y > 0:
		return core.DirDown
	case f.X < 0:
		return core.DirLeft
	case f.X > 0:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// Sampler debounces the button and classifies the axes. It holds the only
// input state that survives between ticks.
type Sampler struct {
	zone     core.DeadZone
	debounce time.Duration

	accel         core.Accelerometer
	tiltEnabled   bool
	tiltThreshold float64
	tiltInterval  time.Duration
	lastTiltRead  time.Duration
	tiltRead      bool
	tilt          core.Direction

	lastReading bool          // raw level seen on the previous tick
	lastEdge    time.Duration // last raw change, restarts the debounce window
	level       bool          // debounced level
	pressedAt   time.Duration // debounced rising edge
	consumed    bool
}

// NewSampler creates a sampler. accel may be nil when no tilt sensor exists.
func NewSampler(cfg config.InputConfig, accel core.Accelerometer) *Sampler {
	if accel == nil {
		accel = core.NoAccelerometer{}
	}
	return &Sampler{
		zone:          core.DeadZone{Low: cfg.DeadZoneLow, High: cfg.DeadZoneHigh},
		debounce:      cfg.Debounce(),
		accel:         accel,
		tiltThreshold: cfg.TiltThreshold,
		tiltInterval:  cfg.TiltReadInterval(),
	}
}

// TiltAvailable reports whether the accelerometer was detected.
func (s *Sampler) TiltAvailable() bool {
	return s.accel.Available()
}

// SetTiltEnabled turns accelerometer reads on or off. Enabling has no
// effect when the sensor is absent.
func (s *Sampler) SetTiltEnabled(on bool) {
	s.tiltEnabled = on && s.accel.Available()
	if !s.tiltEnabled {
		s.tilt = core.DirNone
		s.tiltRead = false
	}
}

// TiltEnabled reports whether tilt reads are active.
func (s *Sampler) TiltEnabled() bool {
	return s.tiltEnabled
}

// Consume swallows the current press: no further JustPressed or LongPress
// is reported until the button is released.
func (s *Sampler) Consume() {
	if s.level {
		s.consumed = true
	}
}

// Sample processes one raw reading taken at now.
func (s *Sampler) Sample(raw core.RawInput, now time.Duration) Frame {
	f := Frame{
		X:         s.zone.Deflection(raw.X),
		Y:         s.zone.Deflection(raw.Y),
		PressedAt: s.pressedAt,
	}

	if raw.Button != s.lastReading {
		s.lastEdge = now
	}
	if now-s.lastEdge > s.debounce && raw.Button != s.level {
		s.level = raw.Button
		if s.level {
			s.pressedAt = now
			f.PressedAt = now
			f.JustPressed = !s.consumed
		} else {
			s.consumed = false
		}
	}
	s.lastReading = raw.Button

	f.Pressed = s.level && !s.consumed
	f.Tilt = s.sampleTilt(now)
	return f
}

func (s *Sampler) sampleTilt(now time.Duration) core.Direction {
	if !s.tiltEnabled {
		return core.DirNone
	}
	if s.tiltRead && now-s.lastTiltRead < s.tiltInterval {
		return s.tilt
	}
	s.lastTiltRead = now
	s.tiltRead = true
	if a, ok := s.accel.Read(); ok {
		s.tilt = TiltDirection(a, s.tiltThreshold)
	} else {
		s.tilt = core.DirNone
	}
	return s.tilt
}

// TiltDirection classifies an acceleration reading. The dominant horizontal
// axis must exceed threshold; a negative X reading tilts right and a
// positive Y reading tilts down.
func TiltDirection(a core.Accel, threshold float64) core.Direction {
	ax, ay := abs(a.X), abs(a.Y)
	switch {
	case ax > ay && ax > threshold:
		if a.X < 0 {
			return core.DirRight
		}
		return core.DirLeft
	case ay > ax && ay > threshold:
		if a.Y > 0 {
			return core.DirDown
		}
		return core.DirUp
	default:
		return core.DirNone
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
