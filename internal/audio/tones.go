// Package audio schedules buzzer tone sequences without blocking the poll
// loop.
package audio

import "time"

// Tone is one step of a sequence: a square wave at Freq Hz for Duration.
type Tone struct {
	Freq     uint16
	Duration time.Duration
}

// Sequence is an ordered list of tones played back to back.
type Sequence []Tone

// Total returns the summed duration of every step.
func (s Sequence) Total() time.Duration {
	var d time.Duration
	for _, t := range s {
		d += t.Duration
	}
	return d
}

// Effect names a sound in the fixed catalog.
type Effect int

const (
	MenuMove Effect = iota
	MenuSelect
	StarCollected
	LevelComplete
	Victory
	Startup
	effectCount
)

var effectNames = [effectCount]string{
	"menu-move", "menu-select", "star-collected", "level-complete", "victory", "startup",
}

func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return "unknown"
	}
	return effectNames[e]
}

func tone(freq uint16, durMs int) Tone {
	return Tone{Freq: freq, Duration: time.Duration(durMs) * time.Millisecond}
}

var catalog = [effectCount]Sequence{
	MenuMove:      {tone(800, 50)},
	MenuSelect:    {tone(1200, 100), tone(1500, 150)},
	StarCollected: {tone(1000, 80), tone(1200, 80)},
	LevelComplete: {tone(1000, 100), tone(1200, 100), tone(1500, 100), tone(2000, 200)},
	Victory:       {tone(1500, 100), tone(1800, 100), tone(2100, 100), tone(2500, 300)},
	Startup:       {tone(1000, 200), tone(1500, 200), tone(2000, 200)},
}

// SequenceFor returns the catalog sequence of an effect, nil for an unknown
// effect. The returned slice is shared and must not be modified.
func SequenceFor(e Effect) Sequence {
	if e < 0 || e >= effectCount {
		return nil
	}
	return catalog[e]
}
