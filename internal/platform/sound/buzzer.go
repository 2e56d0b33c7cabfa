// Package sound plays the buzzer tones through the host speaker.
package sound

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/maze-master/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// volume is the linear output gain of the square wave.
const volume = 0.25

// voice is a square-wave generator that stays alive between tones and
// streams silence while idle, so the speaker never drops it.
type voice struct {
	freq      float64
	phase     float64
	remaining int
}

func (v *voice) start(freq uint16, samples int) {
	v.freq = float64(freq)
	v.phase = 0
	v.remaining = samples
}

func (v *voice) stop() {
	v.remaining = 0
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.remaining <= 0 || v.freq <= 0 {
			samples[i] = [2]float64{}
			continue
		}
		val := -1.0
		if v.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq / float64(sampleRate)
		v.phase -= math.Floor(v.phase)
		v.remaining--
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// Buzzer is a core.Buzzer backed by the default audio device.
type Buzzer struct {
	voice *voice
	ctrl  *beep.Ctrl
}

// New initialises the speaker and starts the idle voice.
func New() (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	b := newBuzzer()
	speaker.Play(b.ctrl)
	return b, nil
}

func newBuzzer() *Buzzer {
	v := &voice{}
	vol := &effects.Volume{Streamer: v, Base: 2, Volume: math.Log2(volume)}
	return &Buzzer{
		voice: v,
		ctrl:  &beep.Ctrl{Streamer: vol, Paused: true},
	}
}

// Open returns a speaker-backed buzzer, or a silent one when the audio
// device cannot be opened.
func Open(logger *log.Logger) core.Buzzer {
	b, err := New()
	if err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, running silent", "err", err)
		}
		return core.NopBuzzer{}
	}
	return b
}

// Tone starts a square wave at freq Hz for d.
func (b *Buzzer) Tone(freq uint16, d time.Duration) {
	speaker.Lock()
	b.voice.start(freq, sampleRate.N(d))
	b.ctrl.Paused = false
	speaker.Unlock()
}

// NoTone silences the output.
func (b *Buzzer) NoTone() {
	speaker.Lock()
	b.voice.stop()
	b.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops playback.
func (b *Buzzer) Close() {
	speaker.Clear()
}

var _ core.Buzzer = (*Buzzer)(nil)
