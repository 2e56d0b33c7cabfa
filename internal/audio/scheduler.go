package audio

import (
	"time"

	"github.com/vovakirdan/maze-master/internal/core"
)

// Scheduler plays one Sequence at a time on a Buzzer. Each call returns
// immediately; Update advances steps by comparing now against the step
// start time.
type Scheduler struct {
	buzzer  core.Buzzer
	enabled bool

	seq       Sequence
	idx       int
	stepStart time.Duration
}

// NewScheduler creates an enabled scheduler. A nil buzzer discards output.
func NewScheduler(b core.Buzzer) *Scheduler {
	if b == nil {
		b = core.NopBuzzer{}
	}
	return &Scheduler{buzzer: b, enabled: true}
}

// Play starts the catalog sequence of effect e.
func (s *Scheduler) Play(e Effect, now time.Duration) {
	s.PlaySequence(SequenceFor(e), now)
}

// PlaySequence preempts whatever is playing and starts seq's first step
// immediately. It is a no-op while muted.
func (s *Scheduler) PlaySequence(seq Sequence, now time.Duration) {
	if !s.enabled || len(seq) == 0 {
		return
	}
	s.buzzer.NoTone()
	s.seq = seq
	s.idx = 0
	s.start(now)
}

// Update advances to the next step once the current one has elapsed and
// silences the buzzer after the last.
func (s *Scheduler) Update(now time.Duration) {
	if s.seq == nil {
		return
	}
	if now-s.stepStart < s.seq[s.idx].Duration {
		return
	}
	s.idx++
	if s.idx >= len(s.seq) {
		s.Stop()
		return
	}
	s.start(now)
}

// Stop silences the buzzer and drops the current sequence.
func (s *Scheduler) Stop() {
	s.buzzer.NoTone()
	s.seq = nil
	s.idx = 0
}

// SetEnabled mutes or unmutes the scheduler. Muting stops output at once.
func (s *Scheduler) SetEnabled(on bool) {
	if !on && s.seq != nil {
		s.Stop()
	}
	s.enabled = on
}

// Enabled reports whether sound is on.
func (s *Scheduler) Enabled() bool {
	return s.enabled
}

// Playing reports whether a sequence is in flight.
func (s *Scheduler) Playing() bool {
	return s.seq != nil
}

// Current returns the tone currently sounding.
func (s *Scheduler) Current() (Tone, bool) {
	if s.seq == nil {
		return Tone{}, false
	}
	return s.seq[s.idx], true
}

func (s *Scheduler) start(now time.Duration) {
	t := s.seq[s.idx]
	s.stepStart = now
	s.buzzer.Tone(t.Freq, t.Duration)
}
