package input

import (
	"testing"
	"time"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
)

const ms = time.Millisecond

type fakeAccel struct {
	present bool
	reading core.Accel
	reads   int
}

func (f *fakeAccel) Available() bool { return f.present }

func (f *fakeAccel) Read() (core.Accel, bool) {
	f.reads++
	return f.reading, f.present
}

func newTestSampler(accel core.Accelerometer) *Sampler {
	return NewSampler(config.Default().Input, accel)
}

func button(down bool) core.RawInput {
	raw := core.NeutralInput()
	raw.Button = down
	return raw
}

func TestAxisDeflection(t *testing.T) {
	s := newTestSampler(nil)

	tests := []struct {
		x, y   uint16
		wantX  int
		wantY  int
		expect core.Direction
	}{
		{512, 512, 0, 0, core.DirNone},
		{400, 600, 0, 0, core.DirNone},
		{399, 512, -1, 0, core.DirLeft},
		{601, 512, 1, 0, core.DirRight},
		{512, 0, 0, -1, core.DirUp},
		{512, 1023, 0, 1, core.DirDown},
		{0, 1023, -1, 1, core.DirDown}, // vertical wins
	}

	for _, tc := range tests {
		f := s.Sample(core.RawInput{X: tc.x, Y: tc.y}, 0)
		if f.X != tc.wantX || f.Y != tc.wantY {
			t.Errorf("Sample(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, f.X, f.Y, tc.wantX, tc.wantY)
		}
		if got := f.Joystick(); got != tc.expect {
			t.Errorf("Joystick() for (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.expect)
		}
	}
}

func TestDebounceRisingEdge(t *testing.T) {
	s := newTestSampler(nil)
	s.Sample(button(false), 0)

	// Raw press at 100ms starts the debounce window.
	if f := s.Sample(button(true), 100*ms); f.Pressed || f.JustPressed {
		t.Fatal("press should not register inside the debounce window")
	}
	if f := s.Sample(button(true), 140*ms); f.Pressed {
		t.Fatal("press should not register before the window elapses")
	}

	f := s.Sample(button(true), 160*ms)
	if !f.Pressed || !f.JustPressed {
		t.Fatalf("expected debounced rising edge, got %+v", f)
	}
	if f.PressedAt != 160*ms {
		t.Errorf("PressedAt = %v, expected 160ms", f.PressedAt)
	}

	f = s.Sample(button(true), 180*ms)
	if !f.Pressed || f.JustPressed {
		t.Errorf("JustPressed should last exactly one tick, got %+v", f)
	}
}

func TestBounceIsIgnored(t *testing.T) {
	s := newTestSampler(nil)
	s.Sample(button(false), 0)

	// Contact chatter: every change restarts the window.
	s.Sample(button(true), 100*ms)
	s.Sample(button(false), 120*ms)
	s.Sample(button(true), 140*ms)
	if f := s.Sample(button(true), 180*ms); f.Pressed {
		t.Fatal("chatter should keep restarting the debounce window")
	}
	if f := s.Sample(button(true), 200*ms); !f.JustPressed {
		t.Fatal("stable press after chatter should register")
	}
}

func TestLongPressUsesPressStart(t *testing.T) {
	s := newTestSampler(nil)
	threshold := config.Default().Input.LongPress()

	s.Sample(button(false), 0)
	s.Sample(button(true), 100*ms)
	f := s.Sample(button(true), 160*ms)
	start := f.PressedAt

	f = s.Sample(button(true), start+threshold-ms)
	if f.LongPress(start+threshold-ms, threshold) {
		t.Error("LongPress fired early")
	}
	now := start + threshold
	f = s.Sample(button(true), now)
	if !f.LongPress(now, threshold) {
		t.Error("LongPress should fire once the threshold is reached")
	}
}

func TestRapidPressesDoNotAccumulateHold(t *testing.T) {
	s := newTestSampler(nil)
	threshold := config.Default().Input.LongPress()

	now := time.Duration(0)
	for i := 0; i < 8; i++ {
		for _, down := range []bool{true, true, true, true, false, false, false, false} {
			now += 20 * ms
			f := s.Sample(button(down), now)
			if f.LongPress(now, threshold) {
				t.Fatalf("repeated short presses triggered a long press at %v", now)
			}
		}
	}
}

func TestConsumeSwallowsPressUntilRelease(t *testing.T) {
	s := newTestSampler(nil)
	s.Sample(button(false), 0)
	s.Sample(button(true), 10*ms)
	s.Sample(button(true), 70*ms)

	s.Consume()
	f := s.Sample(button(true), 2000*ms)
	if f.Pressed || f.LongPress(2000*ms, time.Second) {
		t.Errorf("consumed press still visible: %+v", f)
	}

	s.Sample(button(false), 2010*ms)
	s.Sample(button(false), 2070*ms)
	s.Sample(button(true), 2100*ms)
	if f := s.Sample(button(true), 2160*ms); !f.JustPressed {
		t.Error("a new press after release should register")
	}
}

func TestTiltDirection(t *testing.T) {
	tests := []struct {
		a      core.Accel
		expect core.Direction
	}{
		{core.Accel{X: -5}, core.DirRight},
		{core.Accel{X: 5}, core.DirLeft},
		{core.Accel{Y: 5}, core.DirDown},
		{core.Accel{Y: -5}, core.DirUp},
		{core.Accel{X: 2, Y: 1}, core.DirNone},
		{core.Accel{X: 4, Y: 4}, core.DirNone},
		{core.Accel{X: -4, Y: 6}, core.DirDown},
	}
	for _, tc := range tests {
		if got := TiltDirection(tc.a, 3); got != tc.expect {
			t.Errorf("TiltDirection(%+v) = %v, expected %v", tc.a, got, tc.expect)
		}
	}
}

func TestTiltReadInterval(t *testing.T) {
	accel := &fakeAccel{present: true, reading: core.Accel{Y: 9}}
	s := newTestSampler(accel)
	s.SetTiltEnabled(true)

	if f := s.Sample(core.NeutralInput(), 0); f.Tilt != core.DirDown {
		t.Fatalf("Tilt = %v, expected down", f.Tilt)
	}
	s.Sample(core.NeutralInput(), 50*ms)
	if accel.reads != 1 {
		t.Errorf("sensor read %d times inside one interval, expected 1", accel.reads)
	}
	s.Sample(core.NeutralInput(), 100*ms)
	if accel.reads != 2 {
		t.Errorf("sensor read %d times after the interval, expected 2", accel.reads)
	}
}

func TestTiltUnavailableFallsBack(t *testing.T) {
	accel := &fakeAccel{present: false, reading: core.Accel{Y: 9}}
	s := newTestSampler(accel)
	s.SetTiltEnabled(true)

	if s.TiltEnabled() {
		t.Error("tilt cannot be enabled without the sensor")
	}
	if f := s.Sample(core.NeutralInput(), 0); f.Tilt != core.DirNone {
		t.Errorf("Tilt = %v, expected none", f.Tilt)
	}
	if accel.reads != 0 {
		t.Error("absent sensor should never be read")
	}
}
