package sound

import (
	"testing"
	"time"
)

func TestVoiceIdleIsSilent(t *testing.T) {
	v := &voice{}

	samples := make([][2]float64, 64)
	for i := range samples {
		samples[i] = [2]float64{0.5, 0.5}
	}
	n, ok := v.Stream(samples)
	if n != 64 || !ok {
		t.Fatalf("Stream() = %d, %v; want 64, true", n, ok)
	}
	for i := range samples {
		if samples[i][0] != 0 || samples[i][1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, samples[i])
		}
	}
}

func TestVoiceSquareWave(t *testing.T) {
	v := &voice{}
	// 4410 Hz at 44.1 kHz is a period of ten samples.
	v.start(4410, 100)

	samples := make([][2]float64, 10)
	v.Stream(samples)
	for i := 0; i < 5; i++ {
		if samples[i][0] != 1 {
			t.Errorf("sample %d = %v, want high half", i, samples[i][0])
		}
	}
	for i := 6; i < 10; i++ {
		if samples[i][0] != -1 {
			t.Errorf("sample %d = %v, want low half", i, samples[i][0])
		}
	}
}

func TestVoiceStopsAfterDuration(t *testing.T) {
	v := &voice{}
	v.start(440, sampleRate.N(time.Millisecond))

	samples := make([][2]float64, 200)
	v.Stream(samples)
	if samples[0][0] == 0 {
		t.Error("expected tone at the start")
	}
	if samples[199][0] != 0 {
		t.Error("expected silence after the tone ends")
	}
}

func TestVoiceStop(t *testing.T) {
	v := &voice{}
	v.start(440, 1000)
	v.stop()

	samples := make([][2]float64, 8)
	v.Stream(samples)
	for i := range samples {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d not silent after stop", i)
		}
	}
}

func TestNewBuzzerStartsPaused(t *testing.T) {
	b := newBuzzer()
	if !b.ctrl.Paused {
		t.Error("new buzzer should start paused")
	}
}
