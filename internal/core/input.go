package core

// AxisCenter is the resting value of an analog joystick axis.
const AxisCenter uint16 = 512

// AxisMax is the largest value an analog axis reports.
const AxisMax uint16 = 1023

// RawInput is one undebounced reading of the input devices, taken once per
// poll tick. Button is true while the button is physically held.
type RawInput struct {
	X      uint16
	Y      uint16
	Button bool
}

// NeutralInput returns a reading with both axes centered and the button up.
func NeutralInput() RawInput {
	return RawInput{X: AxisCenter, Y: AxisCenter}
}

// DeadZone is the band of raw axis values around center treated as no input.
type DeadZone struct {
	Low  uint16
	High uint16
}

// Deflection classifies a raw axis value: -1 below the band, +1 above it,
// 0 inside it.
func (z DeadZone) Deflection(v uint16) int {
	switch {
	case v < z.Low:
		return -1
	case v > z.High:
		return 1
	default:
		return 0
	}
}

// Accel is a 3-axis acceleration reading in m/s².
type Accel struct {
	X, Y, Z float64
}
