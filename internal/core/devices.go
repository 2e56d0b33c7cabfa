package core

import "time"

//go:generate mockgen -destination=./mock/mock_devices.go . TextDisplay,MatrixDisplay,Buzzer

// TextDisplay is the two-line character display collaborator.
type TextDisplay interface {
	// Clear blanks the display and homes the cursor.
	Clear()
	// SetCursor moves the print position to (col, row).
	SetCursor(col, row int)
	// Print writes s at the cursor and advances it.
	Print(s string)
	// SetBacklight sets the raw backlight level (0-255).
	SetBacklight(level uint8)
}

// MatrixDisplay is the one-bit-per-pixel LED matrix collaborator.
// Bit 7 of a row byte is the leftmost column; bit 7 of a column byte is the
// top row.
type MatrixDisplay interface {
	Clear()
	SetRow(row int, bits uint8)
	SetColumn(col int, bits uint8)
	// SetIntensity sets the raw intensity level (0-15).
	SetIntensity(level uint8)
}

// Buzzer is the tone output collaborator.
type Buzzer interface {
	// Tone starts a square wave at freq Hz. It stops by itself after d.
	Tone(freq uint16, d time.Duration)
	// NoTone silences the output immediately.
	NoTone()
}

// ByteStore is the byte-addressable persistent storage collaborator.
// Unwritten addresses read as 0xFF, like erased EEPROM.
type ByteStore interface {
	Get(addr uint16) (byte, error)
	// Update writes v at addr. Implementations may skip the write when the
	// stored value already equals v.
	Update(addr uint16, v byte) error
}

// Accelerometer is the optional tilt sensor collaborator.
type Accelerometer interface {
	// Available reports whether the sensor was detected at startup.
	Available() bool
	// Read returns the current acceleration. ok is false on a failed read.
	Read() (a Accel, ok bool)
}

// NopBuzzer discards all tones.
type NopBuzzer struct{}

func (NopBuzzer) Tone(uint16, time.Duration) {}
func (NopBuzzer) NoTone() {}

// NoAccelerometer reports the sensor as absent.
type NoAccelerometer struct{}

func (NoAccelerometer) Available() bool { return false }
func (NoAccelerometer) Read() (Accel, bool) { return Accel{}, false }
