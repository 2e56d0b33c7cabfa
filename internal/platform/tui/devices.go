package tui

import (
	"strings"

	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/render"
)

// LCDRows is the number of text display lines.
const LCDRows = 2

// LCDPanel emulates the 16x2 character display.
type LCDPanel struct {
	chars     [LCDRows][render.LCDWidth]byte
	col, row  int
	backlight uint8
}

// NewLCDPanel returns a blank panel with full backlight.
func NewLCDPanel() *LCDPanel {
	p := &LCDPanel{backlight: 255}
	p.Clear()
	return p
}

func (p *LCDPanel) Clear() {
	for r := range p.chars {
		for c := range p.chars[r] {
			p.chars[r][c] = ' '
		}
	}
	p.col, p.row = 0, 0
}

func (p *LCDPanel) SetCursor(col, row int) {
	p.col = core.Clamp(col, 0, render.LCDWidth)
	p.row = core.Clamp(row, 0, LCDRows-1)
}

// Print writes s at the cursor. Characters past the end of the line are
// dropped, as on the hardware.
func (p *LCDPanel) Print(s string) {
	for i := 0; i < len(s); i++ {
		if p.col >= render.LCDWidth {
			return
		}
		p.chars[p.row][p.col] = s[i]
		p.col++
	}
}

func (p *LCDPanel) SetBacklight(level uint8) {
	p.backlight = level
}

// Line returns one display line.
func (p *LCDPanel) Line(row int) string {
	if row < 0 || row >= LCDRows {
		return strings.Repeat(" ", render.LCDWidth)
	}
	return string(p.chars[row][:])
}

// Backlight returns the raw backlight level.
func (p *LCDPanel) Backlight() uint8 {
	return p.backlight
}

// MatrixPanel emulates the 8x8 LED matrix.
type MatrixPanel struct {
	rows      render.Frame
	intensity uint8
}

// NewMatrixPanel returns a dark matrix at full intensity.
func NewMatrixPanel() *MatrixPanel {
	return &MatrixPanel{intensity: 15}
}

func (p *MatrixPanel) Clear() {
	p.rows = render.Frame{}
}

func (p *MatrixPanel) SetRow(row int, bits uint8) {
	if row < 0 || row >= render.MatrixSize {
		return
	}
	p.rows[row] = bits
}

func (p *MatrixPanel) SetColumn(col int, bits uint8) {
	if col < 0 || col >= render.MatrixSize {
		return
	}
	mask := uint8(0x80) >> col
	for r := range p.rows {
		if bits&(0x80>>r) != 0 {
			p.rows[r] |= mask
		} else {
			p.rows[r] &^= mask
		}
	}
}

func (p *MatrixPanel) SetIntensity(level uint8) {
	if level > 15 {
		level = 15
	}
	p.intensity = level
}

// Lit reports whether the LED at (col, row) is on.
func (p *MatrixPanel) Lit(col, row int) bool {
	return p.rows.Lit(col, row)
}

// Intensity returns the raw intensity level.
func (p *MatrixPanel) Intensity() uint8 {
	return p.intensity
}

var (
	_ core.TextDisplay   = (*LCDPanel)(nil)
	_ core.MatrixDisplay = (*MatrixPanel)(nil)
)
