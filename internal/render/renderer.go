package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-master/internal/core"
)

// LCDWidth is the number of characters per text display line.
const LCDWidth = 16

// Renderer draws the running game on one display target.
type Renderer interface {
	// Init prepares the device and forgets what was drawn before.
	Init()
	// Render draws v, touching the device only where it changed.
	Render(v View)
	// Clear blanks the device.
	Clear()
}

// MatrixRenderer draws frames on the LED matrix, pushing only the rows that
// differ from the previous frame.
type MatrixRenderer struct {
	dev   core.MatrixDisplay
	last  Frame
	valid bool
}

// NewMatrixRenderer creates a renderer for dev.
func NewMatrixRenderer(dev core.MatrixDisplay) *MatrixRenderer {
	return &MatrixRenderer{dev: dev}
}

func (m *MatrixRenderer) Init() {
	m.Clear()
}

func (m *MatrixRenderer) Render(v View) {
	m.Show(Compose(v))
}

func (m *MatrixRenderer) Clear() {
	m.dev.Clear()
	m.last = Frame{}
	m.valid = true
}

// Show pushes an arbitrary frame, such as an icon.
func (m *MatrixRenderer) Show(f Frame) {
	for r := range f {
		if m.valid && m.last[r] == f[r] {
			continue
		}
		m.dev.SetRow(r, f[r])
	}
	m.last = f
	m.valid = true
}

// SetIntensity forwards a raw intensity level.
func (m *MatrixRenderer) SetIntensity(level uint8) {
	m.dev.SetIntensity(level)
}

type hud struct {
	level, collected, quota, score int
}

// LCDRenderer draws the in-game status lines, redrawing only when a value
// changed.
type LCDRenderer struct {
	dev   core.TextDisplay
	last  hud
	valid bool
}

// NewLCDRenderer creates a renderer for dev.
func NewLCDRenderer(dev core.TextDisplay) *LCDRenderer {
	return &LCDRenderer{dev: dev}
}

func (l *LCDRenderer) Init() {
	l.Clear()
}

func (l *LCDRenderer) Render(v View) {
	h := hud{
		level:     v.Maze.LevelIndex + 1,
		collected: v.Maze.Collected,
		quota:     v.Maze.Quota,
		score:     v.Maze.Score,
	}
	if l.valid && h == l.last {
		return
	}
	writeLine(l.dev, 0, fmt.Sprintf("Lv:%d Stars:%d/%d", h.level, h.collected, h.quota))
	writeLine(l.dev, 1, fmt.Sprintf("Score: %d", h.score))
	l.last = h
	l.valid = true
}

func (l *LCDRenderer) Clear() {
	l.dev.Clear()
	l.valid = false
}

// ShowText clears the display and prints two lines.
func ShowText(dev core.TextDisplay, top, bottom string) {
	dev.Clear()
	dev.SetCursor(0, 0)
	dev.Print(fit(top))
	dev.SetCursor(0, 1)
	dev.Print(fit(bottom))
}

// writeLine overwrites a full line without clearing the display.
func writeLine(dev core.TextDisplay, row int, s string) {
	dev.SetCursor(0, row)
	s = fit(s)
	dev.Print(s + strings.Repeat(" ", LCDWidth-len(s)))
}

func fit(s string) string {
	if len(s) > LCDWidth {
		return s[:LCDWidth]
	}
	return s
}
