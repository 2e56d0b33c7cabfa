package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/render"
)

// Panel layout on the console screen.
const (
	panelWidth   = render.LCDWidth + 4
	lcdHeight    = LCDRows + 2
	matrixTop    = lcdHeight + 1
	matrixHeight = render.MatrixSize + 2
	screenWidth  = panelWidth
	screenHeight = matrixTop + matrixHeight
)

const (
	pixelOn  = '●'
	pixelOff = '·'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDim:          lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// backlightColor shades the LCD text by backlight level.
func backlightColor(level uint8) core.Color {
	switch {
	case level >= 170:
		return core.ColorBrightGreen
	case level >= 85:
		return core.ColorGreen
	default:
		return core.ColorDim
	}
}

// intensityColor shades lit LEDs by matrix intensity.
func intensityColor(level uint8) core.Color {
	switch {
	case level >= 10:
		return core.ColorBrightRed
	case level >= 4:
		return core.ColorRed
	default:
		return core.ColorDim
	}
}

// DrawConsole lays the two device panels out on s.
func DrawConsole(s *core.Screen, lcd *LCDPanel, matrix *MatrixPanel) {
	s.Clear()

	s.DrawBox(core.NewRect(0, 0, panelWidth, lcdHeight), core.ColorGray)
	text := backlightColor(lcd.Backlight())
	for r := 0; r < LCDRows; r++ {
		s.DrawText(2, 1+r, lcd.Line(r), text)
	}

	s.DrawBox(core.NewRect(0, matrixTop, panelWidth, matrixHeight), core.ColorGray)
	lit := intensityColor(matrix.Intensity())
	for r := 0; r < render.MatrixSize; r++ {
		for c := 0; c < render.MatrixSize; c++ {
			x, y := 2+2*c, matrixTop+1+r
			if matrix.Lit(c, r) {
				s.SetColor(x, y, pixelOn, lit)
			} else {
				s.SetColor(x, y, pixelOff, core.ColorDim)
			}
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
