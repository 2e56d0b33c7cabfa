package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these onto terminal styles.
type Color uint8

// Colors used by the emulated device panels.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
	ColorDim
)
