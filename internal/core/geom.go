// Package core provides fundamental types shared by the maze engine and the
// device collaborators it drives. It has no external dependencies so the
// engine packages stay pure and testable.
package core

// Point is a cell coordinate on the maze grid. Col grows to the right,
// Row grows downward.
type Point struct {
	Col, Row int
}

// Add returns p offset by the given signed delta.
func (p Point) Add(d Point) Point {
	return Point{Col: p.Col + d.Col, Row: p.Row + d.Row}
}

// Manhattan returns the taxicab distance between two cells.
func (p Point) Manhattan(o Point) int {
	return Abs(p.Col-o.Col) + Abs(p.Row-o.Row)
}

// Direction is one of the four cardinal single-step moves.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the signed single-cell offset for the direction.
// Moves are never diagonal.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Row: -1}
	case DirDown:
		return Point{Row: 1}
	case DirLeft:
		return Point{Col: -1}
	case DirRight:
		return Point{Col: 1}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Rect represents an axis-aligned area on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Wrap returns val modulo n, always in [0, n).
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	return ((val % n) + n) % n
}

// MapRange linearly maps v from [inLo, inHi] onto [outLo, outHi].
// Integer arithmetic, truncating like the classic Arduino map().
func MapRange(v, inLo, inHi, outLo, outHi int) int {
	if inHi == inLo {
		return outLo
	}
	return (v-inLo)*(outHi-outLo)/(inHi-inLo) + outLo
}
