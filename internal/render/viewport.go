package render

import (
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/maze"
)

// MatrixSize is the side of the LED matrix.
const MatrixSize = 8

// Frame is one matrix image, a byte per row with bit 7 as the leftmost
// column.
type Frame [MatrixSize]uint8

// Set lights (col, row) when it lies inside the frame.
func (f *Frame) Set(col, row int) {
	if col < 0 || col >= MatrixSize || row < 0 || row >= MatrixSize {
		return
	}
	f[row] |= 1 << (MatrixSize - 1 - col)
}

// Lit reports whether (col, row) is on.
func (f *Frame) Lit(col, row int) bool {
	if col < 0 || col >= MatrixSize || row < 0 || row >= MatrixSize {
		return false
	}
	return f[row]&(1<<(MatrixSize-1-col)) != 0
}

// Offset returns the window origin along one axis that centers pos, clamped
// so the window stays inside [0, dim).
func Offset(dim, window, pos int) int {
	if dim <= window {
		return 0
	}
	return core.Clamp(pos-window/2, 0, dim-window)
}

// View is what one matrix redraw needs.
type View struct {
	Maze     maze.Snapshot
	StarOn   bool
	PlayerOn bool
}

// Compose renders the window around the player. Walls are static, stars
// follow the star clock, and the exit stays solid until the quota is met
// and then blinks with the stars. The player follows its own clock.
func Compose(v View) Frame {
	var f Frame
	s := v.Maze
	lv := s.Level
	colOff := Offset(lv.Dim, MatrixSize, s.Player.Col)
	rowOff := Offset(lv.Dim, MatrixSize, s.Player.Row)

	for r := 0; r < MatrixSize; r++ {
		for c := 0; c < MatrixSize; c++ {
			p := core.Point{Col: c + colOff, Row: r + rowOff}
			if lv.InBounds(p) && lv.IsWall(p) {
				f.Set(c, r)
			}
		}
	}

	if v.StarOn {
		for _, p := range s.Stars {
			f.Set(p.Col-colOff, p.Row-rowOff)
		}
	}

	if !s.QuotaMet() || v.StarOn {
		f.Set(lv.Exit.Col-colOff, lv.Exit.Row-rowOff)
	}

	if v.PlayerOn {
		f.Set(s.Player.Col-colOff, s.Player.Row-rowOff)
	}
	return f
}
