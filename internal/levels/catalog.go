// Package levels holds the fixed, immutable maze catalog.
package levels

import (
	"strings"

	"github.com/vovakirdan/maze-master/internal/core"
)

// MaxDim is the largest supported grid side; one row fits in a uint16.
const MaxDim = 16

// Definition describes one maze. Walls are stored as one 16-bit mask per
// row with the most significant bit at column 0; callers only ever see
// IsWall.
type Definition struct {
	Name      string
	Dim       int
	StarQuota int
	Start     core.Point
	Exit      core.Point

	rows [MaxDim]uint16
}

// InBounds reports whether p lies inside the grid.
func (d *Definition) InBounds(p core.Point) bool {
	return p.Col >= 0 && p.Col < d.Dim && p.Row >= 0 && p.Row < d.Dim
}

// IsWall reports whether p is blocked. Every cell outside the grid is a
// wall.
func (d *Definition) IsWall(p core.Point) bool {
	if !d.InBounds(p) {
		return true
	}
	return d.rows[p.Row]&(1<<(MaxDim-1-p.Col)) != 0
}

// OpenCells counts the cells that are not walls.
func (d *Definition) OpenCells() int {
	n := 0
	for r := 0; r < d.Dim; r++ {
		for c := 0; c < d.Dim; c++ {
			if !d.IsWall(core.Point{Col: c, Row: r}) {
				n++
			}
		}
	}
	return n
}

// Preview renders the maze as text: '#' wall, 'S' start, 'E' exit.
func (d *Definition) Preview() string {
	var b strings.Builder
	for r := 0; r < d.Dim; r++ {
		for c := 0; c < d.Dim; c++ {
			p := core.Point{Col: c, Row: r}
			switch {
			case p == d.Start:
				b.WriteByte('S')
			case p == d.Exit:
				b.WriteByte('E')
			case d.IsWall(p):
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func newLevel(name string, dim, quota int, rows ...uint16) Definition {
	d := Definition{
		Name:      name,
		Dim:       dim,
		StarQuota: quota,
		Start:     core.Point{Col: 1, Row: 1},
		Exit:      core.Point{Col: dim - 2, Row: dim - 2},
	}
	copy(d.rows[:], rows)
	return d
}

var catalog = [...]Definition{
	newLevel("Warmup", 8, 2,
		0b1111111100000000,
		0b1000000100000000,
		0b1110000100000000,
		0b1000111100000000,
		0b1110000100000000,
		0b1000111100000000,
		0b1000000100000000,
		0b1111111100000000,
	),
	newLevel("Corridors", 12, 6,
		0b1111111111110000,
		0b1000000001110000,
		0b1111000001110000,
		0b1000000111110000,
		0b1001100000010000,
		0b1001100011110000,
		0b1000000000010000,
		0b1001111100010000,
		0b1001111100010000,
		0b1001111100010000,
		0b1000000000010000,
		0b1111111111110000,
	),
	newLevel("Labyrinth", 16, 10,
		0b1111111111111111,
		0b1000001111100001,
		0b1000000000000001,
		0b1011111000110001,
		0b1000000000110001,
		0b1000001111110001,
		0b1011111111110001,
		0b1011111111110001,
		0b1000001111000001,
		0b1001111100000001,
		0b1001111101111001,
		0b1001111101110001,
		0b1000000001110001,
		0b1011110001110001,
		0b1000000000000001,
		0b1111111111111111,
	),
}

// Count returns the number of levels.
func Count() int { return len(catalog) }

// Get returns level i. It panics if i is out of range.
func Get(i int) *Definition { return &catalog[i] }

// MaxQuota returns the largest star quota in the catalog; the entity set is
// sized from it.
func MaxQuota() int {
	m := 0
	for i := range catalog {
		m = max(m, catalog[i].StarQuota)
	}
	return m
}
