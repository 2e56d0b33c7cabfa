package maze

import "github.com/vovakirdan/maze-master/internal/core"

// MaxEntities bounds the entity set. It must cover the largest star quota
// in the level catalog.
const MaxEntities = 10

// Kind is the type of a collectible entity.
type Kind uint8

const (
	KindStar Kind = iota + 1
)

// Entity is one collectible placed in the maze.
type Entity struct {
	Pos  core.Point
	Kind Kind
}

// EntitySet is a fixed-capacity, unordered collection of live entities.
// Removal swaps the last live entity into the freed slot.
type EntitySet struct {
	items [MaxEntities]Entity
	n     int
}

// Len returns the number of live entities.
func (s *EntitySet) Len() int { return s.n }

// At returns the i-th live entity.
func (s *EntitySet) At(i int) Entity { return s.items[i] }

// Reset empties the set.
func (s *EntitySet) Reset() { s.n = 0 }

// Add appends e. It reports false when the set is full.
func (s *EntitySet) Add(e Entity) bool {
	if s.n == len(s.items) {
		return false
	}
	s.items[s.n] = e
	s.n++
	return true
}

// Contains reports whether any live entity occupies p.
func (s *EntitySet) Contains(p core.Point) bool {
	for i := 0; i < s.n; i++ {
		if s.items[i].Pos == p {
			return true
		}
	}
	return false
}

// RemoveAt drops the i-th entity by moving the last live one into its slot.
func (s *EntitySet) RemoveAt(i int) {
	s.n--
	s.items[i] = s.items[s.n]
	s.items[s.n] = Entity{}
}

// CollectAt removes every entity of kind k at p and returns how many were
// removed. The scan re-checks slot i after a swap, so the swapped-in entity
// is inspected exactly once.
func (s *EntitySet) CollectAt(p core.Point, k Kind) int {
	removed := 0
	for i := 0; i < s.n; {
		if s.items[i].Pos == p && s.items[i].Kind == k {
			s.RemoveAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Positions returns the cells of all live entities.
func (s *EntitySet) Positions() []core.Point {
	out := make([]core.Point, s.n)
	for i := 0; i < s.n; i++ {
		out[i] = s.items[i].Pos
	}
	return out
}
