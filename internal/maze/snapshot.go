package maze

import (
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/levels"
)

// Snapshot is a read-only copy of the run state handed to renderers.
type Snapshot struct {
	LevelIndex int
	Level      *levels.Definition
	Player     core.Point
	Stars      []core.Point
	Collected  int
	Quota      int
	Score      int
}

// QuotaMet reports whether enough stars were collected to open the exit.
func (s Snapshot) QuotaMet() bool {
	return s.Collected >= s.Quota
}

// Snapshot returns the current run state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		LevelIndex: e.level,
		Level:      e.def,
		Player:     e.player,
		Stars:      e.stars.Positions(),
		Collected:  e.collected,
		Quota:      e.quota,
		Score:      e.score,
	}
}
