// Package maze implements the per-run simulation: player movement against
// the wall mask, star collection, level clears and random star placement.
package maze

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/levels"
	"github.com/vovakirdan/maze-master/internal/score"
)

// MoveResult reports what a single movement request did. The caller owns
// sounds and state transitions.
type MoveResult struct {
	Moved     bool
	Collected int  // stars picked up on the destination cell
	Cleared   bool // the exit was reached with the quota met
	Bonus     int  // time bonus added on clear
	Victory   bool // the cleared level was the last one
}

// Engine owns the mutable state of one run.
type Engine struct {
	scoring   config.ScoringConfig
	placement config.PlacementConfig
	rng       *rand.Rand

	level      int
	def        *levels.Definition
	player     core.Point
	stars      EntitySet
	quota      int // stars needed to open the exit
	collected  int
	score      int
	levelStart time.Duration
	finished   bool
}

// New creates an engine. rng drives star placement.
func New(cfg config.Config, rng *rand.Rand) *Engine {
	return &Engine{
		scoring:   cfg.Scoring,
		placement: cfg.Placement,
		rng:       rng,
		def:       levels.Get(0),
	}
}

// StartRun resets the score and starts the first level.
func (e *Engine) StartRun(now time.Duration) {
	e.score = 0
	e.finished = false
	e.StartLevel(0, now)
}

// StartLevel puts the player on level i's start cell, regenerates the stars
// and restarts the level timer.
func (e *Engine) StartLevel(i int, now time.Duration) {
	e.level = i
	e.def = levels.Get(i)
	e.player = e.def.Start
	e.collected = 0
	e.levelStart = now
	e.PlaceStars()
}

// PlaceStars fills the entity set by rejection sampling and returns how many
// stars were placed. Fewer than the level quota is a valid outcome once the
// attempt budget runs out; the exit then opens after the stars that exist.
func (e *Engine) PlaceStars() int {
	e.stars.Reset()
	want := min(e.def.StarQuota, MaxEntities)
	for attempts := 0; e.stars.Len() < want && attempts < e.placement.MaxAttempts; attempts++ {
		p := core.Point{Col: e.rng.Intn(e.def.Dim), Row: e.rng.Intn(e.def.Dim)}
		if !e.placeable(p) {
			continue
		}
		e.stars.Add(Entity{Pos: p, Kind: KindStar})
	}
	e.quota = e.stars.Len()
	return e.quota
}

func (e *Engine) placeable(p core.Point) bool {
	switch {
	case e.def.IsWall(p):
		return false
	case p.Manhattan(e.def.Start) < e.placement.MinStartDistance:
		return false
	case p.Manhattan(e.def.Exit) < e.placement.MinExitDistance:
		return false
	case p == e.def.Start || p == e.def.Exit:
		return false
	}
	return !e.stars.Contains(p)
}

// Move applies one cardinal step. A blocked step changes nothing.
func (e *Engine) Move(dir core.Direction, now time.Duration) MoveResult {
	var res MoveResult
	if e.finished || dir == core.DirNone {
		return res
	}

	next := e.player.Add(dir.Delta())
	if e.def.IsWall(next) {
		return res
	}
	e.player = next
	res.Moved = true

	if n := e.stars.CollectAt(next, KindStar); n > 0 {
		res.Collected = n
		e.collected += n
		e.score += n * e.scoring.PointsPerStar
	}

	if next != e.def.Exit || e.collected < e.quota {
		return res
	}

	res.Cleared = true
	res.Bonus = score.ClearBonus(now-e.levelStart, e.scoring)
	e.score += res.Bonus

	if e.level+1 < levels.Count() {
		e.StartLevel(e.level+1, now)
	} else {
		e.finished = true
		res.Victory = true
	}
	return res
}

// Level returns the current level index.
func (e *Engine) Level() int { return e.level }

// Definition returns the current level.
func (e *Engine) Definition() *levels.Definition { return e.def }

// Player returns the player cell.
func (e *Engine) Player() core.Point { return e.player }

// Score returns the run score.
func (e *Engine) Score() int { return e.score }

// Collected returns the stars picked up on the current level.
func (e *Engine) Collected() int { return e.collected }

// Stars returns the live star set.
func (e *Engine) Stars() *EntitySet { return &e.stars }

// Finished reports whether the last level has been cleared.
func (e *Engine) Finished() bool { return e.finished }

// Elapsed returns the time spent on the current level.
func (e *Engine) Elapsed(now time.Duration) time.Duration {
	return now - e.levelStart
}

// Quota returns the stars needed to open the exit on this level.
func (e *Engine) Quota() int { return e.quota }

// QuotaMet reports whether the exit is open.
func (e *Engine) QuotaMet() bool {
	return e.collected >= e.quota
}
