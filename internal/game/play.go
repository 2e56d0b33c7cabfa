package game

import (
	"fmt"

	"github.com/vovakirdan/maze-master/internal/audio"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/render"
	"github.com/vovakirdan/maze-master/internal/score"
)

type playingState struct{}

func (s *playingState) Enter(c *Context) {
	c.HUD.Init()
	c.lastHUD = longAgo
}

func (s *playingState) Poll(c *Context) StateID {
	next := Playing

	if dir := c.MoveDirection(); dir != core.DirNone && c.Now-c.lastMove > c.Config.Timing.MoveCooldown() {
		res := c.Maze.Move(dir, c.Now)
		if res.Moved {
			c.lastMove = c.Now
		}
		if res.Collected > 0 {
			c.Play(audio.StarCollected)
		}
		if res.Cleared {
			c.Play(audio.LevelComplete)
			c.Logger.Info("level cleared", "level", c.Maze.Level(), "bonus", res.Bonus, "score", c.Maze.Score())
		}
		if res.Victory {
			next = Victory
		}
	}

	if next == Playing {
		v := render.View{
			Maze:     c.Maze.Snapshot(),
			StarOn:   c.StarBlink.On(),
			PlayerOn: c.PlayerBlink.On(),
		}
		// The text display is slow to rewrite; it follows at most once per
		// refresh period while the matrix tracks every tick.
		if c.Now-c.lastHUD >= c.Config.Timing.HUDRefresh() {
			c.HUD.Render(v)
			c.lastHUD = c.Now
		}
		c.Matrix.Render(v)

		if c.Input.JustPressed {
			c.Play(audio.MenuSelect)
			next = Paused
		}
	}
	return next
}

// pausedState offers Continue or Exit. The level timer keeps running.
type pausedState struct {
	exit bool
}

func (s *pausedState) Enter(c *Context) {
	s.exit = false
	s.draw(c)
}

func (s *pausedState) Poll(c *Context) StateID {
	if c.Flip() {
		s.exit = !s.exit
		s.draw(c)
	}
	if !c.Input.JustPressed {
		return Paused
	}
	c.Play(audio.MenuSelect)
	if s.exit {
		c.recordRun("", false)
		return MainMenu
	}
	return Playing
}

func (s *pausedState) draw(c *Context) {
	if s.exit {
		c.Text("PAUSED", " Continue >Exit")
	} else {
		c.Text("PAUSED", ">Continue  Exit")
	}
}

type victoryState struct{}

func (s *victoryState) Enter(c *Context) {
	c.Text("VICTORY!", fmt.Sprintf("Score: %d", c.Maze.Score()))
	c.Matrix.Show(render.IconTrophy)
	c.Play(audio.Victory)
	c.Logger.Info("victory", "score", c.Maze.Score(), "time", c.Now-c.runStart)
}

func (s *victoryState) Poll(c *Context) StateID {
	if !c.Input.JustPressed {
		return Victory
	}
	if c.Scores.Qualifies(c.Maze.Score()) {
		return NameEntry
	}
	c.recordRun("", true)
	return MainMenu
}

type nameEntryState struct {
	buf score.NameBuffer
}

func (s *nameEntryState) Enter(c *Context) {
	s.buf = score.NewNameBuffer()
	s.draw(c)
}

func (s *nameEntryState) Poll(c *Context) StateID {
	if c.Input.Deflected() && c.Ready() {
		// Up advances the letter, down goes back.
		s.buf.Cycle(-c.Input.Y)
		s.buf.MoveCursor(c.Input.X)
		c.Stepped()
		s.draw(c)
	}

	if !c.Input.JustPressed {
		return NameEntry
	}
	rank := c.Scores.Record(s.buf.Entry(c.Maze.Score()))
	c.highScoreRank = max(0, rank)
	c.recordRun(s.buf.String(), true)
	c.Play(audio.MenuSelect)
	return HighScores
}

func (s *nameEntryState) draw(c *Context) {
	c.Text("New High Score!", "Name: "+bracketed(s.buf.String(), s.buf.Cursor()))
}

// bracketed marks the active letter, "A[B]C".
func bracketed(name string, cursor int) string {
	return name[:cursor] + "[" + name[cursor:cursor+1] + "]" + name[cursor+1:]
}
