package game

import (
	"fmt"

	"github.com/vovakirdan/maze-master/internal/audio"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/render"
	"github.com/vovakirdan/maze-master/internal/score"
)

type introState struct{}

func (s *introState) Enter(c *Context) {
	c.Text("  MAZE MASTER", " Press Button")
	c.Matrix.Show(render.IconPlay)
	c.Play(audio.Startup)
}

func (s *introState) Poll(c *Context) StateID {
	if c.Input.JustPressed {
		c.Play(audio.MenuSelect)
		return MainMenu
	}
	return Intro
}

type menuItem struct {
	label string
	icon  render.Frame
	next  StateID
}

var mainMenuItems = []menuItem{
	{"Start Game", render.IconPlay, Playing},
	{"High Scores", render.IconTrophy, HighScores},
	{"Settings", render.IconSettings, SettingsMenu},
	{"About", render.IconInfo, AboutScreen},
	{"How to Play", render.IconQuestion, HowToPlayScreen},
}

// mainMenuState keeps its selection across visits.
type mainMenuState struct {
	sel   int
	drawn int
}

func (s *mainMenuState) Enter(c *Context) {
	s.draw(c)
}

func (s *mainMenuState) Poll(c *Context) StateID {
	// Up selects the previous entry, down the next.
	if d := c.Nav(c.Input.Y); d != 0 {
		s.sel = core.Wrap(s.sel+d, len(mainMenuItems))
	}
	if s.sel != s.drawn {
		s.draw(c)
	}

	if !c.Input.JustPressed {
		return MainMenu
	}
	c.Play(audio.MenuSelect)
	item := mainMenuItems[s.sel]
	if item.next == Playing {
		c.startRun()
	}
	return item.next
}

func (s *mainMenuState) draw(c *Context) {
	item := mainMenuItems[s.sel]
	c.Text(">"+item.label, "Select: Button")
	c.Matrix.Show(item.icon)
	s.drawn = s.sel
}

type highScoresState struct {
	idx int
}

func (s *highScoresState) Enter(c *Context) {
	s.idx = c.highScoreRank
	c.highScoreRank = 0
	c.Matrix.Show(render.IconTrophy)
	s.draw(c)
}

func (s *highScoresState) Poll(c *Context) StateID {
	if d := c.Nav(c.Input.Y); d != 0 {
		s.idx = core.Wrap(s.idx+d, score.TableSize)
		s.draw(c)
	}
	if c.Input.JustPressed {
		return MainMenu
	}
	return HighScores
}

func (s *highScoresState) draw(c *Context) {
	e := c.Scores.Table()[s.idx]
	c.Text("High Scores:", fmt.Sprintf("%d. %s %d", s.idx+1, e.NameString(), e.Score))
}

type aboutState struct{}

func (s *aboutState) Enter(c *Context) {
	c.Text("Maze Master v1", "By MateiHsn")
	c.Matrix.Show(render.IconInfo)
}

func (s *aboutState) Poll(c *Context) StateID {
	if c.Input.JustPressed {
		return MainMenu
	}
	return AboutScreen
}

type howToState struct {
	page int
}

func (s *howToState) Enter(c *Context) {
	s.page = 0
	c.Matrix.Show(render.IconQuestion)
	s.draw(c)
}

func (s *howToState) Poll(c *Context) StateID {
	if c.Flip() {
		s.page ^= 1
		s.draw(c)
	}
	if c.Input.JustPressed {
		return MainMenu
	}
	return HowToPlayScreen
}

func (s *howToState) draw(c *Context) {
	if s.page == 0 {
		c.Text("Collect Stars", "Reach the Exit")
		return
	}
	if c.Sampler.TiltEnabled() {
		c.Text("Tilt to Move", "Press Btn: Pause")
	} else {
		c.Text("Joy to Move", "Press Btn: Pause")
	}
}
