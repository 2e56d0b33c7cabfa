package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-master/internal/audio"
	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/input"
	"github.com/vovakirdan/maze-master/internal/maze"
	"github.com/vovakirdan/maze-master/internal/render"
	"github.com/vovakirdan/maze-master/internal/score"
)

// longAgo seeds cooldown timestamps so the first step is never gated.
const longAgo = -time.Hour

// Context is the single mutable snapshot shared by every state handler.
// Only the poll loop touches it.
type Context struct {
	Now   time.Duration
	Input input.Frame

	Config config.Config
	Logger *log.Logger
	Clock  func() time.Time

	LCD     core.TextDisplay
	Matrix  *render.MatrixRenderer
	HUD     *render.LCDRenderer
	Audio   *audio.Scheduler
	Sampler *input.Sampler
	Maze    *maze.Engine
	Scores  *score.Keeper

	StarBlink   *render.BlinkClock
	PlayerBlink *render.BlinkClock

	lastStep time.Duration // shared menu cooldown
	lastMove time.Duration
	lastHUD  time.Duration
	runStart time.Duration

	// highScoreRank is the row the high-score browser opens on.
	highScoreRank int
}

// Ready reports whether the shared menu cooldown has elapsed.
func (c *Context) Ready() bool {
	return c.Now-c.lastStep > c.Config.Timing.MenuCooldown()
}

// Stepped restarts the menu cooldown and plays the move cue.
func (c *Context) Stepped() {
	c.lastStep = c.Now
	c.Audio.Play(audio.MenuMove, c.Now)
}

// Nav returns axis (-1, 0 or +1) when the cooldown allows a step, marking
// the step taken, and 0 otherwise.
func (c *Context) Nav(axis int) int {
	if axis == 0 || !c.Ready() {
		return 0
	}
	c.Stepped()
	return axis
}

// Flip reports whether either horizontal direction asks to toggle a binary
// choice, marking the step taken.
func (c *Context) Flip() bool {
	return c.Nav(c.Input.X) != 0
}

// Play starts a sound effect now.
func (c *Context) Play(e audio.Effect) {
	c.Audio.Play(e, c.Now)
}

// Text shows two lines on the text display.
func (c *Context) Text(top, bottom string) {
	render.ShowText(c.LCD, top, bottom)
}

// ApplyBrightness maps the user brightness levels onto the hardware.
func (c *Context) ApplyBrightness(s score.Settings) {
	d := c.Config.Display
	c.LCD.SetBacklight(uint8(core.MapRange(s.LCDBrightness,
		score.MinBrightness, score.MaxBrightness, d.BacklightMin, d.BacklightMax)))
	c.Matrix.SetIntensity(uint8(core.MapRange(s.MatrixBrightness,
		score.MinBrightness, score.MaxBrightness, d.MatrixIntensityMin, d.MatrixIntensityMax)))
}

// MoveDirection returns the requested player move: the tilt sensor when it
// is enabled, the joystick otherwise.
func (c *Context) MoveDirection() core.Direction {
	if c.Sampler.TiltEnabled() {
		return c.Input.Tilt
	}
	return c.Input.Joystick()
}

func (c *Context) startRun() {
	c.Maze.StartRun(c.Now)
	c.runStart = c.Now
	c.lastMove = longAgo
	c.Logger.Info("run started")
}

// recordRun appends the finished or abandoned run to the history.
func (c *Context) recordRun(name string, victory bool) {
	c.Scores.RecordRun(score.Run{
		Name:     name,
		Score:    c.Maze.Score(),
		Level:    c.Maze.Level() + 1,
		Victory:  victory,
		Duration: c.Now - c.runStart,
		PlayedAt: c.Clock(),
	})
}
