package game

import (
	"io"
	"math/rand"
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

// Deps are the collaborators the machine drives.
type Deps struct {
	Config config.Config
	Logger *log.Logger
	Rand   *rand.Rand
	Clock  func() time.Time // wall clock for run history timestamps

	LCD    core.TextDisplay
	Matrix core.MatrixDisplay
	Buzzer core.Buzzer        // nil for silence
	Accel  core.Accelerometer // nil when no tilt sensor is fitted
	Scores *score.Keeper      // already loaded
}

// Machine owns the current state and the per-state handlers.
type Machine struct {
	ctx     *Context
	states  [stateCount]State
	current StateID
	started bool
}

// NewMachine wires the engine components around the collaborators.
func NewMachine(d Deps) *Machine {
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}

	ctx := &Context{
		Config:      d.Config,
		Logger:      d.Logger,
		Clock:       d.Clock,
		LCD:         d.LCD,
		Matrix:      render.NewMatrixRenderer(d.Matrix),
		HUD:         render.NewLCDRenderer(d.LCD),
		Audio:       audio.NewScheduler(d.Buzzer),
		Sampler:     input.NewSampler(d.Config.Input, d.Accel),
		Maze:        maze.New(d.Config, d.Rand),
		Scores:      d.Scores,
		StarBlink:   render.NewBlinkClock(d.Config.Timing.StarBlink()),
		PlayerBlink: render.NewBlinkClock(d.Config.Timing.PlayerBlink()),
		lastStep:    longAgo,
		lastMove:    longAgo,
	}

	m := &Machine{ctx: ctx}
	m.states = [stateCount]State{
		Intro:                      &introState{},
		MainMenu:                   &mainMenuState{},
		HighScores:                 &highScoresState{},
		SettingsMenu:               &settingsMenuState{},
		SettingsBrightnessLCD:      &sliderState{target: sliderLCD},
		SettingsBrightnessMatrix:   &sliderState{target: sliderMatrix},
		SettingsSoundToggle:        &toggleState{target: toggleSound},
		SettingsTiltToggle:         &toggleState{target: toggleTilt},
		SettingsResetScoresConfirm: &resetState{},
		AboutScreen:                &aboutState{},
		HowToPlayScreen:            &howToState{},
		Playing:                    &playingState{},
		Paused:                     &pausedState{},
		Victory:                    &victoryState{},
		NameEntry:                  &nameEntryState{},
	}
	return m
}

// Start applies the persisted settings and enters Intro. A persisted tilt
// preference is turned off when no sensor is present.
func (m *Machine) Start(now time.Duration) {
	c := m.ctx
	c.Now = now

	s := c.Scores.Settings()
	if s.Tilt && !c.Sampler.TiltAvailable() {
		c.Logger.Info("tilt sensor not found, falling back to joystick")
		s = c.Scores.UpdateSettings(func(s *score.Settings) { s.Tilt = false })
	}
	c.Sampler.SetTiltEnabled(s.Tilt)
	c.Audio.SetEnabled(s.Sound)
	c.Matrix.Init()
	c.ApplyBrightness(s)

	m.started = true
	m.current = Intro
	m.states[Intro].Enter(c)
}

// Tick runs one poll cycle.
func (m *Machine) Tick(raw core.RawInput, now time.Duration) {
	if !m.started {
		m.Start(now)
	}
	c := m.ctx
	c.Now = now

	c.Input = c.Sampler.Sample(raw, now)
	c.Audio.Update(now)
	c.StarBlink.Update(now)
	c.PlayerBlink.Update(now)

	if !longPressExempt(m.current) && c.Input.LongPress(now, c.Config.Input.LongPress()) {
		c.Sampler.Consume()
		c.Input.Pressed = false
		c.Input.JustPressed = false
		if m.current != MainMenu {
			m.transition(MainMenu)
		}
	}

	if next := m.states[m.current].Poll(c); next != m.current {
		m.transition(next)
	}
}

func (m *Machine) transition(next StateID) {
	m.ctx.Logger.Debug("state change", "from", m.current, "to", next)
	m.current = next
	m.states[next].Enter(m.ctx)
}

// State returns the current state.
func (m *Machine) State() StateID {
	return m.current
}

// Context exposes the shared context for diagnostics.
func (m *Machine) Context() *Context {
	return m.ctx
}
