package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-master/internal/audio"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/render"
	"github.com/vovakirdan/maze-master/internal/score"
)

const (
	setLCD = iota
	setMatrix
	setSound
	setTilt
	setReset
	setBack
	settingsCount
)

var settingsTargets = [settingsCount]StateID{
	setLCD:    SettingsBrightnessLCD,
	setMatrix: SettingsBrightnessMatrix,
	setSound:  SettingsSoundToggle,
	setTilt:   SettingsTiltToggle,
	setReset:  SettingsResetScoresConfirm,
	setBack:   MainMenu,
}

type settingsMenuState struct {
	sel int
}

func (s *settingsMenuState) Enter(c *Context) {
	c.Matrix.Show(render.IconSettings)
	s.draw(c)
}

func (s *settingsMenuState) Poll(c *Context) StateID {
	if d := c.Nav(c.Input.Y); d != 0 {
		s.sel = core.Wrap(s.sel+d, settingsCount)
		s.draw(c)
	}
	if !c.Input.JustPressed {
		return SettingsMenu
	}
	c.Play(audio.MenuSelect)
	return settingsTargets[s.sel]
}

func (s *settingsMenuState) draw(c *Context) {
	c.Text(">"+settingsLabel(c, s.sel), "Back: Hold Btn")
}

func settingsLabel(c *Context, item int) string {
	st := c.Scores.Settings()
	switch item {
	case setLCD:
		return "LCD Brightness"
	case setMatrix:
		return "Mat Brightness"
	case setSound:
		return "Sound: " + onOff(st.Sound)
	case setTilt:
		if !c.Sampler.TiltAvailable() {
			return "IMU Ctr: N/A"
		}
		return "IMU Ctr: " + onOff(st.Tilt)
	case setReset:
		return "Reset Scores"
	default:
		return "Back to Menu"
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

type sliderTarget int

const (
	sliderLCD sliderTarget = iota
	sliderMatrix
)

// sliderState edits one brightness level on the user scale.
type sliderState struct {
	target sliderTarget
}

func (s *sliderState) id() StateID {
	if s.target == sliderLCD {
		return SettingsBrightnessLCD
	}
	return SettingsBrightnessMatrix
}

func (s *sliderState) value(st score.Settings) int {
	if s.target == sliderLCD {
		return st.LCDBrightness
	}
	return st.MatrixBrightness
}

func (s *sliderState) Enter(c *Context) {
	s.draw(c, s.value(c.Scores.Settings()))
}

func (s *sliderState) Poll(c *Context) StateID {
	if c.Input.X != 0 && c.Ready() {
		cur := s.value(c.Scores.Settings())
		next := core.Clamp(cur+c.Input.X, score.MinBrightness, score.MaxBrightness)
		if next != cur {
			st := c.Scores.UpdateSettings(func(st *score.Settings) {
				if s.target == sliderLCD {
					st.LCDBrightness = next
				} else {
					st.MatrixBrightness = next
				}
			})
			c.ApplyBrightness(st)
			c.Stepped()
			s.draw(c, next)
		}
	}

	if c.Input.JustPressed {
		c.Play(audio.MenuSelect)
		return SettingsMenu
	}
	return s.id()
}

func (s *sliderState) draw(c *Context, v int) {
	title := "LCD Bright: "
	if s.target == sliderMatrix {
		title = "Mat Bright: "
	}
	bars := core.MapRange(v, score.MinBrightness, score.MaxBrightness, 1, render.LCDWidth)
	c.Text(fmt.Sprintf("%s%d", title, v), strings.Repeat("#", bars))
}

type toggleTarget int

const (
	toggleSound toggleTarget = iota
	toggleTilt
)

// toggleState flips one boolean setting on any horizontal deflection.
type toggleState struct {
	target toggleTarget
}

func (s *toggleState) id() StateID {
	if s.target == toggleSound {
		return SettingsSoundToggle
	}
	return SettingsTiltToggle
}

func (s *toggleState) Enter(c *Context) {
	s.draw(c)
}

func (s *toggleState) Poll(c *Context) StateID {
	if c.Input.X != 0 && c.Ready() && s.flippable(c) {
		st := c.Scores.UpdateSettings(func(st *score.Settings) {
			if s.target == toggleSound {
				st.Sound = !st.Sound
			} else {
				st.Tilt = !st.Tilt
			}
		})
		if s.target == toggleSound {
			c.Audio.SetEnabled(st.Sound)
		} else {
			c.Sampler.SetTiltEnabled(st.Tilt)
		}
		c.Stepped()
		s.draw(c)
	}

	if c.Input.JustPressed {
		c.Play(audio.MenuSelect)
		return SettingsMenu
	}
	return s.id()
}

func (s *toggleState) flippable(c *Context) bool {
	return s.target == toggleSound || c.Sampler.TiltAvailable()
}

func (s *toggleState) draw(c *Context) {
	st := c.Scores.Settings()
	switch {
	case s.target == toggleSound:
		c.Text("Sound: "+onOff(st.Sound), "Move Joy to Flip")
	case !c.Sampler.TiltAvailable():
		c.Text("IMU Control: N/A", "No sensor found")
	default:
		c.Text("IMU Control: "+onOff(st.Tilt), "Move Joy to Flip")
	}
}

// resetState asks before wiping the high-score table. No is preselected.
type resetState struct {
	yes bool
}

func (s *resetState) Enter(c *Context) {
	s.yes = false
	s.draw(c)
}

func (s *resetState) Poll(c *Context) StateID {
	if c.Flip() {
		s.yes = !s.yes
		s.draw(c)
	}
	if !c.Input.JustPressed {
		return SettingsResetScoresConfirm
	}
	if s.yes {
		c.Scores.ResetScores()
	}
	c.Play(audio.MenuSelect)
	return SettingsMenu
}

func (s *resetState) draw(c *Context) {
	if s.yes {
		c.Text("Reset Scores?", ">YES NO")
	} else {
		c.Text("Reset Scores?", " YES >NO")
	}
}
