// Package game is the top-level state machine. Each poll tick it samples
// input, services audio and blink clocks, applies the long-press back
// gesture and dispatches to the handler of the current state.
package game

// StateID enumerates the application states. The set is flat.
type StateID int

const (
	Intro StateID = iota
	MainMenu
	HighScores
	SettingsMenu
	SettingsBrightnessLCD
	SettingsBrightnessMatrix
	SettingsSoundToggle
	SettingsTiltToggle
	SettingsResetScoresConfirm
	AboutScreen
	HowToPlayScreen
	Playing
	Paused
	Victory
	NameEntry
	stateCount
)

var stateNames = [stateCount]string{
	"intro",
	"main-menu",
	"high-scores",
	"settings",
	"settings-lcd-brightness",
	"settings-matrix-brightness",
	"settings-sound",
	"settings-tilt",
	"settings-reset-scores",
	"about",
	"how-to-play",
	"playing",
	"paused",
	"victory",
	"name-entry",
}

func (s StateID) String() string {
	if s < 0 || s >= stateCount {
		return "unknown"
	}
	return stateNames[s]
}

// State is the handler of one StateID.
type State interface {
	// Enter runs once per transition into the state and draws its static
	// content.
	Enter(c *Context)
	// Poll runs every tick while the state is current and returns the
	// next state, which is its own ID to stay.
	Poll(c *Context) StateID
}

// longPressExempt lists the states the hold-to-menu gesture never leaves.
func longPressExempt(s StateID) bool {
	return s == Intro || s == Playing || s == NameEntry
}
