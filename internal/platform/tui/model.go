package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-master/internal/config"
	"github.com/vovakirdan/maze-master/internal/core"
	"github.com/vovakirdan/maze-master/internal/game"
	"github.com/vovakirdan/maze-master/internal/score"
)

// Options configure the emulated console.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Scores  *score.Keeper // already loaded
	Buzzer  core.Buzzer   // nil for silence
	Logger  *log.Logger
}

// Model is the Bubble Tea model running the game on emulated devices.
type Model struct {
	machine *game.Machine
	lcd     *LCDPanel
	matrix  *MatrixPanel
	pad     *Pad
	buzzer  core.Buzzer
	screen  *core.Screen

	keys     KeyMap
	help     help.Model
	tickRate int
	start    time.Time
	width    int
	height   int
	quitting bool
}

// NewModel creates the console and the state machine behind it.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	lcd := NewLCDPanel()
	matrix := NewMatrixPanel()
	machine := game.NewMachine(game.Deps{
		Config: opts.Config,
		Logger: opts.Logger,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		LCD:    lcd,
		Matrix: matrix,
		Buzzer: opts.Buzzer,
		Accel:  core.NoAccelerometer{},
		Scores: opts.Scores,
	})

	return Model{
		machine:  machine,
		lcd:      lcd,
		matrix:   matrix,
		pad:      NewPad(opts.Config.Input),
		buzzer:   opts.Buzzer,
		screen:   core.NewScreen(screenWidth, screenHeight),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickRate: cfg.TickRate,
		start:    time.Now(),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Since(m.start))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step(time.Time(msg).Sub(m.start))
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey feeds keyboard input into the pad.
func (m Model) handleKey(msg tea.KeyMsg, now time.Duration) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.buzzer != nil {
			m.buzzer.NoTone()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Up):
		m.pad.Deflect(core.DirUp, now)
	case key.Matches(msg, m.keys.Down):
		m.pad.Deflect(core.DirDown, now)
	case key.Matches(msg, m.keys.Left):
		m.pad.Deflect(core.DirLeft, now)
	case key.Matches(msg, m.keys.Right):
		m.pad.Deflect(core.DirRight, now)
	case key.Matches(msg, m.keys.Button):
		m.pad.Press(now)
	case key.Matches(msg, m.keys.Home):
		m.pad.LongPress(now)
	}
	return m, nil
}

// step runs one poll cycle of the machine.
func (m Model) step(now time.Duration) {
	m.machine.Tick(m.pad.Raw(now), now)
}

// saveScreenshot saves the current console to a file.
func (m *Model) saveScreenshot() {
	DrawConsole(m.screen, m.lcd, m.matrix)

	dir := filepath.Join(os.Getenv("HOME"), ".maze", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("maze_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the console.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawConsole(m.screen, m.lcd, m.matrix)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	stateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("MAZE MASTER"),
		RenderScreen(m.screen),
		stateStyle.Render(m.machine.State().String()),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Machine returns the state machine behind the console.
func (m Model) Machine() *game.Machine {
	return m.machine
}

// Run starts the Bubble Tea program on the emulated console.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
