package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-master/internal/score"
	"github.com/vovakirdan/maze-master/internal/storage"
)

// maxRuns is how many history rows the scoreboard loads.
const maxRuns = 100

// RunLister lists stored runs, newest first.
type RunLister interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
}

// Scoreboard tabs.
const (
	tabHighScores = iota
	tabHistory
	tabCount
)

var tabTitles = [tabCount]string{"High Scores", "Recent Runs"}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the default scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel browses the persisted high-score table and the run
// history.
type ScoreboardModel struct {
	scores   score.Table
	runs     RunLister
	runErr   error
	tab      int
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over scores and, when runs is not
// nil, the run history.
func NewScoreboardModel(scores score.Table, runs RunLister, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		scores: scores,
		runs:   runs,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table with the columns of the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.tab == tabHighScores {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 6},
			{Title: "Score", Width: 8},
		}
	} else {
		columns = []table.Column{
			{Title: "Date", Width: 14},
			{Title: "Name", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Result", Width: 8},
		}
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the current tab's data.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	m.runErr = nil

	if m.tab == tabHighScores {
		for i, e := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				e.NameString(),
				fmt.Sprintf("%d", e.Score),
			})
		}
	} else if m.runs != nil {
		runs, err := m.runs.RecentRuns(maxRuns)
		if err != nil {
			m.runErr = err
		}
		for _, r := range runs {
			rows = append(rows, runRow(r))
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

func runRow(r storage.RunEntry) table.Row {
	name := r.Name
	if name == "" {
		name = "-"
	}
	result := "quit"
	if r.Victory {
		result = "won"
	}
	return table.Row{
		r.PlayedAt.Local().Format("Jan 02 15:04"),
		name,
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Level),
		r.Duration.Round(100 * time.Millisecond).String(),
		result,
	}
}

func (m *ScoreboardModel) switchTab(delta int) {
	m.tab = (m.tab + delta + tabCount) % tabCount
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("MAZE MASTER", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, tabCount)
	for i, title := range tabTitles {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = tabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.runErr != nil:
		return emptyStyle.Render("Cannot read run history:\n" + m.runErr.Error())
	case m.tab == tabHistory && m.runs == nil:
		return emptyStyle.Render("Run history is off.\nPlay without --memory to keep it.")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to fill this list!")
	}

	return m.table.View()
}

// centerText pads each line of s to center it in width.
func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(scores score.Table, runs RunLister, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(scores, runs, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
