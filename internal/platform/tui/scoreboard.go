package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
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
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/enter", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreRows converts high scores to table rows.
func scoreRows(scores []engine.HighScore) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		date := "-"
		if !s.At.IsZero() {
			date = s.At.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			s.Difficulty,
			date,
		}
	}
	return rows
}

// newScoreTable builds a table sized for the given terminal.
func newScoreTable(scores []engine.HighScore, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(scoreRows(scores)),
		table.WithFocused(true),
		table.WithHeight(core.Clamp(height-8, 3, engine.MaxHighScores+1)),
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

// renderScoreboard lays out the title, table and footer.
func renderScoreboard(t table.Model, empty bool, width int, footer string) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render("HIGH SCORES")))
	b.WriteString("\n\n")

	content := t.View()
	if empty {
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, frameStyle.Render(content)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, helpStyle.Render(footer)))
	return b.String()
}

// FormatScores renders the table as plain text for non-interactive output.
func FormatScores(scores []engine.HighScore) string {
	if len(scores) == 0 {
		return "No scores recorded yet.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %-12s %8s %5s %-7s %s\n", "RANK", "NAME", "SCORE", "LEVEL", "MODE", "DATE")
	for _, row := range scoreRows(scores) {
		fmt.Fprintf(&b, "%-5s %-12s %8s %5s %-7s %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
	return b.String()
}

// ScoreboardModel is a standalone Bubble Tea model for browsing the
// high-score table.
type ScoreboardModel struct {
	scores   []engine.HighScore
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(scores []engine.HighScore, width, height int) ScoreboardModel {
	return ScoreboardModel{
		scores: scores,
		table:  newScoreTable(scores, height),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
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
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = newScoreTable(m.scores, m.height)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}
	return renderScoreboard(m.table, len(m.scores) == 0, m.width, m.help.View(m.keys))
}

// RunScoreboard shows the scoreboard until the user leaves it.
func RunScoreboard(scores []engine.HighScore, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(scores, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
