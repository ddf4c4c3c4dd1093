package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/fixonz/malakainvadors/internal/audio"
	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
	"github.com/fixonz/malakainvadors/internal/logging"
	"github.com/fixonz/malakainvadors/internal/platform"
)

// Options configures a Model.
type Options struct {
	Store  engine.ScoreStore
	Audio  audio.Player
	Logger *log.Logger
	Config core.RuntimeConfig
}

// scoreSavedMsg reports the outcome of a background save.
type scoreSavedMsg struct {
	entry engine.HighScore
	err   error
}

// scoresLoadedMsg carries a fresh table read from the store. Other SSH
// sessions write to the same store while this one plays.
type scoresLoadedMsg struct {
	scores []engine.HighScore
	err    error
}

// Model is the Bubble Tea model hosting one game machine.
type Model struct {
	machine  *engine.Machine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	holds    *holdTracker
	input    core.InputFrame
	scores   table.Model
	store    engine.ScoreStore
	handlers platform.Handlers
	logger   *log.Logger
	config   core.RuntimeConfig
	start    time.Time
	quitting bool
}

// NewModel creates a model driving machine.
func NewModel(machine *engine.Machine, opts Options) Model {
	cfg := opts.Config
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	player := opts.Audio
	if player == nil {
		player = audio.Silent{}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		machine:  machine,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    newHoldTracker(HoldWindow),
		input:    core.NewInputFrame(),
		scores:   newScoreTable(machine.HighScores(), cfg.ScreenH),
		store:    opts.Store,
		handlers: platform.Handlers{player, logging.NewEventSink(logger)},
		logger:   logger,
		config:   cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		m.scores = newScoreTable(m.machine.HighScores(), msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case scoreSavedMsg:
		if msg.err != nil {
			m.logger.Error("could not save high score", "score", msg.entry.Score, "error", msg.err)
		} else {
			m.logger.Info("high score saved", "name", msg.entry.Name, "score", msg.entry.Score)
		}
		return m, nil

	case scoresLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("could not reload high scores", "error", msg.err)
			return m, nil
		}
		m.machine.SetHighScores(msg.scores)
		m.scores = newScoreTable(m.machine.HighScores(), m.config.ScreenH)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.MapKey(msg)
	switch a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.holds.key(a, time.Now(), &m.input)
	case core.ActionNone:
	default:
		m.input.Set(a)
	}

	if m.machine.Phase() == engine.PhaseHighScores && (a == core.ActionUp || a == core.ActionDown) {
		var cmd tea.Cmd
		m.scores, cmd = m.scores.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}
	m.holds.expire(now, &m.input)

	events := m.machine.Frame(float64(now.Sub(m.start))/float64(time.Millisecond), m.input)
	m.input.Clear()

	cmds := m.handleEvents(events)
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// handleEvents forwards events to collaborators and returns the commands
// persisting finished runs.
func (m *Model) handleEvents(events []engine.Event) []tea.Cmd {
	m.handlers.Handle(events)

	for _, ev := range events {
		if pc, ok := ev.(engine.PhaseChanged); ok {
			m.holds.releaseAll(&m.input)
			if pc.To == engine.PhaseHighScores {
				m.scores = newScoreTable(m.machine.HighScores(), m.config.ScreenH)
			}
		}
	}

	var cmds []tea.Cmd
	if m.store == nil {
		return cmds
	}
	for _, entry := range platform.ScoresToSave(events) {
		cmds = append(cmds, saveScoreCmd(m.store, entry))
	}
	for _, ev := range events {
		if pc, ok := ev.(engine.PhaseChanged); ok && pc.To == engine.PhaseHighScores {
			cmds = append(cmds, loadScoresCmd(m.store))
		}
	}
	return cmds
}

func loadScoresCmd(store engine.ScoreStore) tea.Cmd {
	return func() tea.Msg {
		scores, err := engine.LoadHighScores(store)
		return scoresLoadedMsg{scores: scores, err: err}
	}
}

func saveScoreCmd(store engine.ScoreStore, entry engine.HighScore) tea.Cmd {
	return func() tea.Msg {
		return scoreSavedMsg{entry: entry, err: store.SaveScore(entry)}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.machine.Snapshot()
	if snap.Phase == engine.PhaseHighScores {
		return renderScoreboard(m.scores, len(snap.HighScores) == 0, m.config.ScreenW, "↑/↓ scroll • enter/esc back • q quit")
	}

	Draw(m.screen, snap)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(machine *engine.Machine, opts Options) error {
	model := NewModel(machine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
