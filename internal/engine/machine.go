package engine

import (
	"time"

	"github.com/fixonz/malakainvadors/internal/core"
)

// Phase is a state of the game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseDifficultySelect
	PhasePlaying
	PhaseGameOver
	PhaseHighScores
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseDifficultySelect:
		return "difficultySelect"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	case PhaseHighScores:
		return "highScores"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Menu items in display order.
const (
	MenuStart = iota
	MenuHighScores
)

// MenuItems are the main menu labels.
var MenuItems = []string{"Start Game", "High Scores"}

// Title is shown on the main menu.
const Title = "Malakai Cabal Invadooorz"

// Machine drives menu, difficulty select, play, game over and high-score
// screens. Every entry into playing builds a fresh Session.
type Machine struct {
	rules *Rules
	phase Phase

	menuIndex  int
	difficulty Difficulty
	session    *Session
	paused     bool

	highScores []HighScore
	lastResult *GameOver

	playerName string
	seed       int64
	runs       int64
	clock      func() time.Time

	lastFrame float64
	hasFrame  bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithSeed makes runs deterministic. Run n uses seed+n.
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.seed = seed
	}
}

// WithPlayerName sets the name recorded with high scores.
func WithPlayerName(name string) Option {
	return func(m *Machine) {
		if name != "" {
			m.playerName = name
		}
	}
}

// WithHighScores seeds the high-score table, usually from a ScoreStore.
func WithHighScores(list []HighScore) Option {
	return func(m *Machine) {
		m.highScores = NormalizeHighScores(list)
	}
}

// WithDifficulty preselects a difficulty on the difficulty screen.
func WithDifficulty(d Difficulty) Option {
	return func(m *Machine) {
		m.difficulty = d
	}
}

// WithClock overrides the time source used to stamp high scores.
func WithClock(clock func() time.Time) Option {
	return func(m *Machine) {
		m.clock = clock
	}
}

// NewMachine creates a machine in the menu phase.
func NewMachine(rules *Rules, opts ...Option) *Machine {
	m := &Machine{
		rules:      rules,
		phase:      PhaseMenu,
		difficulty: rules.DefaultDifficulty(),
		playerName: "PLAYER",
		clock:      time.Now,
		highScores: []HighScore{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Frame advances the machine to the host timestamp nowMs. The first call
// only records the timestamp.
func (m *Machine) Frame(nowMs float64, in core.InputFrame) []Event {
	delta := 0.0
	if m.hasFrame {
		delta = nowMs - m.lastFrame
	}
	m.lastFrame = nowMs
	m.hasFrame = true
	return m.Step(delta, in)
}

// Step advances the machine by deltaMs with the given input.
func (m *Machine) Step(deltaMs float64, in core.InputFrame) []Event {
	switch m.phase {
	case PhaseMenu:
		return m.updateMenu(in)
	case PhaseDifficultySelect:
		return m.updateDifficulty(in)
	case PhasePlaying:
		return m.updatePlaying(deltaMs, in)
	case PhaseGameOver, PhaseHighScores:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			return m.transition(PhaseMenu)
		}
	}
	return nil
}

func (m *Machine) updateMenu(in core.InputFrame) []Event {
	m.menuIndex = navigate(m.menuIndex, len(MenuItems), in)
	if !in.Has(core.ActionConfirm) {
		return nil
	}
	switch m.menuIndex {
	case MenuStart:
		return m.transition(PhaseDifficultySelect)
	case MenuHighScores:
		return m.transition(PhaseHighScores)
	}
	return nil
}

func (m *Machine) updateDifficulty(in core.InputFrame) []Event {
	if in.Has(core.ActionBack) {
		return m.transition(PhaseMenu)
	}
	m.difficulty = Difficulties[navigate(int(m.difficulty), len(Difficulties), in)]
	if in.Has(core.ActionConfirm) {
		return m.Start(m.difficulty)
	}
	return nil
}

// Start begins a new run at the given difficulty from any phase.
func (m *Machine) Start(d Difficulty) []Event {
	m.difficulty = d
	m.session = NewSession(m.rules, d, m.runSeed())
	m.paused = false
	m.lastResult = nil
	return m.transition(PhasePlaying)
}

func (m *Machine) runSeed() int64 {
	m.runs++
	if m.seed != 0 {
		return m.seed + m.runs
	}
	return m.clock().UnixNano()
}

func (m *Machine) updatePlaying(deltaMs float64, in core.InputFrame) []Event {
	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if m.paused {
		if in.Has(core.ActionBack) {
			m.session = nil
			m.paused = false
			return m.transition(PhaseMenu)
		}
		return nil
	}

	events := m.session.Tick(deltaMs, in)
	if !m.session.Over() {
		return events
	}

	for i, ev := range events {
		if over, ok := ev.(GameOver); ok {
			m.recordScore(&over)
			events[i] = over
			m.lastResult = &over
		}
	}
	return append(events, m.transition(PhaseGameOver)...)
}

// recordScore inserts the finished run into the high-score table.
func (m *Machine) recordScore(over *GameOver) {
	over.Entry = HighScore{
		Name:       m.playerName,
		Score:      m.session.Score,
		Level:      m.session.Level,
		Difficulty: m.session.Difficulty.String(),
		At:         m.clock(),
	}
	m.highScores, over.Rank = InsertHighScore(m.highScores, over.Entry)
}

func (m *Machine) transition(to Phase) []Event {
	from := m.phase
	m.phase = to
	if to == PhaseMenu {
		m.menuIndex = MenuStart
	}
	return []Event{PhaseChanged{From: from, To: to}}
}

// navigate moves a wrapping selection index with up/down input.
func navigate(index, n int, in core.InputFrame) int {
	if n <= 0 {
		return 0
	}
	if in.Has(core.ActionUp) {
		index--
	}
	if in.Has(core.ActionDown) {
		index++
	}
	return (index%n + n) % n
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Paused reports whether play is paused.
func (m *Machine) Paused() bool {
	return m.paused
}

// Session returns the current or last run, or nil before the first start.
func (m *Machine) Session() *Session {
	return m.session
}

// HighScores returns a copy of the high-score table.
func (m *Machine) HighScores() []HighScore {
	return NormalizeHighScores(m.highScores)
}

// SetHighScores replaces the table, e.g. after a store finished loading.
func (m *Machine) SetHighScores(list []HighScore) {
	m.highScores = NormalizeHighScores(list)
}

// LastResult returns the most recent game over, or nil.
func (m *Machine) LastResult() *GameOver {
	return m.lastResult
}
