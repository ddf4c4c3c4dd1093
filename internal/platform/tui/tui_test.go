package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down", runeKey('s'), core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"pause", runeKey('p'), core.ActionPause},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, km.MapKey(tc.msg))
		})
	}
}

func TestHoldTrackerSynthesizesRelease(t *testing.T) {
	h := newHoldTracker(HoldWindow)
	t0 := time.Unix(0, 0)

	in := core.NewInputFrame()
	h.key(core.ActionLeft, t0, &in)
	assert.Equal(t, core.KeyPress, in.State(core.ActionLeft))
	in.Clear()

	// Auto-repeat keeps the key held without a second press.
	h.key(core.ActionLeft, t0.Add(100*time.Millisecond), &in)
	h.expire(t0.Add(200*time.Millisecond), &in)
	assert.True(t, in.Empty())

	h.expire(t0.Add(250*time.Millisecond), &in)
	assert.Equal(t, core.KeyRelease, in.State(core.ActionLeft))
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := newHoldTracker(HoldWindow)
	t0 := time.Unix(0, 0)
	in := core.NewInputFrame()

	h.key(core.ActionLeft, t0, &in)
	in.Clear()
	h.key(core.ActionRight, t0.Add(10*time.Millisecond), &in)

	assert.Equal(t, core.KeyPress, in.State(core.ActionRight))
	assert.Equal(t, core.KeyRelease, in.State(core.ActionLeft))
}

func playingSnapshot(t *testing.T) engine.Snapshot {
	t.Helper()
	m := engine.NewMachine(engine.DefaultRules(), engine.WithSeed(1))
	m.Start(engine.DifficultyEasy)
	return m.Snapshot()
}

func TestDrawPlayfield(t *testing.T) {
	s := core.NewScreen(80, 24)
	Draw(s, playingSnapshot(t))

	out := s.String()
	assert.Contains(t, s.Row(0), "SCORE 000000")
	assert.Contains(t, s.Row(0), "LEVEL 1")
	assert.Contains(t, out, "A", "player drawn")
	assert.Contains(t, out, "M", "basic enemies drawn")
	assert.Contains(t, out, "█", "barriers drawn")
}

func TestDrawPlayerNearBottom(t *testing.T) {
	s := core.NewScreen(80, 24)
	Draw(s, playingSnapshot(t))

	found := -1
	for y := range s.Height() {
		if strings.ContainsRune(s.Row(y), 'A') {
			found = y
		}
	}
	assert.GreaterOrEqual(t, found, 20)
}

func TestDrawMenuAndGameOver(t *testing.T) {
	m := engine.NewMachine(engine.DefaultRules())
	s := core.NewScreen(80, 24)

	Draw(s, m.Snapshot())
	assert.Contains(t, s.String(), "MALAKAI CABAL INVADOOORZ")
	assert.Contains(t, s.String(), "> Start Game <")

	snap := playingSnapshot(t)
	snap.Phase = engine.PhaseGameOver
	snap.Score = 420
	snap.LastRank = 2
	Draw(s, snap)
	assert.Contains(t, s.String(), "GAME OVER")
	assert.Contains(t, s.String(), "FINAL SCORE 420")
	assert.Contains(t, s.String(), "NEW HIGH SCORE #3")
}

func TestViewportCoversSmallObjects(t *testing.T) {
	s := core.NewScreen(80, 25)
	v := newViewport(s, 800, 600)

	x, y, w, h := v.cells(400, 300, 2, 10)
	assert.Equal(t, 40, x)
	assert.Equal(t, 13, y)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestBarrierGlyph(t *testing.T) {
	assert.Equal(t, '█', barrierGlyph(10, 10))
	assert.Equal(t, '▓', barrierGlyph(5, 10))
	assert.Equal(t, '░', barrierGlyph(1, 10))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "HI", core.ColorBrightYellow)
	s.DrawText(3, 1, "ok")

	out := RenderScreen(s)
	assert.Contains(t, out, "HI")
	assert.Contains(t, out, "ok")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestFormatScores(t *testing.T) {
	assert.Equal(t, "No scores recorded yet.\n", FormatScores(nil))

	out := FormatScores([]engine.HighScore{{Name: "ANA", Score: 300, Level: 3, Difficulty: "hard"}})
	assert.Contains(t, out, "RANK")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "ANA")
	assert.Contains(t, out, "300")
}

type memStore struct{ saved []engine.HighScore }

func (s *memStore) TopScores(int) ([]engine.HighScore, error) { return s.saved, nil }
func (s *memStore) SaveScore(e engine.HighScore) error {
	s.saved = append(s.saved, e)
	return nil
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelStartsGameFromMenu(t *testing.T) {
	machine := engine.NewMachine(engine.DefaultRules(), engine.WithSeed(3))
	m := NewModel(machine, Options{Config: core.DefaultConfig()})
	t0 := time.Unix(100, 0)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg(t0))
	require.Equal(t, engine.PhaseDifficultySelect, machine.Phase())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	require.Equal(t, engine.PhasePlaying, machine.Phase())
	assert.Contains(t, m.View(), "SCORE")

	_, cmd := step(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelPersistsPlacedRuns(t *testing.T) {
	store := &memStore{}
	machine := engine.NewMachine(engine.DefaultRules(), engine.WithSeed(3), engine.WithPlayerName("SSHUSER"))
	m := NewModel(machine, Options{Config: core.DefaultConfig(), Store: store})

	entry := engine.HighScore{Name: "SSHUSER", Score: 90}
	cmds := m.handleEvents([]engine.Event{engine.GameOver{FinalScore: 90, Entry: entry, Rank: 0}})
	require.Len(t, cmds, 1)

	msg := cmds[0]()
	saved, ok := msg.(scoreSavedMsg)
	require.True(t, ok)
	assert.NoError(t, saved.err)
	assert.Equal(t, []engine.HighScore{entry}, store.saved)

	assert.Empty(t, m.handleEvents([]engine.Event{engine.GameOver{Rank: -1}}))
}

func TestModelHighScoresView(t *testing.T) {
	machine := engine.NewMachine(engine.DefaultRules(), engine.WithHighScores([]engine.HighScore{{Name: "ZED", Score: 77}}))
	m := NewModel(machine, Options{Config: core.DefaultConfig()})
	t0 := time.Unix(5, 0)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, TickMsg(t0))
	require.Equal(t, engine.PhaseHighScores, machine.Phase())

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "ZED")
}

func TestModelReloadsScoresFromSharedStore(t *testing.T) {
	store := &memStore{saved: []engine.HighScore{{Name: "OTHER", Score: 500}}}
	machine := engine.NewMachine(engine.DefaultRules())
	m := NewModel(machine, Options{Config: core.DefaultConfig(), Store: store})
	require.Empty(t, machine.HighScores())

	cmds := m.handleEvents([]engine.Event{engine.PhaseChanged{From: engine.PhaseMenu, To: engine.PhaseHighScores}})
	require.Len(t, cmds, 1)

	msg := cmds[0]()
	loaded, ok := msg.(scoresLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	m, _ = step(t, m, msg)
	assert.Equal(t, store.saved, machine.HighScores())
	assert.Contains(t, strings.Join(scoreCells(m), " "), "OTHER")
}

func scoreCells(m Model) []string {
	var out []string
	for _, row := range m.scores.Rows() {
		out = append(out, row...)
	}
	return out
}

func TestDrawPausedFramesBanner(t *testing.T) {
	screen := core.NewScreen(80, 23)
	Draw(screen, engine.Snapshot{Phase: engine.PhasePlaying, Paused: true, FieldWidth: 800, FieldHeight: 600, LastRank: -1})

	y := screen.Height() / 2
	assert.Contains(t, screen.Row(y-1), "PAUSED")
	assert.Contains(t, screen.Row(y-2), "┌")
	assert.Contains(t, screen.Row(y+2), "┘")
}
