package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

type memStore struct {
	scores []engine.HighScore
	err    error
}

func (s *memStore) TopScores(int) ([]engine.HighScore, error) { return s.scores, s.err }
func (s *memStore) SaveScore(e engine.HighScore) error {
	s.scores = append(s.scores, e)
	return nil
}

type recorder struct{ got [][]engine.Event }

func (r *recorder) Handle(events []engine.Event) { r.got = append(r.got, events) }

func TestNewMachineLoadsScores(t *testing.T) {
	store := &memStore{scores: []engine.HighScore{{Name: "A", Score: 5}, {Name: "B", Score: 50}}}
	cfg := core.DefaultConfig()
	cfg.Seed = 9

	m := NewMachine(Deps{Rules: engine.DefaultRules(), Store: store}, cfg)

	require.Len(t, m.HighScores(), 2)
	assert.Equal(t, "B", m.HighScores()[0].Name)
	assert.Equal(t, engine.PhaseMenu, m.Phase())
}

func TestNewMachineToleratesBrokenStore(t *testing.T) {
	store := &memStore{err: errors.New("disk on fire")}
	m := NewMachine(Deps{Rules: engine.DefaultRules(), Store: store}, core.DefaultConfig())
	assert.Empty(t, m.HighScores())

	m = NewMachine(Deps{Rules: engine.DefaultRules()}, core.DefaultConfig(), engine.WithDifficulty(engine.DifficultyHard))
	assert.Equal(t, engine.DifficultyHard, m.Snapshot().Difficulty)
}

func TestScoresToSave(t *testing.T) {
	placed := engine.HighScore{Name: "TOP", Score: 900}
	events := []engine.Event{
		engine.EnemyKilled{},
		engine.GameOver{FinalScore: 900, Entry: placed, Rank: 0},
		engine.GameOver{FinalScore: 1, Entry: engine.HighScore{Score: 1}, Rank: -1},
	}

	assert.Equal(t, []engine.HighScore{placed}, ScoresToSave(events))
	assert.Empty(t, ScoresToSave(nil))
}

func TestHandlersFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	hs := Handlers{a, nil, b}

	hs.Handle(nil)
	hs.Handle([]engine.Event{engine.ShotFired{Bullets: 1}})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
