package engine

import "slices"

// Snapshot is a read-only, serializable view of the machine for renderers.
// Slices are copies; mutating them does not affect the simulation.
type Snapshot struct {
	Phase       Phase       `json:"phase"`
	Paused      bool        `json:"paused"`
	MenuIndex   int         `json:"menuIndex"`
	MenuItems   []string    `json:"menuItems"`
	Difficulty  Difficulty  `json:"difficulty"`
	FieldWidth  float64     `json:"fieldWidth"`
	FieldHeight float64     `json:"fieldHeight"`
	HighScores  []HighScore `json:"highScores"`

	Score             int     `json:"score"`
	Level             int     `json:"level"`
	Lives             int     `json:"lives"`
	Effect            Effect  `json:"effect"`
	EffectRemainingMs float64 `json:"effectRemainingMs"`

	Player   Player    `json:"player"`
	Enemies  []Enemy   `json:"enemies"`
	Bullets  []Bullet  `json:"bullets"`
	PowerUps []PowerUp `json:"powerUps"`
	Barriers []Barrier `json:"barriers"`

	BarrierMaxHealth int `json:"barrierMaxHealth"`

	LastRank int `json:"lastRank"`
}

// Snapshot captures the current state.
func (m *Machine) Snapshot() Snapshot {
	cfg := m.rules.cfg
	snap := Snapshot{
		Phase:       m.phase,
		Paused:      m.paused,
		MenuIndex:   m.menuIndex,
		MenuItems:   slices.Clone(MenuItems),
		Difficulty:  m.difficulty,
		FieldWidth:  cfg.Field.Width,
		FieldHeight: cfg.Field.Height,
		HighScores:  m.HighScores(),
		LastRank:    -1,

		BarrierMaxHealth: cfg.Barriers.Health,
	}
	if m.phase == PhaseDifficultySelect {
		snap.MenuIndex = int(m.difficulty)
	}
	if m.lastResult != nil {
		snap.LastRank = m.lastResult.Rank
	}

	if s := m.session; s != nil {
		snap.Score = s.Score
		snap.Level = s.Level
		snap.Lives = s.Lives
		if m.phase == PhasePlaying || m.phase == PhaseGameOver {
			snap.Difficulty = s.Difficulty
		}
		snap.Effect = s.Effect
		snap.EffectRemainingMs = s.EffectRemaining
		snap.Player = s.Player
		snap.Enemies = slices.Clone(s.Enemies)
		snap.Bullets = slices.Clone(s.Bullets)
		snap.PowerUps = slices.Clone(s.PowerUps)
		snap.Barriers = slices.Clone(s.Barriers)
	}
	return snap
}
