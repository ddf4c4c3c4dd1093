// Package engine implements the invaders simulation: entities, movement
// patterns, wave spawning, combat, power-ups and the game state machine.
// It performs no I/O and has no goroutines; hosts drive it with frame
// deltas and input frames and render its snapshots.
package engine

import (
	"github.com/fixonz/malakainvadors/internal/core"
)

// Session is the state of one run from start to game over. A new Session
// is built for every start; nothing carries over between runs.
type Session struct {
	Score           int
	Level           int
	Lives           int
	Difficulty      Difficulty
	Effect          Effect
	EffectRemaining float64 // ms
	Elapsed         float64 // ms of simulated play

	Player   Player
	Enemies  []Enemy
	Bullets  []Bullet
	PowerUps []PowerUp
	Barriers []Barrier

	rules  *Rules
	rng    *RNG
	over   bool
	events []Event
}

// NewSession starts a run at level 1 with the first wave spawned.
func NewSession(rules *Rules, d Difficulty, seed int64) *Session {
	cfg := rules.cfg
	s := &Session{
		Level:      1,
		Lives:      cfg.Player.StartLives,
		Difficulty: d,
		Player: Player{
			X:     (cfg.Field.Width - cfg.Player.Width) / 2,
			Y:     cfg.Field.Height - cfg.Player.Height - cfg.Player.BottomMargin,
			W:     cfg.Player.Width,
			H:     cfg.Player.Height,
			Speed: cfg.Player.Speed,
		},
		Barriers: rules.NewBarriers(),
		rules:    rules,
		rng:      NewRNG(seed),
	}
	s.Enemies = rules.CreateEnemies(s.Level, d, s.rng)
	return s
}

// Over reports whether the session has lost its last life.
func (s *Session) Over() bool {
	return s.over
}

// Tick advances the simulation by deltaMs and returns the events it
// produced. Negative deltas are treated as zero and long stalls are capped.
// Once the session is over Tick does nothing.
func (s *Session) Tick(deltaMs float64, in core.InputFrame) []Event {
	if s.over {
		return nil
	}
	delta := s.rules.clampDelta(deltaMs)
	s.Elapsed += delta

	s.applyInput(in, delta)
	s.rules.movePlayer(&s.Player, delta)
	s.Bullets = s.rules.moveBullets(s.Bullets, delta)
	s.updateEnemies(delta)
	s.updatePowerUps(delta)
	s.resolveCombat()

	if !s.over && len(s.Enemies) == 0 {
		s.Level++
		s.Enemies = s.rules.CreateEnemies(s.Level, s.Difficulty, s.rng)
		s.emit(LevelAdvanced{Level: s.Level, Boss: s.rules.cfg.Boss.IsBossLevel(s.Level)})
	}

	events := s.events
	s.events = nil
	return events
}

func (s *Session) applyInput(in core.InputFrame, deltaMs float64) {
	switch in.State(core.ActionLeft) {
	case core.KeyPress:
		s.Player.MoveLeft = true
	case core.KeyRelease:
		s.Player.MoveLeft = false
	}
	switch in.State(core.ActionRight) {
	case core.KeyPress:
		s.Player.MoveRight = true
	case core.KeyRelease:
		s.Player.MoveRight = false
	}

	if s.Player.FireCooldown > 0 {
		s.Player.FireCooldown = max(s.Player.FireCooldown-deltaMs, 0)
	}
	if in.Has(core.ActionFire) {
		s.Shoot()
	}
}

// Shoot fires from the player ship if the fire cooldown has elapsed.
// Rapid fire emits a three-bullet spread.
func (s *Session) Shoot() bool {
	if s.over || s.Player.FireCooldown > 0 {
		return false
	}
	bc := s.rules.cfg.Bullets
	x := s.Player.X + s.Player.W/2 - bc.Width/2
	offsets := []float64{0}
	if s.Player.RapidFire {
		spread := s.rules.cfg.PowerUps.SpreadOffset
		offsets = []float64{-spread, 0, spread}
	}
	for _, off := range offsets {
		s.Bullets = append(s.Bullets, Bullet{
			X:      x + off,
			Y:      s.Player.Y,
			W:      bc.Width,
			H:      bc.Height,
			SpeedY: -bc.PlayerSpeed,
		})
	}
	s.Player.FireCooldown = s.rules.cfg.Player.FireCooldownMs
	s.emit(ShotFired{Bullets: len(offsets)})
	return true
}

func (s *Session) updateEnemies(deltaMs float64) {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		s.rules.moveEnemy(e, deltaMs)
		if shots := s.rules.enemyFire(e, deltaMs, s.Difficulty, s.rng); len(shots) > 0 {
			s.Bullets = append(s.Bullets, shots...)
			s.emit(ShotFired{Bullets: len(shots), Enemy: true})
		}
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}
