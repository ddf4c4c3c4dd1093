package logging

import (
	"github.com/charmbracelet/log"

	"github.com/fixonz/malakainvadors/internal/engine"
)

// EventSink writes engine events to a logger. Routine combat is logged at
// debug level, run milestones at info.
type EventSink struct {
	logger *log.Logger
}

// NewEventSink returns a sink for logger. A nil logger discards events.
func NewEventSink(logger *log.Logger) *EventSink {
	if logger == nil {
		logger = Discard()
	}
	return &EventSink{logger: logger}
}

// Handle logs each event.
func (s *EventSink) Handle(events []engine.Event) {
	for _, ev := range events {
		s.log(ev)
	}
}

func (s *EventSink) log(ev engine.Event) {
	switch e := ev.(type) {
	case engine.ShotFired:
		s.logger.Debug("shot fired", "bullets", e.Bullets, "enemy", e.Enemy)
	case engine.EnemyHit:
		s.logger.Debug("enemy hit", "kind", e.Kind, "remaining", e.Remaining)
	case engine.EnemyKilled:
		s.logger.Debug("enemy killed", "kind", e.Kind, "points", e.Points)
	case engine.PlayerHit:
		s.logger.Debug("player hit", "cause", e.Cause, "shielded", e.Shielded, "lives", e.Lives)
	case engine.BarrierDamaged:
		s.logger.Debug("barrier damaged", "health", e.Health, "destroyed", e.Destroyed)
	case engine.PowerUpCollected:
		s.logger.Debug("power-up collected", "kind", e.Kind)
	case engine.PowerUpExpired:
		s.logger.Debug("power-up expired", "effect", e.Effect)
	case engine.WaveReset:
		s.logger.Info("enemies breached, wave reset", "level", e.Level)
	case engine.LevelAdvanced:
		s.logger.Info("level advanced", "level", e.Level, "boss", e.Boss)
	case engine.GameOver:
		s.logger.Info("game over", "score", e.FinalScore, "levels", e.LevelsCompleted, "rank", e.Rank)
	case engine.PhaseChanged:
		s.logger.Debug("phase changed", "from", e.From, "to", e.To)
	}
}
