// Package platform holds the wiring shared by the terminal, SSH and
// window hosts: building machines and fanning out engine events.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

// Deps are the collaborators a host needs to run games.
type Deps struct {
	Rules  *engine.Rules
	Store  engine.ScoreStore // nil disables persistence
	Logger *log.Logger
}

// NewMachine builds a machine with the persisted high-score table. An
// unreadable table is logged and replaced by an empty one.
func NewMachine(d Deps, cfg core.RuntimeConfig, opts ...engine.Option) *engine.Machine {
	scores, err := engine.LoadHighScores(d.Store)
	if err != nil && d.Logger != nil {
		d.Logger.Warn("could not load high scores", "error", err)
	}

	base := []engine.Option{
		engine.WithHighScores(scores),
		engine.WithPlayerName(cfg.PlayerName),
	}
	if cfg.Seed != 0 {
		base = append(base, engine.WithSeed(cfg.Seed))
	}
	return engine.NewMachine(d.Rules, append(base, opts...)...)
}

// ScoresToSave returns the entries of finished runs that placed in the
// high-score table.
func ScoresToSave(events []engine.Event) []engine.HighScore {
	var out []engine.HighScore
	for _, ev := range events {
		if over, ok := ev.(engine.GameOver); ok && over.Rank >= 0 {
			out = append(out, over.Entry)
		}
	}
	return out
}

// Handler consumes the events of one frame.
type Handler interface {
	Handle(events []engine.Event)
}

// Handlers fans events out to every handler in order.
type Handlers []Handler

// Handle implements Handler.
func (hs Handlers) Handle(events []engine.Event) {
	if len(events) == 0 {
		return
	}
	for _, h := range hs {
		if h != nil {
			h.Handle(events)
		}
	}
}
