package engine

import (
	"math"

	"github.com/fixonz/malakainvadors/internal/config"
	"github.com/fixonz/malakainvadors/internal/core"
)

// Trajectories evaluates the closed-form movement patterns. Each method
// is a pure function of the anchor point, the pattern timer (seconds) and
// the enemy speed.
type Trajectories struct {
	config.PatternConfig
	ReferenceTickMs float64
	FieldHeight     float64
}

// Zigzag sways around the anchor column while descending at half speed.
func (tr Trajectories) Zigzag(ix, iy, t, speed float64) (float64, float64) {
	x := ix + math.Sin(t*tr.ZigzagFrequency)*tr.ZigzagAmplitude
	y := iy + 0.5*math.Abs(speed)*tr.elapsedTicks(t)
	return x, y
}

// Circular orbits the anchor with a slow downward drift.
func (tr Trajectories) Circular(ix, iy, t, _ float64) (float64, float64) {
	x := ix + math.Cos(t)*tr.CircleRadius
	y := iy + math.Sin(t)*tr.CircleRadius + tr.CircleDrift*t
	return x, y
}

// Diving descends at double speed to the dive line, then sweeps sideways
// without further vertical movement.
func (tr Trajectories) Diving(ix, iy, t, speed float64) (float64, float64) {
	floor := math.Max(tr.DiveThreshold*tr.FieldHeight, iy)
	y := iy + 2*math.Abs(speed)*tr.elapsedTicks(t)
	if y < floor {
		return ix, y
	}
	return ix + math.Sin(t*tr.DiveFrequency)*tr.DiveAmplitude, floor
}

func (tr Trajectories) elapsedTicks(t float64) float64 {
	return t * 1000 / tr.ReferenceTickMs
}

// trajectories returns the pattern evaluator for the rules' field.
func (r *Rules) trajectories() Trajectories {
	return Trajectories{
		PatternConfig:   r.cfg.Patterns,
		ReferenceTickMs: r.cfg.Timing.ReferenceTickMs,
		FieldHeight:     r.cfg.Field.Height,
	}
}

// moveEnemy advances one enemy by deltaMs.
func (r *Rules) moveEnemy(e *Enemy, deltaMs float64) {
	e.Timer += deltaMs / 1000
	width := r.cfg.Field.Width
	tr := r.trajectories()

	pattern := e.Pattern
	if e.Kind == KindBoss {
		pattern = PatternLinear
	}

	switch pattern {
	case PatternLinear:
		e.X += e.Speed * r.ticks(deltaMs)
		// Only reflect while heading into a wall; a clamped enemy sitting on
		// the wall must not bounce again on a zero delta.
		if (e.X <= 0 && e.Speed < 0) || (e.X+e.W >= width && e.Speed > 0) {
			e.Speed = -e.Speed
			if e.Kind != KindBoss {
				e.Y += r.cfg.Enemies.DescendStep
			}
			e.X = core.ClampF(e.X, 0, width-e.W)
		}
		return
	case PatternZigzag:
		e.X, e.Y = tr.Zigzag(e.InitialX, e.InitialY, e.Timer, e.Speed)
	case PatternCircular:
		e.X, e.Y = tr.Circular(e.InitialX, e.InitialY, e.Timer, e.Speed)
	case PatternDiving:
		e.X, e.Y = tr.Diving(e.InitialX, e.InitialY, e.Timer, e.Speed)
	}
	e.X = core.ClampF(e.X, 0, math.Max(width-e.W, 0))
}

// movePlayer applies the movement intents, keeping the ship in the field.
func (r *Rules) movePlayer(p *Player, deltaMs float64) {
	step := p.Speed * r.ticks(deltaMs)
	if p.MoveLeft {
		p.X -= step
	}
	if p.MoveRight {
		p.X += step
	}
	p.X = core.ClampF(p.X, 0, r.cfg.Field.Width-p.W)
}

// moveBullets integrates bullet velocity and drops bullets that left the
// vertical bounds.
func (r *Rules) moveBullets(bullets []Bullet, deltaMs float64) []Bullet {
	ticks := r.ticks(deltaMs)
	height := r.cfg.Field.Height
	return keep(bullets, func(b *Bullet) bool {
		b.Y += b.SpeedY * ticks
		return b.Y+b.H >= 0 && b.Y <= height
	})
}

// keep filters s in place, retaining elements for which fn returns true.
// fn may mutate the element it is given.
func keep[T any](s []T, fn func(*T) bool) []T {
	active := s[:0]
	for i := range s {
		if fn(&s[i]) {
			active = append(active, s[i])
		}
	}
	clear(s[len(active):])
	return active
}
