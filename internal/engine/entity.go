package engine

import (
	"fmt"

	"github.com/fixonz/malakainvadors/internal/core"
)

// EnemyKind identifies an enemy type.
type EnemyKind int

const (
	KindBasic EnemyKind = iota
	KindFast
	KindTough
	KindZigzag
	KindCircular
	KindDiving
	KindBoss
)

// String returns the configuration name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindFast:
		return "fast"
	case KindTough:
		return "tough"
	case KindZigzag:
		return "zigzag"
	case KindCircular:
		return "circular"
	case KindDiving:
		return "diving"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EnemyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseEnemyKind converts a configuration name into a kind.
func ParseEnemyKind(name string) (EnemyKind, error) {
	switch name {
	case "basic":
		return KindBasic, nil
	case "fast":
		return KindFast, nil
	case "tough":
		return KindTough, nil
	case "zigzag":
		return KindZigzag, nil
	case "circular":
		return KindCircular, nil
	case "diving":
		return KindDiving, nil
	case "boss":
		return KindBoss, nil
	default:
		return 0, fmt.Errorf("engine: unknown enemy kind %q", name)
	}
}

// Pattern identifies an enemy movement pattern.
type Pattern int

const (
	PatternLinear Pattern = iota
	PatternZigzag
	PatternCircular
	PatternDiving
)

// String returns the configuration name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternLinear:
		return "linear"
	case PatternZigzag:
		return "zigzag"
	case PatternCircular:
		return "circular"
	case PatternDiving:
		return "diving"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePattern converts a configuration name into a pattern.
func ParsePattern(name string) (Pattern, error) {
	switch name {
	case "linear":
		return PatternLinear, nil
	case "zigzag":
		return PatternZigzag, nil
	case "circular":
		return PatternCircular, nil
	case "diving":
		return PatternDiving, nil
	default:
		return 0, fmt.Errorf("engine: unknown movement pattern %q", name)
	}
}

// PowerUpKind identifies a collectible.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpRapidFire
	PowerUpExtraLife
	powerUpCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpRapidFire:
		return "rapidFire"
	case PowerUpExtraLife:
		return "extraLife"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PowerUpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpShield:
		return 'S'
	case PowerUpRapidFire:
		return 'R'
	case PowerUpExtraLife:
		return '♥'
	default:
		return '?'
	}
}

// Effect is the timed power-up slot. Only one timed effect is active at once.
type Effect int

const (
	EffectNone Effect = iota
	EffectShield
	EffectRapidFire
)

// String returns the name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectShield:
		return "shield"
	case EffectRapidFire:
		return "rapidFire"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Player is the ship controlled by the user.
type Player struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	W            float64 `json:"w"`
	H            float64 `json:"h"`
	Speed        float64 `json:"speed"`
	MoveLeft     bool    `json:"moveLeft"`
	MoveRight    bool    `json:"moveRight"`
	Shielded     bool    `json:"shielded"`
	RapidFire    bool    `json:"rapidFire"`
	FireCooldown float64 `json:"fireCooldownMs"`
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Enemy is one member of the roster. Health stays positive while the
// enemy is in the roster.
type Enemy struct {
	X             float64   `json:"x"`
	Y             float64   `json:"y"`
	W             float64   `json:"w"`
	H             float64   `json:"h"`
	Speed         float64   `json:"speed"`
	Kind          EnemyKind `json:"kind"`
	Health        int       `json:"health"`
	MaxHealth     int       `json:"maxHealth"`
	CanShoot      bool      `json:"canShoot"`
	ShootCooldown float64   `json:"shootCooldown"` // reference ticks
	Pattern       Pattern   `json:"pattern"`
	Timer         float64   `json:"timer"` // seconds
	InitialX      float64   `json:"initialX"`
	InitialY      float64   `json:"initialY"`
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Bullet is a projectile. Player bullets travel up (negative SpeedY).
type Bullet struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	SpeedY float64 `json:"speedY"`
	Enemy  bool    `json:"enemy"`
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Size  float64     `json:"size"`
	Speed float64     `json:"speed"`
	Kind  PowerUpKind `json:"kind"`
}

// Rect returns the power-up's bounding box.
func (p PowerUp) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Size, p.Size)
}

// Barrier is a static obstacle absorbing enemy fire.
type Barrier struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Health int     `json:"health"`
}

// Rect returns the barrier's bounding box.
func (b Barrier) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}
