package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/fixonz/malakainvadors/internal/config"
)

// Difficulty is the player-selected difficulty.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Difficulties lists the selectable difficulties in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// String returns the difficulty name.
func (d Difficulty) String() string {
	return string(d.Preset())
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Preset returns the configuration preset for d.
func (d Difficulty) Preset() config.DifficultyPreset {
	switch d {
	case DifficultyEasy:
		return config.DifficultyEasy
	case DifficultyHard:
		return config.DifficultyHard
	default:
		return config.DifficultyMedium
	}
}

// ParseDifficulty converts a user-supplied name into a difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	p, err := config.ParsePreset(name)
	if err != nil {
		return DifficultyMedium, err
	}
	switch p {
	case config.DifficultyEasy:
		return DifficultyEasy, nil
	case config.DifficultyHard:
		return DifficultyHard, nil
	default:
		return DifficultyMedium, nil
	}
}

// KindStats holds the fixed modifiers of one enemy kind.
type KindStats struct {
	Kind            EnemyKind
	UnlockLevel     int
	Health          int
	SpeedMultiplier float64
	CanShoot        bool
	Points          int
	Pattern         Pattern
}

// fallbackStats is used for kinds the configuration does not list.
var fallbackStats = KindStats{Health: 1, SpeedMultiplier: 1, Points: 10, Pattern: PatternLinear}

// Rules is the validated, typed view of a configuration shared by every
// session built from it. Rules is read-only after construction.
type Rules struct {
	cfg   config.Config
	kinds []KindStats // regular kinds sorted by unlock level
	stats map[EnemyKind]KindStats
}

// NewRules validates cfg and resolves its kind and pattern names.
func NewRules(cfg config.Config) (*Rules, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	r := &Rules{
		cfg:   cfg,
		stats: make(map[EnemyKind]KindStats, len(cfg.Enemies.Types)+1),
	}
	for _, t := range cfg.Enemies.Types {
		kind, err := ParseEnemyKind(t.Kind)
		if err != nil {
			return nil, err
		}
		if kind == KindBoss {
			return nil, fmt.Errorf("engine: boss cannot be a regular enemy type")
		}
		pattern, err := ParsePattern(t.Pattern)
		if err != nil {
			return nil, err
		}
		ks := KindStats{
			Kind:            kind,
			UnlockLevel:     t.UnlockLevel,
			Health:          t.Health,
			SpeedMultiplier: t.SpeedMultiplier,
			CanShoot:        t.CanShoot,
			Points:          t.Points,
			Pattern:         pattern,
		}
		r.kinds = append(r.kinds, ks)
		r.stats[kind] = ks
	}
	sort.SliceStable(r.kinds, func(i, j int) bool {
		return r.kinds[i].UnlockLevel < r.kinds[j].UnlockLevel
	})

	r.stats[KindBoss] = KindStats{
		Kind:            KindBoss,
		UnlockLevel:     cfg.Boss.Every,
		Health:          cfg.Boss.BaseHealth,
		SpeedMultiplier: cfg.Boss.SpeedMultiplier,
		CanShoot:        true,
		Points:          cfg.Boss.Points,
		Pattern:         PatternLinear,
	}
	return r, nil
}

// DefaultRules returns rules for config.Default().
func DefaultRules() *Rules {
	r, err := NewRules(config.Default())
	if err != nil {
		panic(fmt.Sprintf("engine: default config is invalid: %v", err))
	}
	return r
}

// Config returns the configuration the rules were built from.
func (r *Rules) Config() config.Config {
	return r.cfg
}

// Stats returns the modifiers for a kind.
func (r *Rules) Stats(k EnemyKind) KindStats {
	if s, ok := r.stats[k]; ok {
		return s
	}
	s := fallbackStats
	s.Kind = k
	return s
}

// Multiplier returns the numeric multiplier for a difficulty.
func (r *Rules) Multiplier(d Difficulty) float64 {
	return r.cfg.Difficulty.Multiplier(d.Preset())
}

// Points returns the score awarded for killing an enemy of kind k.
func (r *Rules) Points(k EnemyKind, d Difficulty) int {
	return int(math.Round(float64(r.Stats(k).Points) * r.Multiplier(d)))
}

// EligibleKinds returns the regular kinds unlocked at a level.
func (r *Rules) EligibleKinds(level int) []EnemyKind {
	var out []EnemyKind
	for _, ks := range r.kinds {
		if ks.UnlockLevel <= level {
			out = append(out, ks.Kind)
		}
	}
	return out
}

// DefaultDifficulty returns the configured default difficulty.
func (r *Rules) DefaultDifficulty() Difficulty {
	d, err := ParseDifficulty(string(r.cfg.Difficulty.Default))
	if err != nil {
		return DifficultyMedium
	}
	return d
}

// ticks converts milliseconds into reference ticks.
func (r *Rules) ticks(deltaMs float64) float64 {
	return deltaMs / r.cfg.Timing.ReferenceTickMs
}

// clampDelta bounds a frame delta to [0, MaxDeltaMs].
func (r *Rules) clampDelta(deltaMs float64) float64 {
	if math.IsNaN(deltaMs) || deltaMs < 0 {
		return 0
	}
	return math.Min(deltaMs, r.cfg.Timing.MaxDeltaMs)
}
