package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// DifficultyConfig maps each preset to its multiplier. The multiplier
// scales enemy speed, enemy fire rate, power-up drop rate and points.
type DifficultyConfig struct {
	Default DifficultyPreset `yaml:"default"`
	Easy    float64          `yaml:"easy"`
	Medium  float64          `yaml:"medium"`
	Hard    float64          `yaml:"hard"`
}

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return p, nil
	case "normal":
		return DifficultyMedium, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", name)
	}
}

// Multiplier returns the numeric multiplier for a preset.
// Unknown presets get 1.0.
func (d DifficultyConfig) Multiplier(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return d.Easy
	case DifficultyMedium:
		return d.Medium
	case DifficultyHard:
		return d.Hard
	default:
		return 1.0
	}
}

// SpeedForLevel returns the unscaled enemy base speed for a level,
// growing linearly and capped at MaxSpeed.
func (e EnemyConfig) SpeedForLevel(level int) float64 {
	return math.Min(e.BaseSpeed+e.SpeedPerLevel*float64(level), e.MaxSpeed)
}

// CountForLevel returns the size of a regular wave for a level.
func (e EnemyConfig) CountForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	n := e.BaseCount + e.CountPerLevel*(level-1)
	if n > e.MaxCount {
		n = e.MaxCount
	}
	if n < 1 {
		n = 1
	}
	return n
}

// IsBossLevel reports whether a level spawns a boss wave.
func (b BossConfig) IsBossLevel(level int) bool {
	return b.Every > 0 && level > 0 && level%b.Every == 0
}

// HealthForLevel returns the boss health for a level.
func (b BossConfig) HealthForLevel(level int) int {
	return b.BaseHealth + b.HealthPerLevel*level
}
