package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// Default returns the hardcoded configuration used when no YAML source
// can be read. It matches defaults/invaders.yaml.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:          50,
			Height:         40,
			Speed:          5,
			BottomMargin:   10,
			StartLives:     3,
			MaxLives:       5,
			FireCooldownMs: 250,
		},
		Bullets: BulletConfig{
			Width:       2,
			Height:      10,
			PlayerSpeed: 7,
			EnemySpeed:  4,
		},
		Enemies: EnemyConfig{
			Width:          38,
			Height:         30,
			GapX:           20,
			GapY:           20,
			OffsetX:        50,
			OffsetY:        50,
			Columns:        10,
			BaseCount:      6,
			CountPerLevel:  2,
			MaxCount:       40,
			BaseSpeed:      1,
			SpeedPerLevel:  0.5,
			MaxSpeed:       6,
			DescendStep:    10,
			ShootMinFrames: 90,
			ShootMaxFrames: 240,
			Types: []EnemyTypeConfig{
				{Kind: "basic", UnlockLevel: 1, Health: 1, SpeedMultiplier: 1.0, Points: 10, Pattern: "linear"},
				{Kind: "fast", UnlockLevel: 2, Health: 1, SpeedMultiplier: 1.6, Points: 15, Pattern: "linear"},
				{Kind: "tough", UnlockLevel: 3, Health: 3, SpeedMultiplier: 0.7, CanShoot: true, Points: 20, Pattern: "linear"},
				{Kind: "zigzag", UnlockLevel: 4, Health: 1, SpeedMultiplier: 1.0, Points: 10, Pattern: "zigzag"},
				{Kind: "circular", UnlockLevel: 5, Health: 2, SpeedMultiplier: 1.0, CanShoot: true, Points: 10, Pattern: "circular"},
				{Kind: "diving", UnlockLevel: 6, Health: 1, SpeedMultiplier: 1.2, Points: 10, Pattern: "diving"},
			},
		},
		Patterns: PatternConfig{
			ZigzagAmplitude: 50,
			ZigzagFrequency: 2,
			CircleRadius:    50,
			CircleDrift:     8,
			DiveThreshold:   0.6,
			DiveAmplitude:   100,
			DiveFrequency:   3,
		},
		Boss: BossConfig{
			Every:           10,
			Escorts:         5,
			BaseHealth:      20,
			HealthPerLevel:  5,
			SpeedMultiplier: 0.8,
			Points:          100,
			MaxWidth:        200,
			MaxHeight:       120,
			Volley:          3,
			VolleySpread:    20,
			BulletScale:     2,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:  0.001,
			Size:         20,
			FallSpeed:    2,
			DurationMs:   10000,
			SpreadOffset: 15,
		},
		Barriers: BarrierConfig{
			Count:        4,
			Width:        80,
			Height:       30,
			Health:       10,
			BottomOffset: 150,
		},
		Difficulty: DifficultyConfig{
			Default: DifficultyMedium,
			Easy:    1.0,
			Medium:  1.5,
			Hard:    2.0,
		},
		Timing: TimingConfig{
			ReferenceTickMs: 16,
			MaxDeltaMs:      100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
