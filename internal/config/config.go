// Package config provides YAML-based game configuration loading and
// difficulty management for the invaders simulation.
package config

// Config contains all tunable parameters of the simulation.
// Positions and sizes are in play-field units, speeds in units per
// reference tick unless stated otherwise.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Patterns   PatternConfig    `yaml:"patterns"`
	Boss       BossConfig       `yaml:"boss"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Barriers   BarrierConfig    `yaml:"barriers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
}

// FieldConfig defines the logical play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	BottomMargin   float64 `yaml:"bottom_margin"`
	StartLives     int     `yaml:"start_lives"`
	MaxLives       int     `yaml:"max_lives"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"`
}

// BulletConfig defines projectile sizes and speeds.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

// EnemyConfig defines wave layout and base enemy stats.
type EnemyConfig struct {
	Width          float64           `yaml:"width"`
	Height         float64           `yaml:"height"`
	GapX           float64           `yaml:"gap_x"`
	GapY           float64           `yaml:"gap_y"`
	OffsetX        float64           `yaml:"offset_x"`
	OffsetY        float64           `yaml:"offset_y"`
	Columns        int               `yaml:"columns"`
	BaseCount      int               `yaml:"base_count"`
	CountPerLevel  int               `yaml:"count_per_level"`
	MaxCount       int               `yaml:"max_count"`
	BaseSpeed      float64           `yaml:"base_speed"`
	SpeedPerLevel  float64           `yaml:"speed_per_level"`
	MaxSpeed       float64           `yaml:"max_speed"`
	DescendStep    float64           `yaml:"descend_step"`
	ShootMinFrames int               `yaml:"shoot_min_frames"`
	ShootMaxFrames int               `yaml:"shoot_max_frames"`
	Types          []EnemyTypeConfig `yaml:"types"`
}

// EnemyTypeConfig defines the fixed modifiers of one regular enemy kind.
type EnemyTypeConfig struct {
	Kind            string  `yaml:"kind"`
	UnlockLevel     int     `yaml:"unlock_level"`
	Health          int     `yaml:"health"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	CanShoot        bool    `yaml:"can_shoot"`
	Points          int     `yaml:"points"`
	Pattern         string  `yaml:"pattern"`
}

// PatternConfig defines the movement pattern constants.
type PatternConfig struct {
	ZigzagAmplitude float64 `yaml:"zigzag_amplitude"`
	ZigzagFrequency float64 `yaml:"zigzag_frequency"`
	CircleRadius    float64 `yaml:"circle_radius"`
	CircleDrift     float64 `yaml:"circle_drift"`   // units per second
	DiveThreshold   float64 `yaml:"dive_threshold"` // fraction of field height
	DiveAmplitude   float64 `yaml:"dive_amplitude"`
	DiveFrequency   float64 `yaml:"dive_frequency"`
}

// BossConfig defines boss levels.
type BossConfig struct {
	Every           int     `yaml:"every"`
	Escorts         int     `yaml:"escorts"`
	BaseHealth      int     `yaml:"base_health"`
	HealthPerLevel  int     `yaml:"health_per_level"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	Points          int     `yaml:"points"`
	MaxWidth        float64 `yaml:"max_width"`
	MaxHeight       float64 `yaml:"max_height"`
	Volley          int     `yaml:"volley"`
	VolleySpread    float64 `yaml:"volley_spread"`
	BulletScale     float64 `yaml:"bullet_scale"`
}

// PowerUpConfig defines power-up drops and effects.
type PowerUpConfig struct {
	SpawnChance  float64 `yaml:"spawn_chance"` // per reference tick at multiplier 1
	Size         float64 `yaml:"size"`
	FallSpeed    float64 `yaml:"fall_speed"`
	DurationMs   float64 `yaml:"duration_ms"`
	SpreadOffset float64 `yaml:"spread_offset"`
}

// BarrierConfig defines the static shields above the player.
type BarrierConfig struct {
	Count        int     `yaml:"count"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Health       int     `yaml:"health"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// TimingConfig defines frame timing normalization.
type TimingConfig struct {
	ReferenceTickMs float64 `yaml:"reference_tick_ms"`
	MaxDeltaMs      float64 `yaml:"max_delta_ms"`
}

// Known enemy kind and movement pattern names accepted in YAML.
var (
	EnemyKinds = []string{"basic", "fast", "tough", "zigzag", "circular", "diving"}
	Patterns   = []string{"linear", "zigzag", "circular", "diving"}
)
