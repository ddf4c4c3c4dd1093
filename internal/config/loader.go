package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded configuration came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml
// -> embedded default -> hardcoded Default().
// The returned string names the source that was used. Errors are only
// returned for an explicit customPath; broken files in the search path are
// skipped.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return Default(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return Default(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads, parses and validates a single YAML file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default(), so partial files only override
// the keys they set, and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return data, nil
}

// Validate checks names and numeric ranges.
func Validate(cfg Config) error {
	var errs []error

	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height))
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 || cfg.Player.Speed <= 0 {
		errs = append(errs, errors.New("player width, height and speed must be positive"))
	}
	if cfg.Player.StartLives < 1 || cfg.Player.MaxLives < cfg.Player.StartLives {
		errs = append(errs, fmt.Errorf("lives: need 1 <= start_lives (%d) <= max_lives (%d)", cfg.Player.StartLives, cfg.Player.MaxLives))
	}
	if cfg.Enemies.Columns < 1 {
		errs = append(errs, errors.New("enemies.columns must be at least 1"))
	}
	if cfg.Enemies.ShootMinFrames < 1 || cfg.Enemies.ShootMaxFrames < cfg.Enemies.ShootMinFrames {
		errs = append(errs, errors.New("enemies: need 1 <= shoot_min_frames <= shoot_max_frames"))
	}
	if len(cfg.Enemies.Types) == 0 {
		errs = append(errs, errors.New("enemies.types must not be empty"))
	}

	seen := make(map[string]bool)
	hasLevelOne := false
	for i, t := range cfg.Enemies.Types {
		if !slices.Contains(EnemyKinds, t.Kind) {
			errs = append(errs, fmt.Errorf("enemies.types[%d]: unknown kind %q", i, t.Kind))
		}
		if seen[t.Kind] {
			errs = append(errs, fmt.Errorf("enemies.types[%d]: duplicate kind %q", i, t.Kind))
		}
		seen[t.Kind] = true
		if !slices.Contains(Patterns, t.Pattern) {
			errs = append(errs, fmt.Errorf("enemies.types[%d]: unknown pattern %q", i, t.Pattern))
		}
		if t.Health < 1 {
			errs = append(errs, fmt.Errorf("enemies.types[%d]: health must be at least 1", i))
		}
		if t.UnlockLevel <= 1 {
			hasLevelOne = true
		}
	}
	if len(cfg.Enemies.Types) > 0 && !hasLevelOne {
		errs = append(errs, errors.New("enemies.types: at least one kind must unlock at level 1"))
	}

	if cfg.Boss.Every < 0 {
		errs = append(errs, errors.New("boss.every must not be negative"))
	}
	if cfg.Boss.BaseHealth < 1 {
		errs = append(errs, errors.New("boss.base_health must be at least 1"))
	}
	if cfg.PowerUps.SpawnChance < 0 || cfg.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be in [0,1], got %v", cfg.PowerUps.SpawnChance))
	}
	if cfg.Barriers.Count < 0 {
		errs = append(errs, errors.New("barriers.count must not be negative"))
	}
	if cfg.Barriers.Count > 0 && cfg.Barriers.Health < 1 {
		errs = append(errs, errors.New("barriers.health must be at least 1"))
	}
	for _, p := range Presets {
		if cfg.Difficulty.Multiplier(p) <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.%s must be positive", p))
		}
	}
	if _, err := ParsePreset(string(cfg.Difficulty.Default)); err != nil {
		errs = append(errs, err)
	}
	if cfg.Timing.ReferenceTickMs <= 0 || cfg.Timing.MaxDeltaMs <= 0 {
		errs = append(errs, errors.New("timing values must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".invaders", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "invaders.yaml"))
}
