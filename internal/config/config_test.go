package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  speed: 9\nboss:\n  every: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 9.0, cfg.Player.Speed)
	assert.Equal(t, 5, cfg.Boss.Every)
	assert.Equal(t, Default().Player.Width, cfg.Player.Width)
	assert.Len(t, cfg.Enemies.Types, 6)
}

func TestValidateRejectsUnknownNames(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "enemies:\n  types:\n    - {kind: ufo, unlock_level: 1, health: 1, pattern: linear}\n"},
		{"unknown pattern", "enemies:\n  types:\n    - {kind: basic, unlock_level: 1, health: 1, pattern: spiral}\n"},
		{"no level one kind", "enemies:\n  types:\n    - {kind: fast, unlock_level: 3, health: 1, pattern: linear}\n"},
		{"zero health", "enemies:\n  types:\n    - {kind: basic, unlock_level: 1, health: 0, pattern: linear}\n"},
		{"bad difficulty", "difficulty:\n  default: nightmare\n"},
		{"lives out of range", "player:\n  start_lives: 7\n  max_lives: 5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  width: 640\n"), 0o644))

	cfg, source, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 640.0, cfg.Field.Width)
	assert.Equal(t, 600.0, cfg.Field.Height)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [not, a, map"), 0o644))
	_, _, err = Load(bad)
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"normal", DifficultyMedium, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, got)
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	d := Default().Difficulty
	assert.Equal(t, 1.0, d.Multiplier(DifficultyEasy))
	assert.Equal(t, 1.5, d.Multiplier(DifficultyMedium))
	assert.Equal(t, 2.0, d.Multiplier(DifficultyHard))
	assert.Equal(t, 1.0, d.Multiplier("unknown"))
}

func TestLevelScaling(t *testing.T) {
	e := Default().Enemies

	assert.Equal(t, 6, e.CountForLevel(1))
	assert.Equal(t, 8, e.CountForLevel(2))
	assert.Equal(t, 40, e.CountForLevel(100))
	assert.Equal(t, 6, e.CountForLevel(0))

	assert.InDelta(t, 1.5, e.SpeedForLevel(1), 1e-9)
	assert.InDelta(t, 6.0, e.SpeedForLevel(50), 1e-9)

	b := Default().Boss
	assert.True(t, b.IsBossLevel(10))
	assert.True(t, b.IsBossLevel(20))
	assert.False(t, b.IsBossLevel(5))
	assert.Equal(t, 70, b.HealthForLevel(10))
}
