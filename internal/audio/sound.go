// Package audio plays synthesized sound effects in response to engine
// events. Audio is optional: when no device is available the game runs
// with a Silent player.
package audio

import "github.com/fixonz/malakainvadors/internal/engine"

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundShoot
	SoundEnemyShoot
	SoundEnemyHit
	SoundExplosion
	SoundPlayerHit
	SoundShieldBlock
	SoundBarrier
	SoundPowerUp
	SoundPowerDown
	SoundLevelUp
	SoundBossWave
	SoundGameOver
)

var soundNames = [...]string{
	SoundNone:        "none",
	SoundShoot:       "shoot",
	SoundEnemyShoot:  "enemy_shoot",
	SoundEnemyHit:    "enemy_hit",
	SoundExplosion:   "explosion",
	SoundPlayerHit:   "player_hit",
	SoundShieldBlock: "shield_block",
	SoundBarrier:     "barrier",
	SoundPowerUp:     "power_up",
	SoundPowerDown:   "power_down",
	SoundLevelUp:     "level_up",
	SoundBossWave:    "boss_wave",
	SoundGameOver:    "game_over",
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// ForEvent maps an engine event to the effect it should trigger.
func ForEvent(ev engine.Event) Sound {
	switch e := ev.(type) {
	case engine.ShotFired:
		if e.Enemy {
			return SoundEnemyShoot
		}
		return SoundShoot
	case engine.EnemyHit:
		return SoundEnemyHit
	case engine.EnemyKilled:
		return SoundExplosion
	case engine.PlayerHit:
		if e.Shielded {
			return SoundShieldBlock
		}
		return SoundPlayerHit
	case engine.BarrierDamaged:
		if e.Destroyed {
			return SoundBarrier
		}
		return SoundNone
	case engine.PowerUpCollected:
		return SoundPowerUp
	case engine.PowerUpExpired:
		return SoundPowerDown
	case engine.LevelAdvanced:
		if e.Boss {
			return SoundBossWave
		}
		return SoundLevelUp
	case engine.GameOver:
		return SoundGameOver
	}
	return SoundNone
}

// SoundsFor maps a tick's events to effects, dropping silent events and
// repeats so a volley plays once.
func SoundsFor(events []engine.Event) []Sound {
	var out []Sound
	seen := make(map[Sound]bool)
	for _, ev := range events {
		s := ForEvent(ev)
		if s == SoundNone || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
