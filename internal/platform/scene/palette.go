// Package scene turns engine snapshots into flat display lists and maps
// device key state to input frames. It has no rendering dependencies so
// every host can share it.
package scene

import (
	"github.com/fixonz/malakainvadors/internal/core"
	"github.com/fixonz/malakainvadors/internal/engine"
)

// EnemyGlyph returns the character and color used for an enemy.
func EnemyGlyph(e engine.Enemy) (rune, core.Color) {
	switch e.Kind {
	case engine.KindFast:
		return 'V', core.ColorCyan
	case engine.KindTough:
		if e.Health < e.MaxHealth {
			return 'H', core.ColorYellow
		}
		return 'H', core.ColorOrange
	case engine.KindZigzag:
		return 'Z', core.ColorBrightMagenta
	case engine.KindCircular:
		return 'O', core.ColorBrightBlue
	case engine.KindDiving:
		return 'Y', core.ColorBrightRed
	case engine.KindBoss:
		return 'W', core.ColorMagenta
	default:
		return 'M', core.ColorGreen
	}
}

// PowerUpColor returns the color of a falling power-up.
func PowerUpColor(k engine.PowerUpKind) core.Color {
	switch k {
	case engine.PowerUpShield:
		return core.ColorBrightCyan
	case engine.PowerUpRapidFire:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

// PlayerColor returns the ship color, tinted while shielded.
func PlayerColor(p engine.Player) core.Color {
	if p.Shielded {
		return core.ColorBrightCyan
	}
	return core.ColorBrightGreen
}

// BulletColor distinguishes enemy fire from the player's.
func BulletColor(b engine.Bullet) core.Color {
	if b.Enemy {
		return core.ColorBrightRed
	}
	return core.ColorBrightYellow
}

// EffectLabel names the active timed effect for the HUD.
func EffectLabel(e engine.Effect) (string, core.Color) {
	switch e {
	case engine.EffectShield:
		return "SHIELD", core.ColorBrightCyan
	case engine.EffectRapidFire:
		return "RAPID", core.ColorBrightYellow
	}
	return "", core.ColorDefault
}

// BarrierWear returns 0 for an intact barrier up to 2 for a crumbling one.
func BarrierWear(health, maxHealth int) int {
	if maxHealth <= 0 {
		return 0
	}
	switch ratio := float64(health) / float64(maxHealth); {
	case ratio > 0.66:
		return 0
	case ratio > 0.33:
		return 1
	default:
		return 2
	}
}
