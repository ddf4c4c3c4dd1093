package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixonz/malakainvadors/internal/config"
)

// quietRules returns default rules with random power-up drops disabled.
func quietRules(t *testing.T, mutate func(*config.Config)) *Rules {
	t.Helper()
	cfg := config.Default()
	cfg.PowerUps.SpawnChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	r, err := NewRules(cfg)
	require.NoError(t, err)
	return r
}

func TestCircularStartsOneRadiusRightOfAnchor(t *testing.T) {
	tr := DefaultRules().trajectories()

	x, y := tr.Circular(100, 200, 0, 3)
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 200.0, y)
}

func TestPatternsArePureFunctions(t *testing.T) {
	tr := DefaultRules().trajectories()

	tests := []struct {
		name string
		fn   func(ix, iy, t, speed float64) (float64, float64)
	}{
		{"zigzag", tr.Zigzag},
		{"circular", tr.Circular},
		{"diving", tr.Diving},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, timer := range []float64{0, 0.25, 1, 3.7, 12} {
				x1, y1 := tc.fn(120, 80, timer, 2)
				x2, y2 := tc.fn(120, 80, timer, 2)
				assert.Equal(t, x1, x2)
				assert.Equal(t, y1, y2)
			}
		})
	}
}

func TestZigzagTrajectory(t *testing.T) {
	tr := DefaultRules().trajectories()

	x, y := tr.Zigzag(300, 100, 0, 2)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 100.0, y)

	x, y = tr.Zigzag(300, 100, 1, -2)
	assert.InDelta(t, 300+math.Sin(2)*50, x, 1e-9)
	assert.InDelta(t, 100+0.5*2*(1000.0/16), y, 1e-9, "descends at half speed regardless of sign")
}

func TestDivingTrajectory(t *testing.T) {
	tr := DefaultRules().trajectories()
	threshold := 0.6 * 600

	x, y := tr.Diving(200, 50, 0.1, 1)
	assert.Equal(t, 200.0, x, "no lateral motion before the dive line")
	assert.InDelta(t, 50+2*(100.0/16), y, 1e-9)

	x, y = tr.Diving(200, 50, 10, 1)
	assert.Equal(t, threshold, y, "vertical motion stops at the dive line")
	assert.InDelta(t, 200+math.Sin(30)*100, x, 1e-9)
}

func TestLinearEnemyReflectsAndDescends(t *testing.T) {
	r := DefaultRules()
	width := r.Config().Field.Width

	e := Enemy{X: width - 38 - 0.5, Y: 100, W: 38, H: 30, Speed: 2, Kind: KindBasic, Pattern: PatternLinear}
	r.moveEnemy(&e, 16)

	assert.Equal(t, -2.0, e.Speed)
	assert.Equal(t, 110.0, e.Y)
	assert.Equal(t, width-38, e.X)

	r.moveEnemy(&e, 16)
	assert.Equal(t, width-40, e.X, "moves back into the field after reflecting")
	assert.Equal(t, 110.0, e.Y)
}

func TestBossReflectsWithoutDescending(t *testing.T) {
	r := DefaultRules()

	boss := Enemy{X: 0.5, Y: 50, W: 114, H: 90, Speed: -1, Kind: KindBoss, Pattern: PatternZigzag}
	r.moveEnemy(&boss, 16)

	assert.Equal(t, 1.0, boss.Speed)
	assert.Equal(t, 50.0, boss.Y)
	assert.Equal(t, 0.0, boss.X)
}

func TestWallBounceHappensOnce(t *testing.T) {
	r := DefaultRules()
	width := r.Config().Field.Width

	e := Enemy{X: width - 38 - 1, Y: 100, W: 38, H: 30, Speed: 5, Kind: KindBasic, Pattern: PatternLinear}
	r.moveEnemy(&e, 16)
	require.Equal(t, width-38, e.X)
	require.Equal(t, 110.0, e.Y)
	require.Equal(t, -5.0, e.Speed)

	r.moveEnemy(&e, 0)
	assert.Equal(t, width-38, e.X)
	assert.Equal(t, 110.0, e.Y, "zero delta does not descend again")
	assert.Equal(t, -5.0, e.Speed, "zero delta does not reverse")

	r.moveEnemy(&e, 16)
	assert.Equal(t, width-43, e.X)
	assert.Equal(t, 110.0, e.Y)
}

func TestEnemyOnWallMovingAwayDoesNotReflect(t *testing.T) {
	r := DefaultRules()
	width := r.Config().Field.Width

	tests := []struct {
		name  string
		enemy Enemy
	}{
		{"left wall heading right", Enemy{X: 0, Y: 100, W: 38, H: 30, Speed: 2, Kind: KindBasic}},
		{"right wall heading left", Enemy{X: width - 38, Y: 100, W: 38, H: 30, Speed: -2, Kind: KindFast}},
		{"boss on right wall", Enemy{X: width - 114, Y: 50, W: 114, H: 90, Speed: -1, Kind: KindBoss, Pattern: PatternZigzag}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := tc.enemy
			for range 5 {
				r.moveEnemy(&e, 0)
			}
			assert.Equal(t, tc.enemy.X, e.X)
			assert.Equal(t, tc.enemy.Y, e.Y)
			assert.Equal(t, tc.enemy.Speed, e.Speed)
		})
	}
}

func TestPatternEnemyIsClampedIntoField(t *testing.T) {
	r := DefaultRules()

	e := Enemy{X: 0, Y: 100, W: 38, H: 30, Speed: 1, Kind: KindZigzag, Pattern: PatternZigzag, InitialX: 0, InitialY: 100, Timer: 1.584}
	r.moveEnemy(&e, 16)

	assert.InDelta(t, 1.6, e.Timer, 1e-9)
	assert.Equal(t, 0.0, e.X)
}

func TestMovePlayerStaysInField(t *testing.T) {
	r := DefaultRules()
	width := r.Config().Field.Width

	tests := []struct {
		name     string
		startX   float64
		left     bool
		right    bool
		expected float64
	}{
		{"left edge", 0, true, false, 0},
		{"right edge", width - 50, false, true, width - 50},
		{"moves right", 100, false, true, 105},
		{"moves left", 100, true, false, 95},
		{"both cancel", 100, true, true, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.startX, W: 50, H: 40, Speed: 5, MoveLeft: tc.left, MoveRight: tc.right}
			r.movePlayer(&p, 16)
			assert.Equal(t, tc.expected, p.X)
		})
	}
}

func TestMoveBulletsDropsOutOfBounds(t *testing.T) {
	r := DefaultRules()

	bullets := []Bullet{
		{X: 10, Y: 5, W: 2, H: 10, SpeedY: -7},     // player bullet still visible
		{X: 20, Y: -9, W: 2, H: 10, SpeedY: -7},    // leaves the top
		{X: 30, Y: 598, W: 2, H: 10, SpeedY: 4},    // leaves the bottom
		{X: 40, Y: 300, W: 2, H: 10, SpeedY: 4, Enemy: true},
	}
	bullets = r.moveBullets(bullets, 16)

	require.Len(t, bullets, 2)
	assert.Equal(t, 10.0, bullets[0].X)
	assert.Equal(t, -2.0, bullets[0].Y)
	assert.Equal(t, 40.0, bullets[1].X)
	assert.Equal(t, 304.0, bullets[1].Y)
}

func TestKeepCompactsInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6}
	got := keep(s, func(v *int) bool { return *v%2 == 0 })

	assert.Equal(t, []int{2, 4, 6}, got)
	assert.Equal(t, []int{0, 0, 0}, s[3:], "tail is cleared")
}
