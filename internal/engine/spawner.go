package engine

import "math"

// CreateEnemies builds the roster for a new wave. Boss levels get one boss
// above a row of escorts; other levels get a grid of regular enemies whose
// kinds are drawn uniformly from the kinds unlocked at the level.
func (r *Rules) CreateEnemies(level int, d Difficulty, rng *RNG) []Enemy {
	if level < 1 {
		level = 1
	}
	if r.cfg.Boss.IsBossLevel(level) {
		boss := r.newBoss(level, d, rng)
		escorts := r.grid(level, d, rng, r.cfg.Boss.Escorts, boss.Y+boss.H+r.cfg.Enemies.GapY)
		return append([]Enemy{boss}, escorts...)
	}
	return r.grid(level, d, rng, r.cfg.Enemies.CountForLevel(level), r.cfg.Enemies.OffsetY)
}

// baseSpeed returns the level speed scaled by difficulty.
func (r *Rules) baseSpeed(level int, d Difficulty) float64 {
	return r.cfg.Enemies.SpeedForLevel(level) * r.Multiplier(d)
}

// grid lays out n regular enemies in centered rows starting at top.
func (r *Rules) grid(level int, d Difficulty, rng *RNG, n int, top float64) []Enemy {
	ec := r.cfg.Enemies
	kinds := r.EligibleKinds(level)
	if n <= 0 || len(kinds) == 0 {
		return nil
	}

	cellW := ec.Width + ec.GapX
	fit := int(math.Floor((r.cfg.Field.Width - 2*ec.OffsetX + ec.GapX) / cellW))
	cols := max(min(n, ec.Columns, fit), 1)

	enemies := make([]Enemy, 0, n)
	for i := range n {
		row, col := i/cols, i%cols
		x := ec.OffsetX + float64(col)*cellW
		y := top + float64(row)*(ec.Height+ec.GapY)
		kind := kinds[rng.Intn(len(kinds))]
		enemies = append(enemies, r.newEnemy(kind, x, y, level, d, rng))
	}
	return enemies
}

func (r *Rules) newEnemy(kind EnemyKind, x, y float64, level int, d Difficulty, rng *RNG) Enemy {
	ks := r.Stats(kind)
	e := Enemy{
		X:        x,
		Y:        y,
		W:        r.cfg.Enemies.Width,
		H:        r.cfg.Enemies.Height,
		Speed:    r.baseSpeed(level, d) * ks.SpeedMultiplier,
		Kind:     kind,
		Health:   ks.Health,
		CanShoot: ks.CanShoot,
		Pattern:  ks.Pattern,
		InitialX: x,
		InitialY: y,
	}
	e.MaxHealth = e.Health
	if e.CanShoot {
		e.ShootCooldown = r.rollShootCooldown(d, rng)
	}
	return e
}

func (r *Rules) newBoss(level int, d Difficulty, rng *RNG) Enemy {
	ec, bc := r.cfg.Enemies, r.cfg.Boss
	scale := 2 + float64(level)/10
	w := math.Min(ec.Width*scale, bc.MaxWidth)
	h := math.Min(ec.Height*scale, bc.MaxHeight)
	x := (r.cfg.Field.Width - w) / 2
	y := ec.OffsetY

	boss := Enemy{
		X:        x,
		Y:        y,
		W:        w,
		H:        h,
		Speed:    r.baseSpeed(level, d) * bc.SpeedMultiplier,
		Kind:     KindBoss,
		Health:   max(bc.HealthForLevel(level), 1),
		CanShoot: true,
		Pattern:  PatternLinear,
		InitialX: x,
		InitialY: y,
	}
	boss.MaxHealth = boss.Health
	boss.ShootCooldown = r.rollShootCooldown(d, rng)
	return boss
}

// rollShootCooldown draws the frames until an enemy fires again.
func (r *Rules) rollShootCooldown(d Difficulty, rng *RNG) float64 {
	ec := r.cfg.Enemies
	frames := float64(ec.ShootMinFrames + rng.Intn(ec.ShootMaxFrames-ec.ShootMinFrames+1))
	return frames / r.Multiplier(d)
}

// enemyFire advances an enemy's fire cooldown and returns the bullets it
// shoots this tick.
func (r *Rules) enemyFire(e *Enemy, deltaMs float64, d Difficulty, rng *RNG) []Bullet {
	if !e.CanShoot {
		return nil
	}
	e.ShootCooldown -= r.ticks(deltaMs)
	if e.ShootCooldown > 0 {
		return nil
	}
	e.ShootCooldown = r.rollShootCooldown(d, rng)

	bc := r.cfg.Bullets
	cx := e.X + e.W/2
	if e.Kind != KindBoss {
		return []Bullet{{X: cx - bc.Width/2, Y: e.Y + e.H, W: bc.Width, H: bc.Height, SpeedY: bc.EnemySpeed, Enemy: true}}
	}

	boss := r.cfg.Boss
	w, h := bc.Width*boss.BulletScale, bc.Height*boss.BulletScale
	volley := make([]Bullet, 0, boss.Volley)
	for i := range boss.Volley {
		offset := (float64(i) - float64(boss.Volley-1)/2) * boss.VolleySpread
		volley = append(volley, Bullet{X: cx - w/2 + offset, Y: e.Y + e.H, W: w, H: h, SpeedY: bc.EnemySpeed, Enemy: true})
	}
	return volley
}

// NewBarriers places the configured barriers evenly across the field.
func (r *Rules) NewBarriers() []Barrier {
	bc := r.cfg.Barriers
	if bc.Count <= 0 {
		return nil
	}
	spacing := r.cfg.Field.Width / float64(bc.Count+1)
	barriers := make([]Barrier, 0, bc.Count)
	for i := range bc.Count {
		barriers = append(barriers, Barrier{
			X:      spacing*float64(i+1) - bc.Width/2,
			Y:      r.cfg.Field.Height - bc.BottomOffset,
			W:      bc.Width,
			H:      bc.Height,
			Health: bc.Health,
		})
	}
	return barriers
}
