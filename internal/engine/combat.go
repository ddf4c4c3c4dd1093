package engine

// resolveCombat runs the four collision passes. Removals are marked during
// a pass and compacted after it, so no element is skipped or visited twice.
func (s *Session) resolveCombat() {
	s.enemyBulletsVsPlayer()
	s.enemyBulletsVsBarriers()
	s.playerBulletsVsEnemies()
	s.rosterBreach()
}

func (s *Session) enemyBulletsVsPlayer() {
	pr := s.Player.Rect()
	s.Bullets = keep(s.Bullets, func(b *Bullet) bool {
		if !b.Enemy || !b.Rect().Intersects(pr) {
			return true
		}
		if s.Player.Shielded {
			s.emit(PlayerHit{Cause: HitBullet, Shielded: true, Lives: s.Lives})
		} else {
			s.loseLife(HitBullet)
		}
		return false
	})
}

func (s *Session) enemyBulletsVsBarriers() {
	if len(s.Barriers) == 0 {
		return
	}
	s.Bullets = keep(s.Bullets, func(b *Bullet) bool {
		if !b.Enemy {
			return true
		}
		br := b.Rect()
		for i := range s.Barriers {
			bar := &s.Barriers[i]
			if bar.Health <= 0 || !br.Intersects(bar.Rect()) {
				continue
			}
			bar.Health--
			s.emit(BarrierDamaged{Health: bar.Health, Destroyed: bar.Health <= 0})
			return false
		}
		return true
	})
	s.Barriers = keep(s.Barriers, func(b *Barrier) bool { return b.Health > 0 })
}

func (s *Session) playerBulletsVsEnemies() {
	if len(s.Enemies) == 0 {
		return
	}
	s.Bullets = keep(s.Bullets, func(b *Bullet) bool {
		if b.Enemy {
			return true
		}
		br := b.Rect()
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if e.Health <= 0 || !br.Intersects(e.Rect()) {
				continue
			}
			e.Health--
			s.emit(EnemyHit{Kind: e.Kind, Remaining: e.Health})
			if e.Health <= 0 {
				points := s.rules.Points(e.Kind, s.Difficulty)
				s.Score += points
				s.emit(EnemyKilled{Kind: e.Kind, Points: points, X: e.X + e.W/2, Y: e.Y + e.H/2})
			}
			return false
		}
		return true
	})
	s.Enemies = keep(s.Enemies, func(e *Enemy) bool { return e.Health > 0 })
}

// rosterBreach costs a life when any enemy reaches the player line. With
// lives left the whole roster is replaced by a fresh wave of the current
// level.
func (s *Session) rosterBreach() {
	line := s.Player.Y
	breached := false
	for _, e := range s.Enemies {
		if e.Y+e.H >= line {
			breached = true
			break
		}
	}
	if !breached {
		return
	}

	s.loseLife(HitBreach)
	if s.over {
		return
	}
	s.Enemies = s.rules.CreateEnemies(s.Level, s.Difficulty, s.rng)
	s.emit(WaveReset{Level: s.Level})
}

// loseLife decrements lives and ends the session at zero. Once the session
// is over further hits have no effect.
func (s *Session) loseLife(cause HitCause) {
	if s.over {
		return
	}
	s.Lives--
	if s.Lives < 0 {
		s.Lives = 0
	}
	s.emit(PlayerHit{Cause: cause, Lives: s.Lives})
	if s.Lives == 0 {
		s.over = true
		s.emit(GameOver{FinalScore: s.Score, LevelsCompleted: s.Level - 1, Rank: -1})
	}
}
