package engine

// updatePowerUps expires the timed effect, rolls for a new drop, moves
// falling power-ups and resolves pickups.
func (s *Session) updatePowerUps(deltaMs float64) {
	pc := s.rules.cfg.PowerUps

	if s.Effect != EffectNone {
		s.EffectRemaining -= deltaMs
		if s.EffectRemaining <= 0 {
			s.expireEffect()
		}
	}

	chance := pc.SpawnChance * s.rules.Multiplier(s.Difficulty) * s.rules.ticks(deltaMs)
	if chance > 0 && s.rng.Float64() < chance {
		s.PowerUps = append(s.PowerUps, PowerUp{
			X:     s.rng.Range(0, s.rules.cfg.Field.Width-pc.Size),
			Y:     -pc.Size,
			Size:  pc.Size,
			Speed: pc.FallSpeed,
			Kind:  PowerUpKind(s.rng.Intn(int(powerUpCount))),
		})
	}

	ticks := s.rules.ticks(deltaMs)
	height := s.rules.cfg.Field.Height
	pr := s.Player.Rect()
	s.PowerUps = keep(s.PowerUps, func(p *PowerUp) bool {
		p.Y += p.Speed * ticks
		if p.Rect().Intersects(pr) {
			s.Collect(p.Kind)
			return false
		}
		return p.Y <= height
	})
}

// Collect applies a power-up. Timed effects overwrite the active effect
// and restart its timer; an extra life is instantaneous.
func (s *Session) Collect(kind PowerUpKind) {
	switch kind {
	case PowerUpShield:
		s.setEffect(EffectShield)
	case PowerUpRapidFire:
		s.setEffect(EffectRapidFire)
	case PowerUpExtraLife:
		s.Lives = min(s.Lives+1, s.rules.cfg.Player.MaxLives)
	}
	s.emit(PowerUpCollected{Kind: kind})
}

func (s *Session) setEffect(e Effect) {
	s.Effect = e
	s.EffectRemaining = s.rules.cfg.PowerUps.DurationMs
	s.Player.Shielded = e == EffectShield
	s.Player.RapidFire = e == EffectRapidFire
}

func (s *Session) expireEffect() {
	expired := s.Effect
	s.Effect = EffectNone
	s.EffectRemaining = 0
	s.Player.Shielded = false
	s.Player.RapidFire = false
	s.emit(PowerUpExpired{Effect: expired})
}
