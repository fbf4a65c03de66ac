package game

// Update advances the world by dt milliseconds. While paused or game
// over it is a no-op. Phase order matters: spawning, motion, the four
// collision passes, buff expiry, leveling and the bullet cap must run
// exactly in this sequence. All removal is filter-rebuild, so an
// entity consumed by an earlier phase simply no longer exists for the
// later ones.
func (s *Session) Update(dt float64) {
	if s.Suspended() {
		return
	}

	s.Clock += dt
	now := s.Clock

	s.accumulateSpawn(dt)
	s.advancePlayerBullets()
	s.advanceEnemies(now)
	s.advanceEnemyBullets()
	s.advancePowerUps()
	s.resolveBulletHits()
	s.resolveEnemyBulletsVsPlayer(now)
	s.resolveEnemiesVsPlayer(now)
	s.collectPowerUps(now)
	s.expireRapidFire(now)
	s.checkLevelUp()
	s.capPlayerBullets()
}

// accumulateSpawn feeds the spawn timer and releases one enemy per
// elapsed interval.
func (s *Session) accumulateSpawn(dt float64) {
	s.SpawnTimer += dt
	if s.SpawnTimer >= float64(s.SpawnInterval) {
		s.SpawnTimer = 0
		s.Enemies = append(s.Enemies, s.SpawnEnemy())
	}
}

func (s *Session) advancePlayerBullets() {
	kept := s.PlayerBullets[:0]
	for _, b := range s.PlayerBullets {
		b.X += b.VX
		b.Y += b.VY
		if b.X < -BulletCullMargin || b.X > s.cfg.ArenaWidth+BulletCullMargin ||
			b.Y < -BulletCullMargin || b.Y > s.cfg.ArenaHeight+BulletCullMargin {
			continue
		}
		kept = append(kept, b)
	}
	s.PlayerBullets = kept
}

// advanceEnemies moves every enemy, bounces them off the side margins,
// charges a life for any that escape past the bottom, and rolls each
// survivor's fire chance.
func (s *Session) advanceEnemies(now float64) {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		e.X += e.VX
		e.Y += e.VY

		if e.X < EdgeMargin {
			e.X = EdgeMargin
			e.VX = -e.VX
		} else if e.X > s.cfg.ArenaWidth-EdgeMargin {
			e.X = s.cfg.ArenaWidth - EdgeMargin
			e.VX = -e.VX
		}

		if e.Y > s.cfg.ArenaHeight+EnemyExitMargin {
			// An escape costs a life no matter the invulnerability
			// window, but still opens one.
			s.hurtPlayer(now)
			continue
		}

		if s.rng.Chance(EnemyFireBaseChance + EnemyFireLevelChance*float64(s.Level)) {
			s.EnemyBullets = append(s.EnemyBullets, Bullet{
				Kind: EnemyBullet,
				X:    e.X,
				Y:    e.Y,
				VY:   EnemyBulletSpeed,
			})
		}

		kept = append(kept, e)
	}
	s.Enemies = kept
}

// advanceEnemyBullets moves enemy bullets and culls only on vertical
// exit; horizontal drift never removes them.
func (s *Session) advanceEnemyBullets() {
	kept := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		b.X += b.VX
		b.Y += b.VY
		if b.Y < -BulletCullMargin || b.Y > s.cfg.ArenaHeight+BulletCullMargin {
			continue
		}
		kept = append(kept, b)
	}
	s.EnemyBullets = kept
}

func (s *Session) advancePowerUps() {
	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Y += p.VY
		if p.Y > s.cfg.ArenaHeight+PowerUpExitMargin {
			continue
		}
		kept = append(kept, p)
	}
	s.PowerUps = kept
}

// resolveBulletHits runs player bullets against enemies. Each bullet
// spends itself on its first hit. Destroyed enemies score and may drop
// a power-up; they are compacted out afterwards so later bullets pass
// through the spot where one died.
func (s *Session) resolveBulletHits() {
	keptBullets := s.PlayerBullets[:0]
	for _, b := range s.PlayerBullets {
		hit := false
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if e.Health <= 0 {
				continue
			}
			if !Intersects(b, *e) {
				continue
			}

			hit = true
			e.Health--
			if e.Health <= 0 {
				s.Score += e.Score
				s.emit(EventEnemyDown)
				if s.rng.Chance(PowerUpDropChance) {
					s.PowerUps = append(s.PowerUps, s.SpawnPowerUp(e.X, e.Y))
				}
			} else {
				s.emit(EventEnemyHit)
			}
			break
		}
		if !hit {
			keptBullets = append(keptBullets, b)
		}
	}
	s.PlayerBullets = keptBullets

	keptEnemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Health > 0 {
			keptEnemies = append(keptEnemies, e)
		}
	}
	s.Enemies = keptEnemies
}

// resolveEnemyBulletsVsPlayer consumes enemy bullets that strike the
// player outside the invulnerability window. A bullet overlapping an
// invulnerable player passes through untouched.
func (s *Session) resolveEnemyBulletsVsPlayer(now float64) {
	kept := s.EnemyBullets[:0]
	for _, b := range s.EnemyBullets {
		if now >= s.Player.InvulnerableUntil && Intersects(b, s.Player) {
			s.hurtPlayer(now)
			continue
		}
		kept = append(kept, b)
	}
	s.EnemyBullets = kept
}

// resolveEnemiesVsPlayer is the ramming case: the enemy itself is
// destroyed on contact along with the life it takes.
func (s *Session) resolveEnemiesVsPlayer(now float64) {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if now >= s.Player.InvulnerableUntil && Intersects(e, s.Player) {
			s.hurtPlayer(now)
			continue
		}
		kept = append(kept, e)
	}
	s.Enemies = kept
}

// collectPowerUps applies any power-up the player touches. Collection
// is never gated by invulnerability.
func (s *Session) collectPowerUps(now float64) {
	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		if !Intersects(p, s.Player) {
			kept = append(kept, p)
			continue
		}
		switch p.Kind {
		case PowerRapid:
			s.Player.RapidFireUntil = now + float64(s.cfg.PowerUpDuration)
			s.ShotCooldown = RapidFireCooldown
		}
		s.emit(EventPickup)
	}
	s.PowerUps = kept
}

// expireRapidFire restores the normal cooldown once the buff window
// has passed. Idempotent, safe to run every tick.
func (s *Session) expireRapidFire(now float64) {
	if now > s.Player.RapidFireUntil {
		s.ShotCooldown = FireCooldown
	}
}

// checkLevelUp advances the level once the score threshold is reached,
// tightening the spawn interval toward its floor.
func (s *Session) checkLevelUp() {
	if s.Score < s.NextLevelScore {
		return
	}
	s.Level++
	s.SpawnInterval = int(float64(s.SpawnInterval) * SpawnIntervalFactor)
	if s.SpawnInterval < MinSpawnInterval {
		s.SpawnInterval = MinSpawnInterval
	}
	s.NextLevelScore += s.cfg.LevelUpScore + s.Level*LevelScoreStep
	s.emit(EventLevelUp)
}

// capPlayerBullets drops the oldest bullets over the hard cap.
func (s *Session) capPlayerBullets() {
	if n := len(s.PlayerBullets) - MaxPlayerBullets; n > 0 {
		s.PlayerBullets = append(s.PlayerBullets[:0], s.PlayerBullets[n:]...)
	}
}
