package game

// SpawnEnemy builds one enemy for the current level, entering from
// just above the top edge at a random column. Speed, drift, health and
// score value all scale with level.
func (s *Session) SpawnEnemy() Enemy {
	lvl := float64(s.Level)
	drift := EnemyDriftBase + lvl*EnemyDriftPerLevel

	return Enemy{
		X:  s.rng.RandomFloat(EnemySpawnXMargin, s.cfg.ArenaWidth-EnemySpawnXMargin),
		Y:  EnemySpawnY,
		VX: s.rng.RandomFloat(-drift, drift),
		VY: s.rng.RandomFloat(
			s.cfg.EnemyMinSpeed+lvl*EnemySpeedMinPerLevel,
			s.cfg.EnemyMaxSpeed+lvl*EnemySpeedMaxPerLevel,
		),
		Health: 1 + s.Level/3,
		Score:  EnemyBaseScore + (s.Level-1)*EnemyScorePerLevel,
	}
}

// SpawnPowerUp builds a rapid-fire power-up falling from the given
// position. The kind field exists for future drop types.
func (s *Session) SpawnPowerUp(x, y float64) PowerUp {
	return PowerUp{
		Kind: PowerRapid,
		X:    x,
		Y:    y,
		VY:   PowerUpFallSpeed,
	}
}
