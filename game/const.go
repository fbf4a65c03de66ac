package game

// Arena margins and culling distances, in pixels.
const (
	// EdgeMargin is the boundary for player clamping and enemy bouncing.
	EdgeMargin = 20.0

	// BulletCullMargin is how far outside the arena a bullet may travel
	// before it is removed.
	BulletCullMargin = 20.0

	// EnemyExitMargin is how far past the bottom edge an enemy travels
	// before it escapes and costs a life.
	EnemyExitMargin = 40.0

	// PowerUpExitMargin is how far past the bottom edge a power-up
	// falls before it is lost.
	PowerUpExitMargin = 30.0
)

// Timing constants, milliseconds on the session clock.
const (
	InvulnerableDuration = 1500
	FireCooldown         = 300
	RapidFireCooldown    = 100
)

// Leveling and capacity constants.
const (
	MaxPlayerBullets    = 100
	MinSpawnInterval    = 250
	SpawnIntervalFactor = 0.88
	LevelScoreStep      = 30
)

// Per-tick probabilities.
const (
	PowerUpDropChance    = 0.12
	EnemyFireBaseChance  = 0.002
	EnemyFireLevelChance = 0.001
)

// Entity sizes, in pixels.
const (
	PlayerW = 32
	PlayerH = 32

	PlayerBulletW = 4
	PlayerBulletH = 12

	EnemyBulletW = 6
	EnemyBulletH = 6

	EnemyW = 28
	EnemyH = 28

	PowerUpW = 18
	PowerUpH = 18
)

// Spawner and motion parameters.
const (
	EnemySpawnY       = -30.0
	EnemySpawnXMargin = 40.0

	// Vertical speed range grows with level: the lower bound by 0.15
	// per level, the upper bound by 0.2.
	EnemySpeedMinPerLevel = 0.15
	EnemySpeedMaxPerLevel = 0.2

	// Horizontal drift is uniform in ±(base + perLevel*level).
	EnemyDriftBase     = 1.2
	EnemyDriftPerLevel = 0.05

	EnemyBaseScore     = 10
	EnemyScorePerLevel = 2

	EnemyBulletSpeed = 4.0
	PowerUpFallSpeed = 2.0

	// TripleSpreadVX is the horizontal velocity of the outer bullets
	// in the rapid-fire spread.
	TripleSpreadVX = 1.5

	// DiagonalFactor normalizes movement speed on diagonals (1/sqrt2).
	DiagonalFactor = 0.7071
)
