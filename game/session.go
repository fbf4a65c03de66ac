package game

// Rand is the source of gameplay randomness. *common.Rand satisfies
// it; tests substitute fixed sequences to pin down branch outcomes.
type Rand interface {
	Random() float64
	RandomFloat(min, max float64) float64
	Chance(p float64) bool
}

// HighScoreStore persists the best score across runs. Implementations
// are best-effort: a failed load yields zero and a failed save is
// silently dropped.
type HighScoreStore interface {
	Load() int
	Save(v int)
}

// Event identifies a gameplay occurrence for the driver to present
// (sound, flash). Events accumulate during a tick and are drained once
// per frame via ConsumeEvents.
type Event int

const (
	EventShoot Event = iota
	EventEnemyHit
	EventEnemyDown
	EventPlayerHurt
	EventPickup
	EventLevelUp
	EventGameOver
)

// Session owns the complete mutable state of one game. It is written
// only by Update and HandleInput, called sequentially from the driver;
// the presentation layer reads it between calls.
type Session struct {
	Player        Player
	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	Enemies       []Enemy
	PowerUps      []PowerUp

	Score          int
	Level          int
	HighScore      int
	NextLevelScore int

	SpawnTimer    float64 // ms since last automatic spawn
	SpawnInterval int     // ms between spawns, shrinks with level
	LastShot      float64 // session-clock ms of the last shot
	ShotCooldown  int     // ms, 300 normal or 100 during rapid fire

	Paused   bool
	GameOver bool

	// Clock is the session time in ms. It advances by dt once per
	// active tick and freezes while suspended, so timed buffs never
	// expire during a pause.
	Clock float64

	cfg    Config
	rng    Rand
	store  HighScoreStore
	events []Event
}

// NewSession creates a session with a fresh player and the stored high
// score.
func NewSession(cfg Config, rng Rand, store HighScoreStore) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   rng,
		store: store,
	}
	s.initState()
	s.HighScore = store.Load()
	return s
}

// initState resets every piece of gameplay state to its starting
// value. Collections keep their capacity.
func (s *Session) initState() {
	s.Player = Player{
		X:     s.cfg.ArenaWidth / 2,
		Y:     s.cfg.ArenaHeight - 60,
		Speed: s.cfg.PlayerSpeed,
		Lives: s.cfg.PlayerLives,
	}

	s.PlayerBullets = s.PlayerBullets[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
	s.Enemies = s.Enemies[:0]
	s.PowerUps = s.PowerUps[:0]

	s.Score = 0
	s.Level = 1
	s.NextLevelScore = s.cfg.LevelUpScore

	s.SpawnTimer = 0
	s.SpawnInterval = s.cfg.BaseSpawnInterval
	s.ShotCooldown = FireCooldown
	s.LastShot = -FireCooldown // first trigger pull fires immediately

	s.Paused = false
	s.GameOver = false
	s.Clock = 0
	s.events = s.events[:0]
}

// Restart rebuilds the session from scratch and re-reads the stored
// high score. This is the only way out of the game-over state.
func (s *Session) Restart() {
	s.initState()
	s.HighScore = s.store.Load()
}

// TogglePause flips the pause flag. Game over cannot be paused away.
func (s *Session) TogglePause() {
	if s.GameOver {
		return
	}
	s.Paused = !s.Paused
}

// Suspended reports whether Update calls are currently no-ops.
func (s *Session) Suspended() bool {
	return s.Paused || s.GameOver
}

// Shoot fires from the player's nose: one straight bullet, or a triple
// spread while rapid fire is active.
func (s *Session) Shoot() {
	noseY := s.Player.Y - PlayerH/2

	if s.Clock < s.Player.RapidFireUntil {
		for _, vx := range [3]float64{-TripleSpreadVX, 0, TripleSpreadVX} {
			s.PlayerBullets = append(s.PlayerBullets, Bullet{
				Kind: PlayerBullet,
				X:    s.Player.X,
				Y:    noseY,
				VX:   vx,
				VY:   -s.cfg.BulletSpeed,
			})
		}
	} else {
		s.PlayerBullets = append(s.PlayerBullets, Bullet{
			Kind: PlayerBullet,
			X:    s.Player.X,
			Y:    noseY,
			VY:   -s.cfg.BulletSpeed,
		})
	}

	s.emit(EventShoot)
}

// DebugSpawn drops one extra enemy in immediately. Wired to a debug
// key in the driver.
func (s *Session) DebugSpawn() {
	if s.Suspended() {
		return
	}
	s.Enemies = append(s.Enemies, s.SpawnEnemy())
}

// hurtPlayer costs one life and opens the invulnerability window.
// Callers apply the window gate where the rules ask for one.
func (s *Session) hurtPlayer(now float64) {
	s.Player.Lives--
	if s.Player.Lives < 0 {
		s.Player.Lives = 0
	}
	s.Player.InvulnerableUntil = now + InvulnerableDuration
	s.emit(EventPlayerHurt)

	if s.Player.Lives <= 0 {
		s.triggerGameOver()
	}
}

// triggerGameOver enters the terminal state and persists a new high
// score. Idempotent: repeated lethal events in one tick are harmless.
func (s *Session) triggerGameOver() {
	if s.GameOver {
		return
	}
	s.GameOver = true

	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.store.Save(s.HighScore)
	}

	s.emit(EventGameOver)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// ConsumeEvents returns the events accumulated since the last call and
// clears the queue.
func (s *Session) ConsumeEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}
