package game

import (
	"testing"
)

// stubRand plays back scripted values. Floats are consumed by Random
// and RandomFloat (as the fraction of the range), chance outcomes by
// Chance. Exhausted scripts fall back to 0 and false.
type stubRand struct {
	floats  []float64
	fi      int
	chances []bool
	ci      int
	probs   []float64 // every p passed to Chance, in call order
}

func (r *stubRand) Random() float64 {
	if r.fi >= len(r.floats) {
		return 0
	}
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *stubRand) RandomFloat(min, max float64) float64 {
	return min + r.Random()*(max-min)
}

func (r *stubRand) Chance(p float64) bool {
	r.probs = append(r.probs, p)
	if r.ci >= len(r.chances) {
		return false
	}
	v := r.chances[r.ci]
	r.ci++
	return v
}

type fakeStore struct {
	stored int
	saved  []int
}

func (f *fakeStore) Load() int  { return f.stored }
func (f *fakeStore) Save(v int) { f.stored = v; f.saved = append(f.saved, v) }

func newTestSession(rng Rand) (*Session, *fakeStore) {
	if rng == nil {
		rng = &stubRand{}
	}
	store := &fakeStore{}
	return NewSession(DefaultConfig(), rng, store), store
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestNewSession_StartingState(t *testing.T) {
	s, _ := newTestSession(nil)
	cfg := DefaultConfig()

	if s.Player.X != cfg.ArenaWidth/2 || s.Player.Y != cfg.ArenaHeight-60 {
		t.Errorf("player starts at (%v,%v), want (%v,%v)",
			s.Player.X, s.Player.Y, cfg.ArenaWidth/2, cfg.ArenaHeight-60)
	}
	if s.Player.Lives != cfg.PlayerLives {
		t.Errorf("lives = %d, want %d", s.Player.Lives, cfg.PlayerLives)
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}
	if s.NextLevelScore != cfg.LevelUpScore {
		t.Errorf("next level score = %d, want %d", s.NextLevelScore, cfg.LevelUpScore)
	}
	if s.SpawnInterval != cfg.BaseSpawnInterval {
		t.Errorf("spawn interval = %d, want %d", s.SpawnInterval, cfg.BaseSpawnInterval)
	}
	if s.ShotCooldown != FireCooldown {
		t.Errorf("shot cooldown = %d, want %d", s.ShotCooldown, FireCooldown)
	}
	if s.Paused || s.GameOver {
		t.Error("new session must not be suspended")
	}
}

func TestNewSession_LoadsHighScore(t *testing.T) {
	store := &fakeStore{stored: 420}
	s := NewSession(DefaultConfig(), &stubRand{}, store)
	if s.HighScore != 420 {
		t.Errorf("high score = %d, want 420", s.HighScore)
	}
}

func TestSession_FirstShotFiresImmediately(t *testing.T) {
	s, _ := newTestSession(nil)
	s.HandleInput(Intent{Fire: true})
	if len(s.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(s.PlayerBullets))
	}
}

func TestSession_Shoot_Single(t *testing.T) {
	s, _ := newTestSession(nil)
	s.Shoot()

	if len(s.PlayerBullets) != 1 {
		t.Fatalf("bullets = %d, want 1", len(s.PlayerBullets))
	}
	b := s.PlayerBullets[0]
	if b.Kind != PlayerBullet {
		t.Errorf("kind = %v, want PlayerBullet", b.Kind)
	}
	if b.X != s.Player.X || b.Y != s.Player.Y-PlayerH/2 {
		t.Errorf("bullet at (%v,%v), want nose (%v,%v)",
			b.X, b.Y, s.Player.X, s.Player.Y-PlayerH/2)
	}
	if b.VX != 0 || b.VY != -DefaultConfig().BulletSpeed {
		t.Errorf("velocity = (%v,%v), want (0,%v)", b.VX, b.VY, -DefaultConfig().BulletSpeed)
	}
}

func TestSession_Shoot_TripleDuringRapidFire(t *testing.T) {
	s, _ := newTestSession(nil)
	s.Player.RapidFireUntil = 1000
	s.Shoot()

	if len(s.PlayerBullets) != 3 {
		t.Fatalf("bullets = %d, want 3", len(s.PlayerBullets))
	}
	wantVX := []float64{-TripleSpreadVX, 0, TripleSpreadVX}
	for i, b := range s.PlayerBullets {
		if b.VX != wantVX[i] {
			t.Errorf("bullet %d VX = %v, want %v", i, b.VX, wantVX[i])
		}
		if b.VY != -DefaultConfig().BulletSpeed {
			t.Errorf("bullet %d VY = %v, want %v", i, b.VY, -DefaultConfig().BulletSpeed)
		}
	}
}

func TestSession_TogglePause(t *testing.T) {
	s, _ := newTestSession(nil)

	s.TogglePause()
	if !s.Paused || !s.Suspended() {
		t.Error("first toggle must pause")
	}
	s.TogglePause()
	if s.Paused {
		t.Error("second toggle must resume")
	}

	s.GameOver = true
	s.TogglePause()
	if s.Paused {
		t.Error("pause must not toggle after game over")
	}
}

func TestSession_Restart(t *testing.T) {
	store := &fakeStore{stored: 100}
	s := NewSession(DefaultConfig(), &stubRand{}, store)

	s.Score = 250
	s.Level = 4
	s.Player.Lives = 0
	s.GameOver = true
	s.Enemies = append(s.Enemies, Enemy{X: 100, Y: 100, Health: 1})
	s.PlayerBullets = append(s.PlayerBullets, Bullet{})
	s.Clock = 9999

	store.stored = 300 // another run raised the record meanwhile
	s.Restart()

	if s.Score != 0 || s.Level != 1 || s.GameOver || s.Clock != 0 {
		t.Errorf("restart left score=%d level=%d gameOver=%v clock=%v",
			s.Score, s.Level, s.GameOver, s.Clock)
	}
	if len(s.Enemies) != 0 || len(s.PlayerBullets) != 0 {
		t.Error("restart must clear all entities")
	}
	if s.Player.Lives != DefaultConfig().PlayerLives {
		t.Errorf("lives = %d, want %d", s.Player.Lives, DefaultConfig().PlayerLives)
	}
	if s.HighScore != 300 {
		t.Errorf("high score after restart = %d, want reloaded 300", s.HighScore)
	}
}

func TestSession_ConsumeEventsDrainsQueue(t *testing.T) {
	s, _ := newTestSession(nil)
	s.Shoot()

	ev := s.ConsumeEvents()
	if !hasEvent(ev, EventShoot) {
		t.Errorf("events = %v, want EventShoot", ev)
	}
	if again := s.ConsumeEvents(); len(again) != 0 {
		t.Errorf("second drain returned %v, want empty", again)
	}
}

func TestSession_GameOverSavesNewHighScore(t *testing.T) {
	store := &fakeStore{stored: 50}
	s := NewSession(DefaultConfig(), &stubRand{}, store)
	s.Score = 150
	s.Player.Lives = 1

	s.hurtPlayer(0)

	if !s.GameOver {
		t.Fatal("losing the last life must end the game")
	}
	if s.HighScore != 150 {
		t.Errorf("high score = %d, want 150", s.HighScore)
	}
	if len(store.saved) != 1 || store.saved[0] != 150 {
		t.Errorf("store saves = %v, want [150]", store.saved)
	}
}

func TestSession_GameOverKeepsOldHighScore(t *testing.T) {
	store := &fakeStore{stored: 500}
	s := NewSession(DefaultConfig(), &stubRand{}, store)
	s.Score = 150
	s.Player.Lives = 1

	s.hurtPlayer(0)

	if s.HighScore != 500 {
		t.Errorf("high score = %d, want untouched 500", s.HighScore)
	}
	if len(store.saved) != 0 {
		t.Errorf("store saves = %v, want none", store.saved)
	}
}

func TestSession_DebugSpawn(t *testing.T) {
	s, _ := newTestSession(nil)
	s.DebugSpawn()
	if len(s.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(s.Enemies))
	}

	s.Paused = true
	s.DebugSpawn()
	if len(s.Enemies) != 1 {
		t.Error("debug spawn must be a no-op while suspended")
	}
}
