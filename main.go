package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	sfx "github.com/mkarhu/skyraid/audio"
	"github.com/mkarhu/skyraid/common"
	"github.com/mkarhu/skyraid/game"
	"github.com/mkarhu/skyraid/score"
)

const configPath = "skyraid.yaml"

// maxFrameDelta caps dt after window drags or system stalls so the
// spawn timer does not dump a burst of enemies at once.
const maxFrameDelta = 100.0

var (
	colorBackground  = color.RGBA{0x10, 0x10, 0x18, 0xff}
	colorPlayer      = color.RGBA{0x58, 0xc8, 0xff, 0xff}
	colorPlayerShot  = color.RGBA{0xf8, 0xf8, 0xa0, 0xff}
	colorEnemy       = color.RGBA{0xe0, 0x50, 0x50, 0xff}
	colorEnemyShot   = color.RGBA{0xff, 0x90, 0x40, 0xff}
	colorPowerUp     = color.RGBA{0x60, 0xe8, 0x80, 0xff}
)

// App is the ebiten driver around one game session: it polls keys,
// pumps the fixed-tick update, and draws read-only snapshots.
type App struct {
	session  *game.Session
	sounds   *sfx.Manager
	cfg      game.Config
	lastTick time.Time
}

func NewApp(cfg game.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	return &App{
		session:  game.NewSession(cfg, common.NewRand(seed), score.Open("skyraid")),
		sounds:   sfx.NewManager(),
		cfg:      cfg,
		lastTick: time.Now(),
	}
}

func (a *App) Update() error {
	// Edge-triggered control keys work even while suspended.
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.session.DebugSpawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.sounds.Muted = !a.sounds.Muted
	}

	in := game.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyX),
	}

	now := time.Now()
	dt := float64(now.Sub(a.lastTick)) / float64(time.Millisecond)
	a.lastTick = now
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}

	a.session.HandleInput(in)
	a.session.Update(dt)

	for _, ev := range a.session.ConsumeEvents() {
		a.playEvent(ev)
	}

	return nil
}

func (a *App) playEvent(ev game.Event) {
	switch ev {
	case game.EventShoot:
		a.sounds.Play(sfx.EffectShoot)
	case game.EventEnemyHit:
		a.sounds.Play(sfx.EffectEnemyHit)
	case game.EventEnemyDown:
		a.sounds.Play(sfx.EffectEnemyDown)
	case game.EventPlayerHurt:
		a.sounds.Play(sfx.EffectPlayerHurt)
	case game.EventPickup:
		a.sounds.Play(sfx.EffectPickup)
	case game.EventLevelUp:
		a.sounds.Play(sfx.EffectLevelUp)
	case game.EventGameOver:
		a.sounds.Play(sfx.EffectGameOver)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s := a.session

	for _, b := range s.PlayerBullets {
		drawBox(screen, b.X, b.Y, game.PlayerBulletW, game.PlayerBulletH, colorPlayerShot)
	}
	for _, b := range s.EnemyBullets {
		drawBox(screen, b.X, b.Y, game.EnemyBulletW, game.EnemyBulletH, colorEnemyShot)
	}
	for _, e := range s.Enemies {
		drawBox(screen, e.X, e.Y, game.EnemyW, game.EnemyH, colorEnemy)
	}
	for _, p := range s.PowerUps {
		drawBox(screen, p.X, p.Y, game.PowerUpW, game.PowerUpH, colorPowerUp)
	}

	// Blink the player while the invulnerability window is open.
	if s.Clock >= s.Player.InvulnerableUntil || int(s.Clock/100)%2 == 0 {
		drawBox(screen, s.Player.X, s.Player.Y, game.PlayerW, game.PlayerH, colorPlayer)
	}

	hud := fmt.Sprintf("SCORE %d  HI %d  LV %d  LIVES %d", s.Score, s.HighScore, s.Level, s.Player.Lives)
	ebitenutil.DebugPrintAt(screen, hud, 4, 4)

	cx := int(a.cfg.ArenaWidth)/2 - 60
	cy := int(a.cfg.ArenaHeight) / 2
	if s.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - PRESS R TO RESTART", cx, cy)
	} else if s.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - PRESS P TO RESUME", cx, cy)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.ArenaWidth), int(a.cfg.ArenaHeight)
}

func drawBox(screen *ebiten.Image, cx, cy float64, w, h int, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(cx)-float32(w)/2, float32(cy)-float32(h)/2,
		float32(w), float32(h), clr, false)
}

func main() {
	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	app := NewApp(cfg)

	ebiten.SetWindowSize(int(cfg.ArenaWidth)*cfg.WindowScale, int(cfg.ArenaHeight)*cfg.WindowScale)
	ebiten.SetWindowTitle(cfg.WindowTitle)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
