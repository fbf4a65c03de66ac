package game

import (
	"image"
	"math"
)

// Player is the player craft. Exactly one exists per session; restart
// replaces it wholesale.
type Player struct {
	X, Y  float64
	Speed float64
	Lives int

	// Absolute session-clock timestamps, ms.
	InvulnerableUntil float64
	RapidFireUntil    float64
}

// Bounds implements Collidable.
func (p Player) Bounds() image.Rectangle {
	return boxAt(p.X, p.Y, PlayerW, PlayerH)
}

type BulletKind int

const (
	PlayerBullet BulletKind = iota
	EnemyBullet
)

// Bullet is a projectile. Player and enemy bullets share the shape but
// live in separate collections with different collision rules.
type Bullet struct {
	Kind   BulletKind
	X, Y   float64
	VX, VY float64
}

// Bounds implements Collidable.
func (b Bullet) Bounds() image.Rectangle {
	if b.Kind == EnemyBullet {
		return boxAt(b.X, b.Y, EnemyBulletW, EnemyBulletH)
	}
	return boxAt(b.X, b.Y, PlayerBulletW, PlayerBulletH)
}

// Enemy is a descending hostile craft.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Health int
	Score  int
}

// Bounds implements Collidable.
func (e Enemy) Bounds() image.Rectangle {
	return boxAt(e.X, e.Y, EnemyW, EnemyH)
}

type PowerUpKind int

const (
	PowerRapid PowerUpKind = iota
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerRapid:
		return "Rapid"
	default:
		return "Unknown"
	}
}

// PowerUp is a falling collectible dropped by destroyed enemies.
type PowerUp struct {
	Kind PowerUpKind
	X, Y float64
	VY   float64
}

// Bounds implements Collidable.
func (p PowerUp) Bounds() image.Rectangle {
	return boxAt(p.X, p.Y, PowerUpW, PowerUpH)
}

// boxAt builds the integer pixel box of width w and height h centered
// on (cx, cy).
func boxAt(cx, cy float64, w, h int) image.Rectangle {
	x0 := int(math.Round(cx)) - w/2
	y0 := int(math.Round(cy)) - h/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
