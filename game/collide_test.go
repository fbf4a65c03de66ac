package game

import "testing"

func TestIntersects_EnemyPairs(t *testing.T) {
	// Enemies are 28px wide, so centers 28 apart share only an edge.
	tests := []struct {
		name string
		a, b Enemy
		want bool
	}{
		{"same spot", Enemy{X: 100, Y: 100}, Enemy{X: 100, Y: 100}, true},
		{"partial overlap", Enemy{X: 100, Y: 100}, Enemy{X: 120, Y: 100}, true},
		{"touching edges", Enemy{X: 100, Y: 100}, Enemy{X: 128, Y: 100}, false},
		{"touching corners", Enemy{X: 100, Y: 100}, Enemy{X: 128, Y: 128}, false},
		{"one pixel in", Enemy{X: 100, Y: 100}, Enemy{X: 127, Y: 100}, true},
		{"apart", Enemy{X: 100, Y: 100}, Enemy{X: 200, Y: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersects_MixedShapes(t *testing.T) {
	player := Player{X: 240, Y: 580}

	inside := Bullet{Kind: EnemyBullet, X: 240, Y: 580}
	if !Intersects(inside, player) {
		t.Error("bullet inside the player box must intersect")
	}

	containedPowerUp := PowerUp{Kind: PowerRapid, X: 240, Y: 580}
	if !Intersects(containedPowerUp, player) {
		t.Error("fully contained box must intersect")
	}

	clear := Bullet{Kind: EnemyBullet, X: 240, Y: 500}
	if Intersects(clear, player) {
		t.Error("distant bullet must not intersect")
	}
}

func TestBounds_RoundsToPixelGrid(t *testing.T) {
	// Sub-pixel positions snap to the nearest integer center.
	a := Bullet{Kind: PlayerBullet, X: 100.4, Y: 100.4}
	b := Bullet{Kind: PlayerBullet, X: 100, Y: 100}
	if a.Bounds() != b.Bounds() {
		t.Errorf("bounds %v and %v should snap to the same box", a.Bounds(), b.Bounds())
	}

	c := Bullet{Kind: PlayerBullet, X: 100.6, Y: 100}
	if c.Bounds() == b.Bounds() {
		t.Error("rounding up should shift the box")
	}
}
