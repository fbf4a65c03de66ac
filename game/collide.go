package game

import "image"

// Collidable is anything exposing an axis-aligned pixel bounding box.
type Collidable interface {
	Bounds() image.Rectangle
}

// Intersects reports whether two entity boxes overlap with non-zero
// area. Boxes are semi-open, so entities that merely touch edges do
// not collide.
func Intersects(a, b Collidable) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
