package game

// Intent is the instantaneous control state the driver derived from
// whatever device it polls. Opposed axes cancel; the mapper never sees
// raw key codes.
type Intent struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool
}

// HandleInput applies the movement and fire intents to the player.
// Diagonal movement is scaled so speed stays uniform, the position is
// clamped to the arena margins, and fire is gated by the shot
// cooldown. No-op while suspended.
func (s *Session) HandleInput(in Intent) {
	if s.Suspended() {
		return
	}

	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		dx *= DiagonalFactor
		dy *= DiagonalFactor
	}

	p := &s.Player
	p.X += dx * p.Speed
	p.Y += dy * p.Speed

	if p.X < EdgeMargin {
		p.X = EdgeMargin
	} else if p.X > s.cfg.ArenaWidth-EdgeMargin {
		p.X = s.cfg.ArenaWidth - EdgeMargin
	}
	if p.Y < EdgeMargin {
		p.Y = EdgeMargin
	} else if p.Y > s.cfg.ArenaHeight-EdgeMargin {
		p.Y = s.cfg.ArenaHeight - EdgeMargin
	}

	if in.Fire && s.Clock-s.LastShot >= float64(s.ShotCooldown) {
		s.Shoot()
		s.LastShot = s.Clock
	}
}
