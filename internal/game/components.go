package game

import "github.com/spacehole-rogue/alien_invasion/internal/world"

// Body is the position and size of a moving entity.
// Position is kept in floats so slow speeds accumulate; the rect is
// derived by truncation.
type Body struct {
	X, Y float64
	W, H int
}

// Rect returns the body's bounding rectangle.
func (b *Body) Rect() world.Rect {
	return world.RectFromFloat(b.X, b.Y, b.W, b.H)
}

// Enemy marks a fleet member and records its grid cell.
type Enemy struct {
	Row, Col int
}

// Projectile marks a shot fired by the ship.
type Projectile struct{}
