package game

import "github.com/spacehole-rogue/alien_invasion/internal/world"

// Ship is the player's ship. It is created once and repositioned on reset.
type Ship struct {
	// X is the precise horizontal position; the rect follows it.
	X    float64
	rect world.Rect

	MovingLeft  bool
	MovingRight bool

	field world.Playfield
}

// NewShip creates a ship of size w×h centered at the bottom of field.
func NewShip(field world.Playfield, w, h int) *Ship {
	s := &Ship{field: field, rect: world.Rect{W: w, H: h}}
	s.Recenter()
	return s
}

// Rect returns the ship's bounding rectangle.
func (s *Ship) Rect() world.Rect { return s.rect }

// Update moves the ship by speed in the direction of each held intent,
// as long as the ship's edge has not reached the side of the screen.
func (s *Ship) Update(speed float64) {
	if s.MovingRight && s.rect.Right() < s.field.Width {
		s.X += speed
	}
	if s.MovingLeft && s.rect.Left() > 0 {
		s.X -= speed
	}
	s.rect.X = int(s.X)
}

// Recenter puts the ship back at the bottom center of the screen.
func (s *Ship) Recenter() {
	s.rect = s.field.MidBottom(s.rect.W, s.rect.H)
	s.X = float64(s.rect.X)
}

// Halt clears both movement intents.
func (s *Ship) Halt() {
	s.MovingLeft = false
	s.MovingRight = false
}

// muzzle returns where a projectile of size w×h spawns: its mid-top on
// the ship's mid-top.
func (s *Ship) muzzle(w, h int) world.Rect {
	return world.Rect{X: s.rect.CenterX() - w/2, Y: s.rect.Top(), W: w, H: h}
}
