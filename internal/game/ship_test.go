package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

func TestShipStartsAtBottomCenter(t *testing.T) {
	field := world.Playfield{Width: 100, Height: 80}
	s := NewShip(field, 10, 8)

	assert.Equal(t, world.Rect{X: 45, Y: 72, W: 10, H: 8}, s.Rect())
	assert.Equal(t, 45.0, s.X)
}

func TestShipAccumulatesFractionalSpeed(t *testing.T) {
	s := NewShip(world.Playfield{Width: 100, Height: 80}, 10, 8)
	s.MovingRight = true

	s.Update(0.4)
	s.Update(0.4)
	assert.Equal(t, 45, s.Rect().X, "0.8px is not a whole pixel yet")
	s.Update(0.4)
	assert.Equal(t, 46, s.Rect().X)
	assert.InDelta(t, 46.2, s.X, 1e-9)
}

func TestShipStaysOnScreen(t *testing.T) {
	field := world.Playfield{Width: 100, Height: 80}
	s := NewShip(field, 10, 8)

	s.MovingRight = true
	for i := 0; i < 200; i++ {
		s.Update(1.5)
	}
	assert.GreaterOrEqual(t, s.Rect().Right(), field.Width)
	assert.Less(t, s.Rect().Left(), field.Width)
	stopped := s.Rect()
	s.Update(1.5)
	assert.Equal(t, stopped, s.Rect(), "no movement once the right edge is reached")

	s.MovingRight = false
	s.MovingLeft = true
	for i := 0; i < 200; i++ {
		s.Update(1.5)
	}
	assert.LessOrEqual(t, s.Rect().Left(), 0)
	assert.Greater(t, s.Rect().Right(), 0)
}

func TestShipOpposingIntentsCancel(t *testing.T) {
	s := NewShip(world.Playfield{Width: 100, Height: 80}, 10, 8)
	s.MovingLeft = true
	s.MovingRight = true
	s.Update(2)
	assert.Equal(t, 45, s.Rect().X)
}

func TestShipRecenter(t *testing.T) {
	s := NewShip(world.Playfield{Width: 100, Height: 80}, 10, 8)
	s.MovingLeft = true
	for i := 0; i < 10; i++ {
		s.Update(3)
	}
	s.Recenter()
	assert.Equal(t, 45, s.Rect().X)
	assert.Equal(t, 45.0, s.X)
	assert.Equal(t, 80, s.Rect().Bottom())

	s.Halt()
	assert.False(t, s.MovingLeft)
	assert.False(t, s.MovingRight)
}
