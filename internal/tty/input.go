package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// HoldTicks is how long an arrow press keeps the ship moving. Terminals
// report key repeats but never releases, so a held key is a press that
// keeps being refreshed.
const HoldTicks = 8

// Controls turns terminal events into per-tick game input.
type Controls struct {
	left, right int
	fire, start bool
	click       *world.Point
}

// HandleKey records a key press. Reports false when the player asked to
// quit.
func (c *Controls) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		c.left, c.right = HoldTicks, 0
	case tcell.KeyRight:
		c.right, c.left = HoldTicks, 0
	case tcell.KeyEnter:
		c.start = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			c.fire = true
		case 'p', 'P':
			c.start = true
		case 'h', 'a':
			c.left, c.right = HoldTicks, 0
		case 'l', 'd':
			c.right, c.left = HoldTicks, 0
		case 's', 'j':
			c.left, c.right = 0, 0
		}
	}
	return true
}

// Click records a mouse click at a play-field point.
func (c *Controls) Click(p world.Point) {
	c.click = &p
}

// Next returns the input for one tick and consumes one-shot intents.
func (c *Controls) Next() game.Input {
	in := game.Input{
		MoveLeft:  c.left > 0,
		MoveRight: c.right > 0,
		Fire:      c.fire,
		Start:     c.start || c.click != nil,
		StartAt:   c.click,
	}
	if c.left > 0 {
		c.left--
	}
	if c.right > 0 {
		c.right--
	}
	c.fire, c.start, c.click = false, false, nil
	return in
}
