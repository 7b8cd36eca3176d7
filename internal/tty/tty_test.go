package tty

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func glyphAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestDrawIdleGame(t *testing.T) {
	screen := newScreen(t)
	base := settings.Default()
	sim := game.NewSim(&base)
	r := NewRenderer(screen)

	r.Draw(sim.Snapshot(), sim.Log.Recent(1))

	hud := rowText(screen, 0)
	assert.True(t, strings.HasPrefix(hud, "AAA"), "one ship per life: %q", hud)
	assert.Contains(t, hud, "HIGH 0")
	assert.True(t, strings.HasSuffix(hud, "WAVE 1  0"), hud)

	assert.Equal(t, GlyphEnemy, glyphAt(screen, 4, 2), "first enemy of the fleet")
	assert.Equal(t, GlyphShip, glyphAt(screen, 38, 21))
	assert.Contains(t, rowText(screen, 11), "[ Play ]")
}

func TestDrawBanners(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	field := world.Playfield{Width: 1200, Height: 800}

	find := func(s string) bool {
		for y := 0; y < 24; y++ {
			if strings.Contains(rowText(screen, y), s) {
				return true
			}
		}
		return false
	}

	r.Draw(game.Snapshot{Field: field, Level: 3, PlayButton: field.Centered(200, 50)}, nil)
	assert.True(t, find("GAME OVER"))
	assert.True(t, find("[ Play ]"))

	r.Draw(game.Snapshot{Field: field, Level: 3, ShipsLeft: 2, Active: true, CooldownRemaining: 5}, nil)
	assert.True(t, find("SHIP LOST"))
	assert.False(t, find("GAME OVER"))
	assert.False(t, find("[ Play ]"), "no button while a game runs")
}

func TestDrawCommsLine(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	comms := []game.Message{
		{Text: "older", Priority: game.MsgInfo},
		{Text: "Ship lost! 2 left", Priority: game.MsgWarning},
	}
	r.Draw(game.Snapshot{Field: world.Playfield{Width: 800, Height: 600}, Active: true, ShipsLeft: 2}, comms)
	assert.Equal(t, "Ship lost! 2 left", rowText(screen, 23))
}

func TestDrawDegenerateField(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	assert.NotPanics(t, func() {
		r.Draw(game.Snapshot{Ship: world.Rect{W: 10, H: 10}}, nil)
	})
}

func TestClickStartsGame(t *testing.T) {
	screen := newScreen(t)
	base := settings.Default()
	sim := game.NewSim(&base)
	r := NewRenderer(screen)
	field := base.Playfield()

	p, ok := r.ToField(field, 40, 11)
	require.True(t, ok)
	assert.True(t, sim.PlayButton().Contains(p), "cell maps into the button: %+v", p)

	_, ok = r.ToField(field, 40, 0)
	assert.False(t, ok, "the HUD row is not part of the field")

	var c Controls
	c.Click(p)
	sn := sim.Step(c.Next())
	assert.True(t, sn.Active)
}

func TestControlsHoldAndRelease(t *testing.T) {
	var c Controls
	require.True(t, c.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))

	for i := 0; i < HoldTicks; i++ {
		in := c.Next()
		assert.True(t, in.MoveLeft, "tick %d", i)
		assert.False(t, in.MoveRight)
	}
	assert.False(t, c.Next().MoveLeft, "a press without repeats wears off")

	c.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	in := c.Next()
	assert.False(t, in.MoveLeft, "the opposite key takes over")
	assert.True(t, in.MoveRight)

	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	assert.Equal(t, game.Input{}, c.Next())
}

func TestControlsOneShots(t *testing.T) {
	var c Controls
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))

	in := c.Next()
	assert.True(t, in.Fire)
	assert.True(t, in.Start)
	assert.Nil(t, in.StartAt)

	in = c.Next()
	assert.False(t, in.Fire)
	assert.False(t, in.Start)
}

func TestControlsQuit(t *testing.T) {
	var c Controls
	assert.False(t, c.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, c.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}
