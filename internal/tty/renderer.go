package tty

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// Glyphs used for the scene.
const (
	GlyphEnemy      = 'W'
	GlyphShip       = 'A'
	GlyphProjectile = '|'
)

var (
	styleBase       = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	styleHUD        = styleBase.Foreground(tcell.ColorWhite).Bold(true)
	styleEnemy      = styleBase.Foreground(tcell.ColorGreen)
	styleShip       = styleBase.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleProjectile = styleBase.Foreground(tcell.ColorYellow)
	styleButton     = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorWhite).Bold(true)
	styleBanner     = styleBase.Foreground(tcell.ColorRed).Bold(true)
)

var messageStyles = map[game.MsgPriority]tcell.Style{
	game.MsgInfo:     styleBase.Foreground(tcell.ColorTeal),
	game.MsgWarning:  styleBase.Foreground(tcell.ColorOlive),
	game.MsgCritical: styleBase.Foreground(tcell.ColorRed),
	game.MsgReward:   styleBase.Foreground(tcell.ColorGreen),
}

// Renderer draws snapshots onto a terminal. The play field is scaled to
// every row but the first (HUD) and the last (comms).
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// viewport is the cell area the play field maps onto.
type viewport struct {
	field      world.Playfield
	x, y, w, h int
}

func (r *Renderer) viewport(field world.Playfield) viewport {
	w, h := r.screen.Size()
	return viewport{field: field, x: 0, y: 1, w: w, h: max(h-2, 0)}
}

// cells converts a pixel rect to an inclusive cell range. Every non-empty
// rect covers at least one cell.
func (v viewport) cells(rc world.Rect) (x0, y0, x1, y1 int) {
	if v.field.Width <= 0 || v.field.Height <= 0 {
		return 0, 0, -1, -1
	}
	x0 = v.x + rc.Left()*v.w/v.field.Width
	x1 = v.x + max(rc.Right()-1, rc.Left())*v.w/v.field.Width
	y0 = v.y + rc.Top()*v.h/v.field.Height
	y1 = v.y + max(rc.Bottom()-1, rc.Top())*v.h/v.field.Height
	return x0, y0, x1, y1
}

// ToField maps a terminal cell back to the play-field pixel at the cell's
// center. ok is false for cells outside the play field.
func (r *Renderer) ToField(field world.Playfield, cx, cy int) (p world.Point, ok bool) {
	v := r.viewport(field)
	if v.w == 0 || v.h == 0 || cx < v.x || cx >= v.x+v.w || cy < v.y || cy >= v.y+v.h {
		return world.Point{}, false
	}
	p.X = ((cx-v.x)*field.Width + field.Width/2) / v.w
	p.Y = ((cy-v.y)*field.Height + field.Height/2) / v.h
	return p, true
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(sn game.Snapshot, comms []game.Message) {
	r.screen.Fill(' ', styleBase)
	v := r.viewport(sn.Field)

	for _, e := range sn.Enemies {
		r.fill(v, e, GlyphEnemy, styleEnemy)
	}
	for _, p := range sn.Projectiles {
		r.fill(v, p, GlyphProjectile, styleProjectile)
	}
	r.fill(v, sn.Ship, GlyphShip, styleShip)

	r.drawHUD(sn)
	if len(comms) > 0 {
		last := comms[len(comms)-1]
		_, h := r.screen.Size()
		r.text(0, h-1, last.Text, messageStyles[last.Priority])
	}

	switch {
	case !sn.Active:
		r.drawPlayButton(v, sn)
		if sn.GameOver() {
			r.centered(v.y+v.h/2-2, "GAME OVER", styleBanner)
		}
	case sn.Paused():
		r.centered(v.y+v.h/2-2, "SHIP LOST", styleBanner)
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(sn game.Snapshot) {
	w, _ := r.screen.Size()
	r.text(0, 0, strings.Repeat(string(GlyphShip), max(sn.ShipsLeft, 0)), styleShip)

	high := "HIGH " + game.FormatScore(sn.HighScore)
	r.text((w-len(high))/2, 0, high, styleHUD)

	right := fmt.Sprintf("WAVE %d  %s", sn.Level, game.FormatScore(sn.Score))
	r.text(w-len(right), 0, right, styleHUD)
}

func (r *Renderer) drawPlayButton(v viewport, sn game.Snapshot) {
	if sn.PlayButton.Empty() {
		return
	}
	x0, y0, x1, y1 := v.cells(sn.PlayButton)
	label := "[ Play ]"
	if x1-x0+1 < len(label) {
		mid := (x0 + x1) / 2
		x0, x1 = mid-len(label)/2, mid-len(label)/2+len(label)-1
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleButton)
		}
	}
	r.text(x0+(x1-x0+1-len(label))/2, (y0+y1)/2, label, styleButton)
}

func (r *Renderer) fill(v viewport, rc world.Rect, ch rune, style tcell.Style) {
	if rc.Empty() {
		return
	}
	x0, y0, x1, y1 := v.cells(rc)
	for y := max(y0, v.y); y <= min(y1, v.y+v.h-1); y++ {
		for x := max(x0, v.x); x <= min(x1, v.x+v.w-1); x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.text((w-len(s))/2, y, s, style)
}
