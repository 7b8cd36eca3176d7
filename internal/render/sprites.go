package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

var shipMask = []string{
	"......#......",
	".....###.....",
	".....###.....",
	".###########.",
	"#############",
	"#############",
	"#############",
	"#############",
}

var enemyMask = []string{
	"..#.....#..",
	"...#...#...",
	"..#######..",
	".##.###.##.",
	"###########",
	"#.#######.#",
	"#.#.....#.#",
	"...##.##...",
}

// maskImage scales a '#'/'.' pixel mask to w x h with nearest-neighbour
// sampling. Set pixels take clr, the rest stay transparent.
func maskImage(mask []string, w, h int, clr color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if len(mask) == 0 || w <= 0 || h <= 0 {
		return img
	}
	px := color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: clr.A}
	for y := 0; y < h; y++ {
		row := mask[y*len(mask)/h]
		if len(row) == 0 {
			continue
		}
		for x := 0; x < w; x++ {
			if row[x*len(row)/w] == '#' {
				img.SetNRGBA(x, y, px)
			}
		}
	}
	return img
}

// Sprites holds the images for the ship and an enemy at their configured
// sizes.
type Sprites struct {
	Ship  *ebiten.Image
	Enemy *ebiten.Image
}

// NewSprites builds the sprite images for the given entity sizes.
func NewSprites(shipW, shipH, enemyW, enemyH int) *Sprites {
	return &Sprites{
		Ship:  ebiten.NewImageFromImage(maskImage(shipMask, shipW, shipH, ShipColor)),
		Enemy: ebiten.NewImageFromImage(maskImage(enemyMask, enemyW, enemyH, EnemyColor)),
	}
}

// DrawScene paints the play field: background, fleet, projectiles and
// ship. When the game is not active the play button is drawn on top.
func DrawScene(screen *ebiten.Image, sp *Sprites, sn game.Snapshot, projectile color.RGBA) {
	screen.Fill(Background)

	for _, r := range sn.Enemies {
		drawSprite(screen, sp.Enemy, r)
	}
	for _, r := range sn.Projectiles {
		fillRect(screen, r, projectile)
	}
	drawSprite(screen, sp.Ship, sn.Ship)

	if sn.CooldownRemaining > 0 {
		fillRect(screen, sn.Field.Bounds(), OverlayShade)
	}
	if !sn.Active && !sn.PlayButton.Empty() {
		fillRect(screen, sn.PlayButton, ButtonColor)
		b := sn.PlayButton
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, Palette[ColorBlack], false)
	}
}

func drawSprite(screen, img *ebiten.Image, r world.Rect) {
	if img == nil || r.Empty() {
		return
	}
	var op ebiten.DrawImageOptions
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	if bw > 0 && bh > 0 && (bw != r.W || bh != r.H) {
		op.GeoM.Scale(float64(r.W)/float64(bw), float64(r.H)/float64(bh))
	}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(img, &op)
}

func fillRect(screen *ebiten.Image, r world.Rect, clr color.Color) {
	if r.Empty() {
		return
	}
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}
