package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8
)

// Icon glyph codes below the printable ASCII range.
const (
	GlyphShipIcon  byte = 1
	GlyphEnemyIcon byte = 2
	GlyphBlock     byte = 127
)

// FontAtlas holds the HUD glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [AtlasCols * AtlasRows]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. Printable ASCII is rendered
// with basicfont.Face7x13; the icons are drawn from their pixel masks.
func NewFontAtlas() *FontAtlas {
	img := buildAtlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	for code := range a.glyphs {
		col := code % AtlasCols
		row := code / AtlasCols
		x := col * GlyphWidth
		y := row * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code. Codes outside the
// atlas map to '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if int(code) >= len(a.glyphs) {
		code = '?'
	}
	return a.glyphs[code]
}

// buildAtlasImage rasterises every glyph into a white-on-transparent sheet.
func buildAtlasImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < AtlasCols*AtlasRows; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight

		switch {
		case code >= 32 && code <= 126:
			drawFontGlyph(img, face, cx, cy, rune(code))
		case byte(code) == GlyphShipIcon:
			drawMaskGlyph(img, cx, cy, shipMask)
		case byte(code) == GlyphEnemyIcon:
			drawMaskGlyph(img, cx, cy, enemyMask)
		case byte(code) == GlyphBlock:
			drawMaskGlyph(img, cx, cy, []string{"#"})
		}
	}
	return img
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}

// drawMaskGlyph stretches a pixel mask over a whole cell.
func drawMaskGlyph(img *image.NRGBA, cellX, cellY int, mask []string) {
	icon := maskImage(mask, GlyphWidth, GlyphHeight, color.RGBA{255, 255, 255, 255})
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			img.SetNRGBA(cellX+x, cellY+y, icon.NRGBAAt(x, y))
		}
	}
}
