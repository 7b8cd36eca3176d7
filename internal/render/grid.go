package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell represents a single character cell of the HUD overlay.
type Cell struct {
	Glyph byte  // atlas code
	FG    uint8 // foreground palette index
	BG    uint8 // background palette index, ColorNone for transparent
}

var blankCell = Cell{Glyph: ' ', FG: ColorBlack, BG: ColorNone}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with transparent cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return blankCell
}

// Clear resets all cells to transparent blanks.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blankCell
	}
}

// WriteString writes a string starting at (x, y). Each rune occupies one cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 126 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteRight writes s so that its last cell sits at column right.
func (b *CellBuffer) WriteRight(right, y int, s string, fg, bg uint8) {
	b.WriteString(right-len(s)+1, y, s, fg, bg)
}

// WriteCentered writes s centered on the buffer's middle column.
func (b *CellBuffer) WriteCentered(y int, s string, fg, bg uint8) {
	b.WriteString((b.Cols-len(s))/2, y, s, fg, bg)
}

// Text returns the glyphs of row y as a string with trailing blanks trimmed.
func (b *CellBuffer) Text(y int) string {
	row := make([]byte, b.Cols)
	end := 0
	for x := 0; x < b.Cols; x++ {
		c := b.Get(x, y).Glyph
		if c == 0 {
			c = ' '
		}
		row[x] = c
		if c != ' ' {
			end = x + 1
		}
	}
	return string(row[:end])
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for drawing backgrounds
}

// NewGridRenderer creates a renderer with the given atlas and cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire CellBuffer over whatever is already on screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorNone {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}

			if cell.Glyph != ' ' && cell.Glyph != 0 {
				glyph := r.Atlas.Glyph(cell.Glyph)
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(glyph, &op)
			}
		}
	}
}

// DrawText renders s at pixel coordinates without snapping to the grid.
// Used for labels that sit on scene geometry, like the play button.
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, fg uint8, px, py float64) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(px+float64(i*r.CellW), py)
		op.ColorScale.ScaleWithColor(Palette[fg])
		screen.DrawImage(r.Atlas.Glyph(s[i]), &op)
	}
}
