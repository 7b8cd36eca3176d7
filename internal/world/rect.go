package world

// Point is a pixel position on the play area.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in screen pixels. Y grows downward.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// RectFromFloat places a rect of size w×h at a float position.
// Coordinates are truncated toward zero, the same way sprite rects
// track their float positions.
func RectFromFloat(x, y float64, w, h int) Rect {
	return Rect{X: int(x), Y: int(y), W: w, H: h}
}

func (r Rect) Left() int    { return r.X }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether r and o share interior area.
// Rects that only touch along an edge do not overlap, and empty rects never do.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether p lies inside r (right and bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Within reports whether r lies entirely inside the box [0,w]×[0,h].
func (r Rect) Within(w, h int) bool {
	return r.X >= 0 && r.Right() <= w && r.Y >= 0 && r.Bottom() <= h
}

// Playfield is the visible play area.
type Playfield struct {
	Width  int
	Height int
}

// Bounds returns the play area as a rect anchored at the origin.
func (p Playfield) Bounds() Rect { return Rect{W: p.Width, H: p.Height} }

// MidBottom returns the rect of size w×h centered horizontally and
// resting on the bottom edge.
func (p Playfield) MidBottom(w, h int) Rect {
	return Rect{X: p.Width/2 - w/2, Y: p.Height - h, W: w, H: h}
}

// Centered returns the rect of size w×h centered on the play area.
func (p Playfield) Centered(w, h int) Rect {
	return Rect{X: p.Width/2 - w/2, Y: p.Height/2 - h/2, W: w, H: h}
}
