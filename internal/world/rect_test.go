package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", Rect{X: 0, Y: 0, W: 10, H: 10}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
		{"empty", Rect{X: 2, Y: 2, W: 0, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 5}
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 14, Y: 24}))
	assert.False(t, r.Contains(Point{X: 15, Y: 22}))
	assert.False(t, r.Contains(Point{X: 9, Y: 22}))
}

func TestRectFromFloatTruncates(t *testing.T) {
	r := RectFromFloat(12.9, 7.2, 3, 4)
	assert.Equal(t, Rect{X: 12, Y: 7, W: 3, H: 4}, r)
}

func TestPlayfieldPlacement(t *testing.T) {
	p := Playfield{Width: 800, Height: 600}

	ship := p.MidBottom(60, 48)
	assert.Equal(t, 400, ship.CenterX())
	assert.Equal(t, 600, ship.Bottom())

	btn := p.Centered(200, 50)
	assert.Equal(t, Rect{X: 300, Y: 275, W: 200, H: 50}, btn)
	assert.True(t, btn.Within(p.Width, p.Height))
}
