package render

import "image/color"

// Palette indices used by HUD cells.
const (
	ColorBlack     = 0
	ColorDarkGray  = 1
	ColorLightGray = 2
	ColorWhite     = 3
	ColorRed       = 4
	ColorGreen     = 5
	ColorBlue      = 6
	ColorYellow    = 7
	ColorCyan      = 8

	// ColorNone marks a cell background that is not painted, so the
	// scene underneath shows through.
	ColorNone = 255
)

// Palette maps HUD color indices to RGBA. Shades are picked to read on
// the light play-field background.
var Palette = [...]color.RGBA{
	ColorBlack:     {30, 30, 30, 255},
	ColorDarkGray:  {85, 85, 85, 255},
	ColorLightGray: {170, 170, 170, 255},
	ColorWhite:     {255, 255, 255, 255},
	ColorRed:       {190, 30, 30, 255},
	ColorGreen:     {20, 130, 40, 255},
	ColorBlue:      {30, 60, 170, 255},
	ColorYellow:    {170, 120, 0, 255},
	ColorCyan:      {0, 120, 140, 255},
}

// Scene colors.
var (
	Background   = color.RGBA{230, 230, 230, 255}
	ShipColor    = color.RGBA{40, 70, 150, 255}
	EnemyColor   = color.RGBA{40, 140, 60, 255}
	ButtonColor  = color.RGBA{0, 160, 0, 255}
	OverlayShade = color.RGBA{230, 230, 230, 160}
)
