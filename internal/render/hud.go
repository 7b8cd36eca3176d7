package render

import (
	"strconv"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
)

// CommsRows is how many comms lines the shells pass to ComposeHUD.
const CommsRows = 3

// HUD layout, in cells.
const (
	hudMargin   = 1
	PlayLabel   = "Play"
	gameOverMsg = "GAME OVER"
	pausedMsg   = "SHIP LOST"
)

// ComposeHUD writes the overlay for one frame: ships left top-left, high
// score top-center, score and level top-right, recent comms along the
// bottom edge and a state banner when the game is not running.
func ComposeHUD(buf *CellBuffer, sn game.Snapshot, comms []game.Message) {
	buf.Clear()
	if buf.Cols == 0 || buf.Rows == 0 {
		return
	}

	for i := 0; i < sn.ShipsLeft; i++ {
		buf.Set(hudMargin+i*2, hudMargin, GlyphShipIcon, ColorBlue, ColorNone)
	}

	buf.WriteCentered(hudMargin, "HIGH "+game.FormatScore(sn.HighScore), ColorDarkGray, ColorNone)

	right := buf.Cols - 1 - hudMargin
	buf.WriteRight(right, hudMargin, game.FormatScore(sn.Score), ColorBlack, ColorNone)
	buf.WriteRight(right, hudMargin+1, "WAVE "+strconv.Itoa(sn.Level), ColorBlack, ColorNone)

	first := buf.Rows - hudMargin - len(comms)
	for i, m := range comms {
		buf.WriteString(hudMargin, first+i, m.Text, messageColor(m.Priority), ColorNone)
	}

	switch {
	case sn.GameOver():
		buf.WriteCentered(buf.Rows/2-3, gameOverMsg, ColorRed, ColorNone)
	case sn.Paused():
		buf.WriteCentered(buf.Rows/2-3, pausedMsg, ColorRed, ColorNone)
	}
}

func messageColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return ColorYellow
	case game.MsgCritical:
		return ColorRed
	case game.MsgReward:
		return ColorGreen
	default:
		return ColorCyan
	}
}

// PlayLabelOrigin returns where the play button label starts so that it is
// centered on the button, in pixels.
func PlayLabelOrigin(sn game.Snapshot, cellW, cellH int) (float64, float64) {
	b := sn.PlayButton
	x := b.X + (b.W-len(PlayLabel)*cellW)/2
	y := b.Y + (b.H-cellH)/2
	return float64(x), float64(y)
}
