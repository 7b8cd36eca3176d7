package game

import (
	"fmt"

	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Field       world.Playfield
	Ship        world.Rect
	Projectiles []world.Rect
	Enemies     []world.Rect
	PlayButton  world.Rect

	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool

	CooldownRemaining int
	Tick              uint64
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Field:             s.base.Playfield(),
		Ship:              s.Ship.Rect(),
		Projectiles:       s.Projectiles.Rects(),
		Enemies:           s.Fleet.Rects(),
		PlayButton:        s.playButton,
		Score:             s.Stats.Score,
		HighScore:         s.Stats.HighScore,
		Level:             s.Stats.Level,
		ShipsLeft:         s.Stats.ShipsLeft,
		Active:            s.Stats.Active,
		CooldownRemaining: s.cooldown,
		Tick:              s.ticks,
	}
}

// Paused reports whether gameplay is frozen by the post-hit cooldown.
func (sn Snapshot) Paused() bool { return sn.Active && sn.CooldownRemaining > 0 }

// GameOver reports whether the last run ended and nothing is in play.
func (sn Snapshot) GameOver() bool { return !sn.Active && sn.ShipsLeft == 0 }

// Summary is a one-line description of the run, for sharing.
func Summary(sn Snapshot) string {
	state := "in progress"
	switch {
	case sn.GameOver():
		state = "game over"
	case !sn.Active:
		state = "not started"
	}
	return fmt.Sprintf("Alien Invasion: score %d (high %d), reached wave %d, %d ships left, %s",
		sn.Score, sn.HighScore, sn.Level, sn.ShipsLeft, state)
}
