package game

import (
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// testSettings is an 800×600 field with 20×20 enemies and a 40×40 ship,
// which lays out a 19×12 fleet.
func testSettings() settings.Base {
	b := settings.Default()
	b.ScreenWidth, b.ScreenHeight = 800, 600
	b.EnemyWidth, b.EnemyHeight = 20, 20
	b.ShipWidth, b.ShipHeight = 40, 40
	return b
}

func newTestSim(modify ...func(*settings.Base)) *Sim {
	b := testSettings()
	for _, m := range modify {
		m(&b)
	}
	return NewSim(&b)
}

// startedSim returns a running game with its start events drained.
func startedSim(modify ...func(*settings.Base)) *Sim {
	s := newTestSim(modify...)
	s.StartNewGame()
	s.DrainEvents()
	return s
}

func spawnEnemy(s *Sim, r world.Rect) {
	s.Fleet.spawner.NewEntity(
		&Body{X: float64(r.X), Y: float64(r.Y), W: r.W, H: r.H},
		&Enemy{},
	)
}

func spawnProjectile(s *Sim, r world.Rect) {
	s.Projectiles.spawner.NewEntity(
		&Body{X: float64(r.X), Y: float64(r.Y), W: r.W, H: r.H},
		&Projectile{},
	)
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
