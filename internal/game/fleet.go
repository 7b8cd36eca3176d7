package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// FleetLayout returns how many enemy columns and rows fit on the screen.
// Enemies are spaced one enemy width apart with a one-width margin on each
// side; rows leave three enemy heights plus the ship's height free at the
// bottom. Sizes that fit nothing give an empty (0, 0) layout.
func FleetLayout(screenW, screenH, enemyW, enemyH, shipH int) (cols, rows int) {
	if enemyW <= 0 || enemyH <= 0 {
		return 0, 0
	}
	cols = (screenW - 2*enemyW) / (2 * enemyW)
	rows = (screenH - 3*enemyH - shipH) / (2 * enemyH)
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	return cols, rows
}

// fleetMember pairs an enemy entity with its rect at query time.
type fleetMember struct {
	entity ecs.Entity
	rect   world.Rect
}

// Fleet manages the grid of enemies.
type Fleet struct {
	store   *ecs.World
	spawner *ecs.Map2[Body, Enemy]
	filter  *ecs.Filter2[Body, Enemy]

	field  world.Playfield
	enemyW int
	enemyH int
	shipH  int
	drop   int
}

// NewFleet creates an empty fleet stored in w.
func NewFleet(w *ecs.World, base *settings.Base) *Fleet {
	return &Fleet{
		store:   w,
		spawner: ecs.NewMap2[Body, Enemy](w),
		filter:  ecs.NewFilter2[Body, Enemy](w),
		field:   base.Playfield(),
		enemyW:  base.EnemyWidth,
		enemyH:  base.EnemyHeight,
		shipH:   base.ShipHeight,
		drop:    base.FleetDropDistance,
	}
}

// Layout returns the fleet's columns and rows for the current settings.
func (f *Fleet) Layout() (cols, rows int) {
	return FleetLayout(f.field.Width, f.field.Height, f.enemyW, f.enemyH, f.shipH)
}

// Degenerate reports whether the settings leave no room for any enemy.
func (f *Fleet) Degenerate() bool {
	cols, rows := f.Layout()
	return cols*rows == 0
}

// Build spawns a full grid of enemies and returns how many were created.
func (f *Fleet) Build() int {
	cols, rows := f.Layout()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			f.spawner.NewEntity(
				&Body{
					X: float64(f.enemyW + 2*f.enemyW*col),
					Y: float64(f.enemyH + 2*f.enemyH*row),
					W: f.enemyW,
					H: f.enemyH,
				},
				&Enemy{Row: row, Col: col},
			)
		}
	}
	return cols * rows
}

// Advance moves the fleet one tick. If any enemy is touching a side of the
// screen the whole fleet first drops and reverses. Reports whether it bounced.
func (f *Fleet) Advance(dyn *settings.Dynamic) bool {
	bounced := f.atEdge()
	if bounced {
		f.reverseAndDrop(dyn)
	}
	dx := float64(dyn.FleetDirection) * dyn.EnemySpeed
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		body.X += dx
	}
	return bounced
}

func (f *Fleet) atEdge() bool {
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		r := body.Rect()
		if r.Right() >= f.field.Width || r.Left() <= 0 {
			query.Close()
			return true
		}
	}
	return false
}

func (f *Fleet) reverseAndDrop(dyn *settings.Dynamic) {
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		body.Y += float64(f.drop)
	}
	dyn.Reverse()
}

// Len returns the number of live enemies.
func (f *Fleet) Len() int {
	n := 0
	query := f.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Rects returns the bounding rects of all live enemies.
func (f *Fleet) Rects() []world.Rect {
	var rects []world.Rect
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		rects = append(rects, body.Rect())
	}
	return rects
}

// Clear removes every enemy and returns how many were removed.
func (f *Fleet) Clear() int {
	members := f.members()
	for _, m := range members {
		f.store.RemoveEntity(m.entity)
	}
	return len(members)
}

// AnyOverlapping reports whether any enemy overlaps r.
func (f *Fleet) AnyOverlapping(r world.Rect) bool {
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		if body.Rect().Overlaps(r) {
			query.Close()
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any enemy's bottom edge is at or below
// the bottom of the screen.
func (f *Fleet) ReachedBottom() bool {
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		if body.Rect().Bottom() >= f.field.Height {
			query.Close()
			return true
		}
	}
	return false
}

// members snapshots the fleet so callers can remove entities afterwards;
// the ECS world is locked while a query is open.
func (f *Fleet) members() []fleetMember {
	var out []fleetMember
	query := f.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		out = append(out, fleetMember{entity: query.Entity(), rect: body.Rect()})
	}
	return out
}

func (f *Fleet) remove(e ecs.Entity) {
	f.store.RemoveEntity(e)
}
