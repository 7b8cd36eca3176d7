package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// shot pairs a projectile entity with its rect at query time.
type shot struct {
	entity ecs.Entity
	rect   world.Rect
}

// Projectiles manages the ship's live shots.
type Projectiles struct {
	store   *ecs.World
	spawner *ecs.Map2[Body, Projectile]
	filter  *ecs.Filter2[Body, Projectile]

	w, h  int
	limit int
}

// NewProjectiles creates an empty projectile set stored in w.
func NewProjectiles(w *ecs.World, base *settings.Base) *Projectiles {
	return &Projectiles{
		store:   w,
		spawner: ecs.NewMap2[Body, Projectile](w),
		filter:  ecs.NewFilter2[Body, Projectile](w),
		w:       base.ProjectileWidth,
		h:       base.ProjectileHeight,
		limit:   base.ProjectileCap,
	}
}

// Fire spawns one projectile at the ship's mid-top unless the cap is
// already reached. Reports whether a projectile was created.
func (p *Projectiles) Fire(ship *Ship) bool {
	if p.Len() >= p.limit {
		return false
	}
	r := ship.muzzle(p.w, p.h)
	p.spawner.NewEntity(
		&Body{X: float64(r.X), Y: float64(r.Y), W: r.W, H: r.H},
		&Projectile{},
	)
	return true
}

// Tick moves every projectile up by speed and removes those that have
// left the top of the screen. Returns how many were removed.
func (p *Projectiles) Tick(speed float64) int {
	var gone []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		body.Y -= speed
		if body.Rect().Bottom() <= 0 {
			gone = append(gone, query.Entity())
		}
	}
	for _, e := range gone {
		p.store.RemoveEntity(e)
	}
	return len(gone)
}

// Len returns the number of live projectiles.
func (p *Projectiles) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Rects returns the bounding rects of all live projectiles.
func (p *Projectiles) Rects() []world.Rect {
	var rects []world.Rect
	query := p.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		rects = append(rects, body.Rect())
	}
	return rects
}

// Clear removes every projectile and returns how many were removed.
func (p *Projectiles) Clear() int {
	shots := p.shots()
	for _, s := range shots {
		p.store.RemoveEntity(s.entity)
	}
	return len(shots)
}

func (p *Projectiles) shots() []shot {
	var out []shot
	query := p.filter.Query()
	for query.Next() {
		body, _ := query.Get()
		out = append(out, shot{entity: query.Entity(), rect: body.Rect()})
	}
	return out
}

func (p *Projectiles) remove(e ecs.Entity) {
	p.store.RemoveEntity(e)
}
