package settings

import (
	"image/color"
	"math"
	"time"

	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// Base is the configuration fixed for the lifetime of a process.
type Base struct {
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	ShipWidth  int     `json:"ship_width"`
	ShipHeight int     `json:"ship_height"`
	ShipSpeed  float64 `json:"ship_speed"`
	ShipLimit  int     `json:"ship_limit"`

	ProjectileWidth  int      `json:"projectile_width"`
	ProjectileHeight int      `json:"projectile_height"`
	ProjectileSpeed  float64  `json:"projectile_speed"`
	ProjectileCap    int      `json:"projectile_cap"`
	ProjectileColor  [3]uint8 `json:"projectile_color"`

	EnemyWidth  int     `json:"enemy_width"`
	EnemyHeight int     `json:"enemy_height"`
	EnemySpeed  float64 `json:"enemy_speed"`
	EnemyPoints int     `json:"enemy_points"`

	FleetDropDistance int `json:"fleet_drop_distance"`

	// DifficultyScale multiplies every dynamic speed on level-up.
	DifficultyScale float64 `json:"difficulty_scale"`
	// ScoreScale multiplies the per-enemy points on level-up.
	// Zero means "same as DifficultyScale".
	ScoreScale float64 `json:"score_scale"`

	ShipLossCooldownMS int `json:"ship_loss_cooldown_ms"`
	TicksPerSecond     int `json:"ticks_per_second"`

	PlayButtonWidth  int `json:"play_button_width"`
	PlayButtonHeight int `json:"play_button_height"`
}

// Default returns the stock configuration.
func Default() Base {
	return Base{
		ScreenWidth:  1200,
		ScreenHeight: 800,

		ShipWidth:  60,
		ShipHeight: 48,
		ShipSpeed:  1.5,
		ShipLimit:  3,

		ProjectileWidth:  3,
		ProjectileHeight: 15,
		ProjectileSpeed:  3.0,
		ProjectileCap:    3,
		ProjectileColor:  [3]uint8{60, 60, 60},

		EnemyWidth:  60,
		EnemyHeight: 58,
		EnemySpeed:  1.0,
		EnemyPoints: 50,

		FleetDropDistance: 10,

		DifficultyScale: 1.1,
		ScoreScale:      1.5,

		ShipLossCooldownMS: 500,
		TicksPerSecond:     60,

		PlayButtonWidth:  200,
		PlayButtonHeight: 50,
	}
}

// Playfield returns the screen bounds.
func (b *Base) Playfield() world.Playfield {
	return world.Playfield{Width: b.ScreenWidth, Height: b.ScreenHeight}
}

// ShipLossCooldown returns the pause after a ship is lost.
func (b *Base) ShipLossCooldown() time.Duration {
	return time.Duration(b.ShipLossCooldownMS) * time.Millisecond
}

// CooldownTicks converts the ship-loss pause into whole ticks, rounding up
// so any non-zero pause lasts at least one tick.
func (b *Base) CooldownTicks() int {
	if b.ShipLossCooldownMS <= 0 || b.TicksPerSecond <= 0 {
		return 0
	}
	return int(math.Ceil(float64(b.ShipLossCooldownMS) * float64(b.TicksPerSecond) / 1000))
}

// PointScale is the multiplier applied to enemy points on level-up.
func (b *Base) PointScale() float64 {
	if b.ScoreScale == 0 {
		return b.DifficultyScale
	}
	return b.ScoreScale
}

// ProjectileRGBA returns the projectile colour.
func (b *Base) ProjectileRGBA() color.RGBA {
	c := b.ProjectileColor
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Dynamic is the level-scaled part of the configuration.
// It is reset at the start of every game.
type Dynamic struct {
	ShipSpeed       float64
	ProjectileSpeed float64
	EnemySpeed      float64
	EnemyPoints     int
	// FleetDirection is +1 (moving right) or -1 (moving left).
	FleetDirection int
}

// NewDynamic returns dynamic settings initialised from base.
func NewDynamic(base *Base) Dynamic {
	var d Dynamic
	d.Reset(base)
	return d
}

// Reset restores the base values.
func (d *Dynamic) Reset(base *Base) {
	d.ShipSpeed = base.ShipSpeed
	d.ProjectileSpeed = base.ProjectileSpeed
	d.EnemySpeed = base.EnemySpeed
	d.EnemyPoints = base.EnemyPoints
	d.FleetDirection = 1
}

// ScaleUp applies one level of difficulty. Points are truncated to whole
// numbers after scaling. The fleet direction is left alone.
func (d *Dynamic) ScaleUp(base *Base) {
	d.ShipSpeed *= base.DifficultyScale
	d.ProjectileSpeed *= base.DifficultyScale
	d.EnemySpeed *= base.DifficultyScale
	d.EnemyPoints = int(float64(d.EnemyPoints) * base.PointScale())
}

// Reverse flips the fleet direction.
func (d *Dynamic) Reverse() {
	d.FleetDirection = -d.FleetDirection
}
