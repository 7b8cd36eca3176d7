package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load parses JSON settings. Keys missing from data keep their Default value.
func Load(data []byte) (*Base, error) {
	base := Default()
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return &base, nil
}

// LoadFile reads and parses a settings file from disk.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return Load(data)
}

// Validate rejects values the simulation cannot run with.
// Screen and sprite sizes are not checked here: a layout that fits no
// enemies is still playable, it just has an empty fleet.
func (b *Base) Validate() error {
	var errs []error
	if b.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("ticks_per_second must be positive, got %d", b.TicksPerSecond))
	}
	if b.ProjectileCap < 0 {
		errs = append(errs, fmt.Errorf("projectile_cap must not be negative, got %d", b.ProjectileCap))
	}
	if b.ShipLimit <= 0 {
		errs = append(errs, fmt.Errorf("ship_limit must be positive, got %d", b.ShipLimit))
	}
	if b.ShipLossCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("ship_loss_cooldown_ms must not be negative, got %d", b.ShipLossCooldownMS))
	}
	if b.DifficultyScale <= 0 {
		errs = append(errs, fmt.Errorf("difficulty_scale must be positive, got %g", b.DifficultyScale))
	}
	if b.ScoreScale < 0 {
		errs = append(errs, fmt.Errorf("score_scale must not be negative, got %g", b.ScoreScale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
