package game

import "fmt"

// resolveProjectileEnemyCollisions destroys every enemy that overlaps a
// projectile, along with the projectile. One projectile can take out
// several enemies it overlaps at once, but each enemy dies only once.
// Points are paid once for the whole pass at the current per-enemy value.
func (s *Sim) resolveProjectileEnemyCollisions() (kills []fleetMember, spent []shot) {
	shots := s.Projectiles.shots()
	if len(shots) == 0 {
		return nil, nil
	}
	enemies := s.Fleet.members()
	dead := make([]bool, len(enemies))

	for _, sh := range shots {
		hit := false
		for i, e := range enemies {
			if dead[i] || !sh.rect.Overlaps(e.rect) {
				continue
			}
			dead[i] = true
			hit = true
			kills = append(kills, e)
		}
		if hit {
			spent = append(spent, sh)
		}
	}

	for _, sh := range spent {
		s.Projectiles.remove(sh.entity)
	}
	for _, e := range kills {
		s.Fleet.remove(e.entity)
	}

	if len(kills) > 0 {
		points := s.Dynamic.EnemyPoints * len(kills)
		raised := s.Stats.AddScore(points)
		s.emit(Event{Kind: EventEnemiesDestroyed, Count: len(kills), Points: points, Score: s.Stats.Score})
		if raised && !s.highBeaten {
			s.highBeaten = true
			s.Log.Add("New high score!", MsgReward, s.ticks)
			s.emit(Event{Kind: EventNewHighScore, Score: s.Stats.Score})
		}
	}
	return kills, spent
}

// checkFleetCleared starts the next level once every enemy is gone.
// It does nothing while enemies remain, or when the screen is too small
// to ever hold a fleet.
func (s *Sim) checkFleetCleared() bool {
	if s.Fleet.Len() > 0 || s.Fleet.Degenerate() {
		return false
	}
	s.Projectiles.Clear()
	s.Fleet.Build()
	s.Dynamic.ScaleUp(&s.base)
	s.Stats.Level++

	s.Log.Add(fmt.Sprintf("Fleet destroyed. Wave %d incoming, faster.", s.Stats.Level), MsgReward, s.ticks)
	s.emit(Event{Kind: EventLevelUp, Level: s.Stats.Level})
	return true
}

// checkShipEnemyCollision treats any enemy touching the ship as a hit.
func (s *Sim) checkShipEnemyCollision() bool {
	if !s.Fleet.AnyOverlapping(s.Ship.Rect()) {
		return false
	}
	s.handleShipLoss("Ship rammed by the fleet.")
	return true
}

// checkEnemiesReachedBottom treats an enemy reaching the bottom edge the
// same as a hit on the ship.
func (s *Sim) checkEnemiesReachedBottom() bool {
	if !s.Fleet.ReachedBottom() {
		return false
	}
	s.handleShipLoss("The fleet broke through.")
	return true
}

// handleShipLoss spends a ship. Losing the last one ends the game and
// leaves the field as it was; otherwise the field is reset and gameplay
// pauses for the cooldown.
func (s *Sim) handleShipLoss(reason string) {
	if s.Stats.ShipsLeft > 0 {
		s.Stats.ShipsLeft--
	}
	s.emit(Event{Kind: EventShipLost, ShipsLeft: s.Stats.ShipsLeft})

	if s.Stats.ShipsLeft == 0 {
		s.Stats.Active = false
		s.cooldown = 0
		s.Ship.Halt()
		s.Log.Add(reason, MsgCritical, s.ticks)
		s.Log.Add(fmt.Sprintf("Game over. Final score %d.", s.Stats.Score), MsgCritical, s.ticks)
		s.emit(Event{Kind: EventGameOver, Score: s.Stats.Score})
		return
	}

	s.Fleet.Clear()
	s.Projectiles.Clear()
	s.Fleet.Build()
	s.Ship.Recenter()
	s.cooldown = s.base.CooldownTicks()

	s.Log.Add(fmt.Sprintf("%s %d ships left.", reason, s.Stats.ShipsLeft), MsgWarning, s.ticks)
}
