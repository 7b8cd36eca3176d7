package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/alien_invasion/internal/settings"
	"github.com/spacehole-rogue/alien_invasion/internal/world"
)

// commsSize is how many lines the comms log keeps.
const commsSize = 50

// Input is everything the shell collected for one frame.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Start     bool
	// StartAt is the pointer position of a click that requested the start.
	// Nil means the start came from the keyboard.
	StartAt *world.Point
}

// Sim is the game simulation. It owns all gameplay state.
type Sim struct {
	ECS         *ecs.World
	Ship        *Ship
	Fleet       *Fleet
	Projectiles *Projectiles
	Dynamic     settings.Dynamic
	Stats       Stats
	Log         *MessageLog

	base       settings.Base
	playButton world.Rect
	cooldown   int
	ticks      uint64
	highBeaten bool
	events     []Event
}

// NewSim creates an inactive simulation with a fleet on screen, waiting
// for the player to press Play.
func NewSim(base *settings.Base) *Sim {
	w := ecs.NewWorld(256)
	field := base.Playfield()

	s := &Sim{
		ECS:         w,
		Ship:        NewShip(field, base.ShipWidth, base.ShipHeight),
		Fleet:       NewFleet(w, base),
		Projectiles: NewProjectiles(w, base),
		Dynamic:     settings.NewDynamic(base),
		Log:         NewMessageLog(commsSize),
		base:        *base,
		playButton:  field.Centered(base.PlayButtonWidth, base.PlayButtonHeight),
	}
	s.Stats.Reset(base.ShipLimit)
	s.Fleet.Build()
	s.Log.Add("Press P or click Play to start.", MsgInfo, 0)
	return s
}

// Settings returns the base configuration the simulation was built with.
func (s *Sim) Settings() settings.Base { return s.base }

// PlayButton returns the rect that starts a game when clicked.
func (s *Sim) PlayButton() world.Rect { return s.playButton }

// Cooldown returns the ticks left in the post-hit pause.
func (s *Sim) Cooldown() int { return s.cooldown }

// Ticks returns how many active ticks have run.
func (s *Sim) Ticks() uint64 { return s.ticks }

// Step applies one frame of input, advances the simulation and returns
// the resulting state.
func (s *Sim) Step(in Input) Snapshot {
	if in.Start {
		if in.StartAt != nil {
			s.ClickPlay(*in.StartAt)
		} else {
			s.StartNewGame()
		}
	}
	s.SetMovement(in.MoveLeft, in.MoveRight)
	if in.Fire {
		s.Fire()
	}
	s.Tick()
	return s.Snapshot()
}

// SetMovement sets the ship's held movement intents.
func (s *Sim) SetMovement(left, right bool) {
	s.Ship.MovingLeft = left
	s.Ship.MovingRight = right
}

// Fire launches a projectile if the game is running and the cap allows it.
func (s *Sim) Fire() bool {
	if !s.Stats.Active || s.cooldown > 0 {
		return false
	}
	if !s.Projectiles.Fire(s.Ship) {
		return false
	}
	s.emit(Event{Kind: EventFired})
	return true
}

// ClickPlay starts a new game if p is on the play button.
func (s *Sim) ClickPlay(p world.Point) bool {
	if !s.playButton.Contains(p) {
		return false
	}
	return s.StartNewGame()
}

// StartNewGame resets settings, stats and entities. It does nothing while
// a game is already running.
func (s *Sim) StartNewGame() bool {
	if s.Stats.Active {
		return false
	}
	s.Dynamic.Reset(&s.base)
	s.Stats.Reset(s.base.ShipLimit)
	s.Stats.Active = true
	s.highBeaten = false
	s.cooldown = 0

	s.Fleet.Clear()
	s.Projectiles.Clear()
	s.Fleet.Build()
	s.Ship.Recenter()
	s.Ship.Halt()

	s.Log.Clear()
	s.Log.Add(fmt.Sprintf("Wave 1 incoming. %d ships ready.", s.Stats.ShipsLeft), MsgInfo, s.ticks)
	s.emit(Event{Kind: EventGameStarted, ShipsLeft: s.Stats.ShipsLeft})
	return true
}

// Tick advances the simulation by one step. Nothing happens while the
// game is inactive; during the post-hit cooldown only the countdown runs.
func (s *Sim) Tick() {
	if !s.Stats.Active {
		return
	}
	s.ticks++
	if s.cooldown > 0 {
		s.cooldown--
		return
	}

	s.Ship.Update(s.Dynamic.ShipSpeed)
	s.Projectiles.Tick(s.Dynamic.ProjectileSpeed)
	s.resolveProjectileEnemyCollisions()
	s.checkFleetCleared()

	if s.Fleet.Advance(&s.Dynamic) {
		s.emit(Event{Kind: EventFleetBounced})
	}
	if s.checkShipEnemyCollision() {
		return
	}
	s.checkEnemiesReachedBottom()
}

// DrainEvents returns the events queued since the last call.
func (s *Sim) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}
