package game

// EventKind identifies what happened during a step.
type EventKind uint8

const (
	EventGameStarted EventKind = iota
	EventFired
	EventEnemiesDestroyed
	EventFleetBounced
	EventLevelUp
	EventShipLost
	EventGameOver
	EventNewHighScore
)

func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game-started"
	case EventFired:
		return "fired"
	case EventEnemiesDestroyed:
		return "enemies-destroyed"
	case EventFleetBounced:
		return "fleet-bounced"
	case EventLevelUp:
		return "level-up"
	case EventShipLost:
		return "ship-lost"
	case EventGameOver:
		return "game-over"
	case EventNewHighScore:
		return "new-high-score"
	default:
		return "unknown"
	}
}

// Event is a notification for the shells (sound, HUD flashes).
// Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Count     int // enemies destroyed
	Points    int // score gained
	Level     int
	ShipsLeft int
	Score     int
}
