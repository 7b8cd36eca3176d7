package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue names a sound effect.
type Cue uint8

const (
	CueNone Cue = iota
	CueStart
	CueLaser
	CueExplosion
	CueFleetStep
	CueLevelUp
	CueShipLost
	CueGameOver
)

// CueFor maps a game event to the effect that accompanies it.
func CueFor(e game.Event) Cue {
	switch e.Kind {
	case game.EventGameStarted:
		return CueStart
	case game.EventFired:
		return CueLaser
	case game.EventEnemiesDestroyed:
		return CueExplosion
	case game.EventFleetBounced:
		return CueFleetStep
	case game.EventLevelUp:
		return CueLevelUp
	case game.EventShipLost:
		return CueShipLost
	case game.EventGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

// Streamer builds a fresh, finite streamer for a cue. CueNone yields nil.
func Streamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CueStart:
		return arpeggio(sr, 70*time.Millisecond, 440, 660)
	case CueLaser:
		return NewSweepGenerator(sr, 1400, 300, 90*time.Millisecond)
	case CueExplosion:
		return beep.Take(sr.N(250*time.Millisecond), NewNoiseGenerator(sr, 14))
	case CueFleetStep:
		return NewSweepGenerator(sr, 110, 70, 60*time.Millisecond)
	case CueLevelUp:
		return arpeggio(sr, 80*time.Millisecond, 523.25, 659.25, 783.99, 1046.5)
	case CueShipLost:
		return beep.Seq(
			NewSweepGenerator(sr, 600, 80, 400*time.Millisecond),
			beep.Take(sr.N(300*time.Millisecond), NewNoiseGenerator(sr, 8)),
		)
	case CueGameOver:
		return arpeggio(sr, 160*time.Millisecond, 392, 329.63, 261.63, 196)
	default:
		return nil
	}
}

// SoundManager plays the game's sound effects through beep's speaker.
// All methods are no-ops until Initialize succeeds, so a machine without
// an audio device runs silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Streamer(sampleRate, c)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the cue for each event drained from the sim. Repeated
// cues within one frame are played once.
func (sm *SoundManager) HandleEvents(events []game.Event) {
	var played [CueGameOver + 1]bool
	for _, e := range events {
		c := CueFor(e)
		if c == CueNone || played[c] {
			continue
		}
		played[c] = true
		sm.Play(c)
	}
}
