package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacehole-rogue/alien_invasion/internal/game"
)

// drain streams s to the end and returns every sample it produced.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never ended")
	return nil
}

func assertInRange(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestSweepGenerator(t *testing.T) {
	sr := beep.SampleRate(44100)
	d := 50 * time.Millisecond
	g := NewSweepGenerator(sr, 1000, 200, d)

	samples := drain(t, g)
	assert.Len(t, samples, sr.N(d))
	assertInRange(t, samples)
	assert.NoError(t, g.Err())

	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	third := len(samples) / 3
	assert.Greater(t, peak(samples[:third]), peak(samples[2*third:]), "the sweep fades out")

	n, ok := g.Stream(make([][2]float64, 8))
	assert.Zero(t, n)
	assert.False(t, ok, "an exhausted sweep stays exhausted")
}

func TestNoiseGeneratorDecays(t *testing.T) {
	sr := beep.SampleRate(44100)
	g := NewNoiseGenerator(sr, 20)

	buf := make([][2]float64, sr.N(time.Second))
	n, ok := g.Stream(buf)
	require.True(t, ok)
	require.Equal(t, len(buf), n)
	assertInRange(t, buf)

	tail := 0.0
	for _, s := range buf[len(buf)-100:] {
		tail = math.Max(tail, math.Abs(s[0]))
	}
	assert.Less(t, tail, 0.01)
}

func TestCueFor(t *testing.T) {
	cases := map[game.EventKind]Cue{
		game.EventGameStarted:      CueStart,
		game.EventFired:            CueLaser,
		game.EventEnemiesDestroyed: CueExplosion,
		game.EventFleetBounced:     CueFleetStep,
		game.EventLevelUp:          CueLevelUp,
		game.EventShipLost:         CueShipLost,
		game.EventGameOver:         CueGameOver,
		game.EventNewHighScore:     CueNone,
	}
	for kind, want := range cases {
		assert.Equal(t, want, CueFor(game.Event{Kind: kind}), kind.String())
	}
}

func TestEveryCueIsFinite(t *testing.T) {
	sr := beep.SampleRate(22050)
	assert.Nil(t, Streamer(sr, CueNone))

	for c := CueStart; c <= CueGameOver; c++ {
		s := Streamer(sr, c)
		require.NotNil(t, s, "cue %d", c)
		samples := drain(t, s)
		assert.NotEmpty(t, samples, "cue %d", c)
		assert.Less(t, len(samples), sr.N(2*time.Second), "cue %d", c)
		assertInRange(t, samples)
	}
}

func TestArpeggioLength(t *testing.T) {
	sr := beep.SampleRate(8000)
	step := 100 * time.Millisecond
	samples := drain(t, arpeggio(sr, step, 440, 880, 5000))
	assert.Len(t, samples, 3*sr.N(step), "unplayable notes become silence of the same length")
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.Play(CueLaser)
		sm.HandleEvents([]game.Event{{Kind: game.EventFired}, {Kind: game.EventGameOver}})
		sm.Cleanup()
	})
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	assert.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.HandleEvents([]game.Event{{Kind: game.EventFired}, {Kind: game.EventFired}})
	sm.Cleanup()
}
