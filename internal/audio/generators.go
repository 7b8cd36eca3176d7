package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SweepGenerator is a sine whose pitch glides linearly from one frequency
// to another over its length while fading out. Used for the laser and the
// falling tone of a lost ship.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	samples  int
}

// NewSweepGenerator creates a sweep from one frequency to another lasting d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// NoiseGenerator is an exponentially decaying noise burst mixed with a low
// rumble.
type NoiseGenerator struct {
	sr    beep.SampleRate
	decay float64
	pos   int
	seed  int64
}

// NewNoiseGenerator creates a noise burst. Larger decay gives a shorter
// crack.
func NewNoiseGenerator(sr beep.SampleRate, decay float64) *NoiseGenerator {
	return &NoiseGenerator{
		sr:    sr,
		decay: decay,
		seed:  time.Now().UnixNano() & 0x7fffffff,
	}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}

// tone is a pure sine of length d at a reduced volume. Frequencies the
// sample rate cannot carry come back as silence.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return &effects.Volume{Streamer: beep.Take(n, sine), Base: 2, Volume: -2}
}

// arpeggio plays the given notes back to back, each lasting step.
func arpeggio(sr beep.SampleRate, step time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		parts = append(parts, tone(sr, f, step))
	}
	return beep.Seq(parts...)
}
