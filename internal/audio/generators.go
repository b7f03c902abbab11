package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// musicNotes is the looping bass line, in Hz, one entry per step.
var musicNotes = []float64{
	110.00, 130.81, 164.81, 130.81,
	98.00, 123.47, 146.83, 123.47,
	87.31, 110.00, 130.81, 110.00,
	98.00, 123.47, 146.83, 164.81,
}

// MusicGenerator streams an endless plucked arpeggio over musicNotes.
type MusicGenerator struct {
	sr        beep.SampleRate
	stepLen   int
	pos       int
	phase     float64
	amplitude float64
}

// NewMusicGenerator creates the background music streamer at the given tempo.
func NewMusicGenerator(sr beep.SampleRate, step time.Duration) *MusicGenerator {
	n := sr.N(step)
	if n < 1 {
		n = 1
	}
	return &MusicGenerator{
		sr:        sr,
		stepLen:   n,
		amplitude: 0.25,
	}
}

// Stream fills samples with the arpeggio. It never ends.
func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (g.pos / g.stepLen) % len(musicNotes)
		inStep := float64(g.pos%g.stepLen) / float64(g.stepLen)
		freq := musicNotes[step]

		// Pluck envelope: sharp attack, exponential decay within each step
		env := math.Exp(-4 * inStep)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Soft square: sine plus a third harmonic
		s := math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(6*math.Pi*g.phase)
		v := g.amplitude * env * s / 1.3

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *MusicGenerator) Err() error {
	return nil
}

// DeathGenerator streams a falling pitch sweep that fades out.
type DeathGenerator struct {
	sr       beep.SampleRate
	length   int
	pos      int
	phase    float64
	fromFreq float64
	toFreq   float64
}

// NewDeathGenerator creates a one-shot sweep lasting d.
func NewDeathGenerator(sr beep.SampleRate, d time.Duration) *DeathGenerator {
	return &DeathGenerator{
		sr:       sr,
		length:   sr.N(d),
		fromFreq: 440,
		toFreq:   90,
	}
}

// Stream fills samples until the sweep is over.
func (g *DeathGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.length)

		// Exponential glide between the two pitches
		freq := g.fromFreq * math.Pow(g.toFreq/g.fromFreq, t)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Sawtooth softened by the fade
		saw := 2*g.phase - 1
		v := 0.35 * (1 - t) * saw

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *DeathGenerator) Err() error {
	return nil
}

// newDeathSound layers the sweep over a short low thump.
func newDeathSound(sr beep.SampleRate) beep.Streamer {
	sweep := NewDeathGenerator(sr, 800*time.Millisecond)

	thump, err := generators.SineTone(sr, 55)
	if err != nil {
		return sweep
	}
	return beep.Mix(
		sweep,
		withVolume(beep.Take(sr.N(150*time.Millisecond), thump), 0.3),
	)
}

// withVolume scales a stream linearly. A volume of 0 or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
