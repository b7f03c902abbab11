package core

// Fallbacks used when the terminal size or tick rate is unknown.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a game sees of its host: the playfield size in
// cells, the tick rate and the RNG seed. A zero Seed asks the platform
// to pick one from the clock.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// DefaultConfig returns an 80x24 config at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Sized returns c with the given size. Non-positive dimensions keep the
// current value, so a failed terminal query leaves the defaults in place.
func (c RuntimeConfig) Sized(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}

// TickDuration is one tick in seconds.
func (c RuntimeConfig) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game the platform cares about.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by each Step.
type StepResult struct {
	State GameState
}
