package config

import "math"

// minSpawnInterval keeps the mob timer from degenerating into one spawn per tick.
const minSpawnInterval = 0.05

// DifficultyManager turns a round's score or tick count into a level in
// [0, 1] and scales the mob spawn interval by it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64 // InitialLevel clamped to [0, 1]
}

// NewDifficultyManager builds a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: unit(cfg.InitialLevel)}
}

// IsEnabled reports whether the level can ever be above zero.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// progress is how far the round is toward MaxAt, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return unit(float64(score) / maxAt)
	case "time":
		return unit(float64(ticks) / maxAt)
	}
	return 0
}

// Level interpolates from InitialLevel up to 1 as the round progresses.
// A disabled manager is always at level 0; progression type "none"
// holds the initial level.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.floor + d.progress(score, ticks)*(1-d.floor)
}

// SpawnInterval scales base so the spawn rate grows from 1/base to
// (1+SpawnRateMultiplier)/base between level 0 and 1. The result never
// drops below minSpawnInterval unless base itself is smaller.
func (d *DifficultyManager) SpawnInterval(base float64, score, ticks int) float64 {
	rate := 1 + d.Level(score, ticks)*d.cfg.Scaling.SpawnRateMultiplier
	return math.Max(base/rate, math.Min(base, minSpawnInterval))
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
