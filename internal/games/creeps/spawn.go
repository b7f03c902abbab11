package creeps

import (
	"math"

	"github.com/vovakirdan/dodge-creeps/internal/config"
	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// RNG is the random source the game draws from. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// uniform returns a value in [lo, hi).
func uniform(rng RNG, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Spawn describes where and how a new mob enters the screen.
type Spawn struct {
	Position  core.Vec2
	Tangent   float64 // Path tangent angle at Position
	Direction float64 // Heading in radians; also the mob's rotation
	Speed     float64
	Velocity  core.Vec2
}

// SpawnPolicy picks spawn points and headings for mobs.
type SpawnPolicy struct {
	MinSpeed float64
	MaxSpeed float64
	Spread   float64 // Max deviation from the inward normal, radians
}

// NewSpawnPolicy builds a policy from the mob config.
func NewSpawnPolicy(cfg config.CreepsMob) SpawnPolicy {
	return SpawnPolicy{
		MinSpeed: cfg.MinSpeed,
		MaxSpeed: cfg.MaxSpeed,
		Spread:   cfg.SpreadDegrees * math.Pi / 180,
	}
}

// Next draws a spawn: a uniform point on the path, heading inward from the
// path tangent plus a uniform jitter, at a uniform speed.
func (sp SpawnPolicy) Next(rng RNG, path *SpawnPath) Spawn {
	pos, tangent := path.Sample(uniform(rng, 0, path.Length()))

	direction := tangent + math.Pi/2
	direction += uniform(rng, -sp.Spread, sp.Spread)

	speed := uniform(rng, sp.MinSpeed, sp.MaxSpeed)

	return Spawn{
		Position:  pos,
		Tangent:   tangent,
		Direction: direction,
		Speed:     speed,
		Velocity:  core.V2(speed, 0).Rotated(direction),
	}
}
