package particle

import (
	"math/rand"

	"github.com/lixenwraith/homestead/parameter"
)

// CampfireSource is the per-frame emission input for one campfire, derived
// from the visible set by the caller
type CampfireSource struct {
	ID      string
	X, Y    float64
	Burning bool

	// PlayerInHotZone triggers the denser, darker smoke-burst emission
	PlayerInHotZone bool
}

// fireZone tunes one of the three vertically stacked flame emission bands.
// Each zone runs its own fractional accumulator so the bands keep their
// relative densities at any frame rate
type fireZone struct {
	Rate     float64 // particles per normalized frame
	Spread   float64 // horizontal spawn spread, world units
	SpeedMul float64 // multiplier on the base upward speed
	OffsetY  float64 // spawn offset from the campfire center, world units
}

// fireZones is ordered base, middle, top
var fireZones = [parameter.FireZoneCount]fireZone{
	{Rate: 0.55, Spread: 12.0, SpeedMul: 0.7, OffsetY: 4.0},
	{Rate: 0.40, Spread: 8.0, SpeedMul: 1.0, OffsetY: -4.0},
	{Rate: 0.20, Spread: 4.0, SpeedMul: 1.3, OffsetY: -12.0},
}

// campfireState is the engine's per-campfire bookkeeping: fractional
// emission accumulators plus the lingering-smoke deadline. Purged when the
// campfire leaves the source set
type campfireState struct {
	fireAcc  [parameter.FireZoneCount]float64
	smokeAcc float64
	burstAcc float64

	// lingerMs counts down after the burning flag drops; smoke keeps
	// emitting until it reaches zero. Re-ignition clears it
	lingerMs   float64
	wasBurning bool
}

// emit integrates rate over the normalized delta and returns the whole
// particles to spawn, preserving the fractional remainder in acc
func emit(acc *float64, rate, frames float64) int {
	*acc += rate * frames
	n := int(*acc)
	*acc -= float64(n)
	return n
}

func rangeRand(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (e *Engine) spawnFire(src CampfireSource, z fireZone, rng *rand.Rand) Particle {
	life := rangeRand(rng, parameter.FireLifeMinMs, parameter.FireLifeMaxMs)
	c := fireMid
	if rng.Float64() < 0.4 {
		c = fireHot
	}
	return Particle{
		Kind:      KindFire,
		X:         src.X + rangeRand(rng, -z.Spread, z.Spread),
		Y:         src.Y + z.OffsetY,
		VX:        rangeRand(rng, -parameter.FireJitter, parameter.FireJitter),
		VY:        -rangeRand(rng, parameter.FireSpeedMin, parameter.FireSpeedMax) * z.SpeedMul,
		LifeMs:    life,
		InitialMs: life,
		Size:      rangeRand(rng, parameter.FireSizeMin, parameter.FireSizeMax),
		Alpha:     1.0,
		Color:     c,
	}
}

func (e *Engine) spawnSmoke(src CampfireSource, burst bool, rng *rand.Rand) Particle {
	life := rangeRand(rng, parameter.SmokeLifeMinMs, parameter.SmokeLifeMaxMs)
	p := Particle{
		Kind:      KindSmoke,
		X:         src.X + rangeRand(rng, -6, 6),
		Y:         src.Y - 14,
		VX:        rangeRand(rng, -4, 4),
		VY:        -rangeRand(rng, parameter.SmokeSpeedMin, parameter.SmokeSpeedMax),
		LifeMs:    life,
		InitialMs: life,
		Size:      rangeRand(rng, parameter.SmokeSizeMin, parameter.SmokeSizeMax),
		Alpha:     parameter.SmokeAlphaStart,
		Color:     smokeGry,
	}
	if burst {
		p.Kind = KindSmokeBurst
		p.Size = rangeRand(rng, parameter.BurstSizeMin, parameter.BurstSizeMax)
		p.Alpha = parameter.BurstAlphaStart
		p.Color = smokeDrk
	}
	return p
}
