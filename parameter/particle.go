package parameter

import "time"

// Particle Simulation
// Emission rates are expressed per normalized 60fps frame (16.667ms). The
// engine integrates rate * (dt / FrameNormMs) into a fractional accumulator,
// so the spawn rate is frame-rate-independent

const (
	// FrameNormMs is the normalization base for emission accumulators
	FrameNormMs = 16.667

	// ParticleTickInterval is the self-scheduled simulation step target
	ParticleTickInterval = 16 * time.Millisecond

	// MaxParticles caps the live particle buffer
	MaxParticles = 4096
)

// Fire
// Three vertically stacked emission zones per campfire, base to top

const (
	FireZoneCount = 3

	// FireLifeMinMs/MaxMs bound the lifetime of a fire particle
	FireLifeMinMs = 80.0
	FireLifeMaxMs = 200.0

	// FireSpeedMin/Max is the upward velocity range in world units per second
	FireSpeedMin = 40.0
	FireSpeedMax = 90.0

	// FireJitter is the horizontal velocity jitter in world units per second
	FireJitter = 18.0

	// FireSizeMin/Max in world units
	FireSizeMin = 2.0
	FireSizeMax = 5.0
)

// Smoke

const (
	// SmokeRate is particles per normalized frame per burning campfire
	SmokeRate = 0.25

	// SmokeLifeMinMs/MaxMs bound the lifetime of a smoke particle
	SmokeLifeMinMs = 800.0
	SmokeLifeMaxMs = 2200.0

	// SmokeAlphaStart/End are the endpoints of the lifetime alpha ramp
	SmokeAlphaStart = 0.55
	SmokeAlphaEnd   = 0.05

	// SmokeSpeedMin/Max is the upward drift in world units per second
	SmokeSpeedMin = 8.0
	SmokeSpeedMax = 20.0

	// SmokeAccel is the upward acceleration in world units per second squared
	SmokeAccel = 6.0

	// SmokeGrowth is size gain in world units per second, up to SmokeSizeCap
	SmokeGrowth  = 3.5
	SmokeSizeCap = 14.0

	// SmokeSizeMin/Max is the spawn size range in world units
	SmokeSizeMin = 3.0
	SmokeSizeMax = 6.0

	// SmokeLingerMs keeps smoke emitting after a campfire stops burning
	SmokeLingerMs = 4000.0
)

// Smoke Burst
// Triggered while a player stands inside a burning campfire's hot zone

const (
	// BurstRate is particles per normalized frame, denser than plain smoke
	BurstRate = 0.9

	// BurstAlphaStart blends toward SmokeAlphaEnd over the particle lifetime
	BurstAlphaStart = 0.8

	// BurstSizeMin/Max is the spawn size range, larger than plain smoke
	BurstSizeMin = 5.0
	BurstSizeMax = 10.0
)
