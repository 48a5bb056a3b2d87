package parameter

// Player Pose

const (
	// SpriteRowDown/Up/Left/Right select the sprite sheet row per facing.
	// Down is the default when the direction string is unrecognized
	SpriteRowDown  = 0
	SpriteRowUp    = 1
	SpriteRowLeft  = 2
	SpriteRowRight = 3

	// SpriteFrames is the number of walk cycle columns per row
	SpriteFrames = 4

	// SpriteIdleFrame is the column used when the player is stationary
	SpriteIdleFrame = 0

	// WalkFrameMs is the walk cycle frame duration
	WalkFrameMs = 150.0

	// MoveEpsilon is the minimum position delta per frame that counts as
	// movement. Filters float jitter from replication interpolation
	MoveEpsilon = 0.05
)

// Jump
// Vertical offset follows a closed-form parabola: zero at start and end,
// JumpPeakHeight exactly at the midpoint

const (
	// JumpDurationMs is the full airborne time
	JumpDurationMs = 500.0

	// JumpPeakHeight is the apex vertical offset in world units
	JumpPeakHeight = 24.0

	// JumpShadowMinScale is the shadow scale at the jump apex
	JumpShadowMinScale = 0.5

	// JumpShadowMinAlpha is the shadow opacity at the jump apex
	JumpShadowMinAlpha = 0.25
)

// Hit Shake

const (
	// HitShakeWindowMs is how long after a recorded hit the sprite shakes
	HitShakeWindowMs = 250.0

	// HitShakeAmplitude is the maximum random pixel offset on each axis
	HitShakeAmplitude = 2.0
)

// Name Tag

const (
	// HoverRadius is the circular hit test radius around the player center
	// for name tag hovering, in world units
	HoverRadius = 28.0
)
