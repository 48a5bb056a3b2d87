package render

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

// Pose is the resolved draw state for one player sprite
type Pose struct {
	Row   int // sprite sheet row from facing
	Frame int // walk cycle column

	// OffsetX/Y are pixel offsets from hit shake
	OffsetX, OffsetY float64

	// JumpOffset lifts the sprite; the shadow shrinks and fades with it
	JumpOffset  float64
	ShadowScale float64
	ShadowAlpha float64

	// Rotation is radians; only nonzero for dead players
	Rotation float64
	Dead     bool
}

// SpriteRow maps a replicated facing string to its sheet row. Unrecognized
// directions face down
func SpriteRow(direction string) int {
	switch direction {
	case "up":
		return parameter.SpriteRowUp
	case "left":
		return parameter.SpriteRowLeft
	case "right":
		return parameter.SpriteRowRight
	case "down":
		return parameter.SpriteRowDown
	}
	return parameter.SpriteRowDown
}

// JumpOffset is the closed-form jump parabola: zero at elapsed 0 and at
// elapsed == duration, exactly peak at the midpoint
func JumpOffset(elapsedMs, durationMs, peak float64) float64 {
	if durationMs <= 0 || elapsedMs <= 0 || elapsedMs >= durationMs {
		return 0
	}
	t := elapsedMs / durationMs
	return 4 * peak * t * (1 - t)
}

// MovementTracker detects per-player movement from frame-to-frame position
// deltas. Owned by the Y-sorted renderer; entries for players that left the
// visible set are dropped each frame
type MovementTracker struct {
	last map[string][2]float64
}

// NewMovementTracker creates an empty tracker
func NewMovementTracker() *MovementTracker {
	return &MovementTracker{last: make(map[string][2]float64)}
}

// Moved reports whether the player's position delta since the previous
// frame exceeds the jitter epsilon, and records the new position
func (m *MovementTracker) Moved(id string, x, y float64) bool {
	prev, ok := m.last[id]
	m.last[id] = [2]float64{x, y}
	if !ok {
		return false
	}
	return math.Abs(x-prev[0]) > parameter.MoveEpsilon ||
		math.Abs(y-prev[1]) > parameter.MoveEpsilon
}

// Prune drops tracking for ids not in keep
func (m *MovementTracker) Prune(keep map[string]*entity.Record) {
	for id := range m.last {
		if _, ok := keep[id]; !ok {
			delete(m.last, id)
		}
	}
}

// PoseFor resolves the full pose for a player record at now. moved is the
// tracker's verdict for this frame
func PoseFor(r *entity.Record, now time.Time, moved bool, rng *rand.Rand) Pose {
	p := Pose{
		Row:         parameter.SpriteRowDown,
		Frame:       parameter.SpriteIdleFrame,
		ShadowScale: 1.0,
		ShadowAlpha: 1.0,
	}
	if r.Direction != nil {
		p.Row = SpriteRow(*r.Direction)
	}

	if r.IsDead != nil && *r.IsDead {
		// Dead players lie down instead of using a separate sprite; the
		// rotation sign follows the facing so the body falls naturally
		p.Dead = true
		p.Rotation = math.Pi / 2
		if p.Row == parameter.SpriteRowLeft || p.Row == parameter.SpriteRowUp {
			p.Rotation = -math.Pi / 2
		}
		return p
	}

	if moved {
		nowMs := float64(now.UnixNano()) / 1e6
		cycle := int(nowMs/parameter.WalkFrameMs) % parameter.SpriteFrames
		p.Frame = cycle
	}

	// Hit shake, suppressed once dead (handled above by early return)
	if r.LastHitTime != nil {
		sinceHit := float64(now.UnixMilli() - *r.LastHitTime)
		if sinceHit >= 0 && sinceHit < parameter.HitShakeWindowMs {
			p.OffsetX = (rng.Float64()*2 - 1) * parameter.HitShakeAmplitude
			p.OffsetY = (rng.Float64()*2 - 1) * parameter.HitShakeAmplitude
		}
	}

	// Time-boxed jump arc with correlated shadow
	if r.JumpStartTime != nil && *r.JumpStartTime > 0 {
		elapsed := float64(now.UnixMilli() - *r.JumpStartTime)
		if elapsed >= 0 && elapsed < parameter.JumpDurationMs {
			p.JumpOffset = JumpOffset(elapsed, parameter.JumpDurationMs, parameter.JumpPeakHeight)
			h := p.JumpOffset / parameter.JumpPeakHeight
			p.ShadowScale = 1.0 - (1.0-parameter.JumpShadowMinScale)*h
			p.ShadowAlpha = 1.0 - (1.0-parameter.JumpShadowMinAlpha)*h
		}
	}

	return p
}
