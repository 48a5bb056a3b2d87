package render

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

func sptr(s string) *string { return &s }
func bptr(b bool) *bool     { return &b }
func i64ptr(v int64) *int64 { return &v }

func TestJumpOffsetParabola(t *testing.T) {
	const dur = parameter.JumpDurationMs
	const peak = parameter.JumpPeakHeight

	if got := JumpOffset(0, dur, peak); got != 0 {
		t.Fatalf("offset at start = %v, want 0", got)
	}
	if got := JumpOffset(dur, dur, peak); got != 0 {
		t.Fatalf("offset at end = %v, want 0", got)
	}
	if got := JumpOffset(dur/2, dur, peak); math.Abs(got-peak) > 1e-9 {
		t.Fatalf("offset at midpoint = %v, want %v", got, peak)
	}
	if got := JumpOffset(-10, dur, peak); got != 0 {
		t.Fatalf("offset before start = %v, want 0", got)
	}
	if got := JumpOffset(dur+10, dur, peak); got != 0 {
		t.Fatalf("offset after end = %v, want 0", got)
	}

	// Symmetric around the midpoint
	a := JumpOffset(dur*0.25, dur, peak)
	b := JumpOffset(dur*0.75, dur, peak)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("asymmetric arc: %v vs %v", a, b)
	}
}

func TestSpriteRow(t *testing.T) {
	cases := []struct {
		dir  string
		want int
	}{
		{"down", parameter.SpriteRowDown},
		{"up", parameter.SpriteRowUp},
		{"left", parameter.SpriteRowLeft},
		{"right", parameter.SpriteRowRight},
		{"sideways", parameter.SpriteRowDown},
		{"", parameter.SpriteRowDown},
	}
	for _, c := range cases {
		if got := SpriteRow(c.dir); got != c.want {
			t.Errorf("SpriteRow(%q) = %d, want %d", c.dir, got, c.want)
		}
	}
}

func TestMovementTrackerEpsilon(t *testing.T) {
	m := NewMovementTracker()

	// First sighting never counts as movement
	if m.Moved("p1", 100, 100) {
		t.Fatal("first observation reported as movement")
	}
	// Sub-epsilon jitter is not movement
	if m.Moved("p1", 100+parameter.MoveEpsilon/2, 100) {
		t.Fatal("jitter below epsilon reported as movement")
	}
	// A real step is
	if !m.Moved("p1", 100+parameter.MoveEpsilon*4, 100) {
		t.Fatal("step above epsilon not reported")
	}
}

func TestMovementTrackerPrune(t *testing.T) {
	m := NewMovementTracker()
	m.Moved("p1", 0, 0)
	m.Moved("p2", 0, 0)

	m.Prune(map[string]*entity.Record{"p2": {}})
	if _, ok := m.last["p1"]; ok {
		t.Fatal("departed player not pruned")
	}
	if _, ok := m.last["p2"]; !ok {
		t.Fatal("present player pruned")
	}
}

func TestPoseDeadRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Now()

	cases := []struct {
		dir  string
		want float64
	}{
		{"down", math.Pi / 2},
		{"right", math.Pi / 2},
		{"up", -math.Pi / 2},
		{"left", -math.Pi / 2},
	}
	for _, c := range cases {
		r := &entity.Record{ID: "p1", Direction: sptr(c.dir), IsDead: bptr(true)}
		p := PoseFor(r, now, false, rng)
		if !p.Dead {
			t.Fatalf("dir %q: pose not dead", c.dir)
		}
		if p.Rotation != c.want {
			t.Errorf("dir %q: rotation %v, want %v", c.dir, p.Rotation, c.want)
		}
	}
}

// TestPoseDeadSuppressesShake verifies a recent hit does not shake a corpse
func TestPoseDeadSuppressesShake(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Now()
	r := &entity.Record{
		ID:          "p1",
		IsDead:      bptr(true),
		LastHitTime: i64ptr(now.UnixMilli() - 50),
	}
	p := PoseFor(r, now, false, rng)
	if p.OffsetX != 0 || p.OffsetY != 0 {
		t.Fatalf("dead pose shakes: offset (%v, %v)", p.OffsetX, p.OffsetY)
	}
}

func TestPoseHitShake(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Now()

	recent := &entity.Record{ID: "p1", LastHitTime: i64ptr(now.UnixMilli() - 50)}
	p := PoseFor(recent, now, false, rng)
	if p.OffsetX == 0 && p.OffsetY == 0 {
		t.Fatal("no shake within the hit window")
	}
	if math.Abs(p.OffsetX) > parameter.HitShakeAmplitude || math.Abs(p.OffsetY) > parameter.HitShakeAmplitude {
		t.Fatalf("shake (%v, %v) exceeds amplitude", p.OffsetX, p.OffsetY)
	}

	stale := &entity.Record{ID: "p1", LastHitTime: i64ptr(now.UnixMilli() - int64(parameter.HitShakeWindowMs) - 100)}
	p = PoseFor(stale, now, false, rng)
	if p.OffsetX != 0 || p.OffsetY != 0 {
		t.Fatalf("shake (%v, %v) outside the hit window", p.OffsetX, p.OffsetY)
	}
}

func TestPoseJumpShadow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Now()

	// Mid-jump: sprite lifted, shadow shrunk and faded
	mid := &entity.Record{ID: "p1", JumpStartTime: i64ptr(now.UnixMilli() - int64(parameter.JumpDurationMs/2))}
	p := PoseFor(mid, now, false, rng)
	if p.JumpOffset <= 0 {
		t.Fatal("no lift at mid-jump")
	}
	if p.ShadowScale >= 1.0 || p.ShadowAlpha >= 1.0 {
		t.Fatalf("shadow unchanged at mid-jump: scale %v alpha %v", p.ShadowScale, p.ShadowAlpha)
	}
	if p.ShadowScale < parameter.JumpShadowMinScale || p.ShadowAlpha < parameter.JumpShadowMinAlpha {
		t.Fatalf("shadow below floor: scale %v alpha %v", p.ShadowScale, p.ShadowAlpha)
	}

	// Jump long over: grounded pose
	done := &entity.Record{ID: "p1", JumpStartTime: i64ptr(now.UnixMilli() - int64(parameter.JumpDurationMs) - 200)}
	p = PoseFor(done, now, false, rng)
	if p.JumpOffset != 0 || p.ShadowScale != 1.0 || p.ShadowAlpha != 1.0 {
		t.Fatalf("landed pose still airborne: offset %v scale %v alpha %v", p.JumpOffset, p.ShadowScale, p.ShadowAlpha)
	}
}

func TestPoseWalkCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := &entity.Record{ID: "p1", Direction: sptr("right")}

	// Standing still holds the idle frame
	p := PoseFor(r, time.Now(), false, rng)
	if p.Frame != parameter.SpriteIdleFrame {
		t.Fatalf("idle frame %d, want %d", p.Frame, parameter.SpriteIdleFrame)
	}

	// Moving cycles through every frame over one full cycle
	seen := make(map[int]bool)
	base := time.Now()
	for i := 0; i < parameter.SpriteFrames*2; i++ {
		at := base.Add(time.Duration(float64(i)*parameter.WalkFrameMs) * time.Millisecond)
		p = PoseFor(r, at, true, rng)
		seen[p.Frame] = true
	}
	if len(seen) != parameter.SpriteFrames {
		t.Fatalf("walk cycle visited %d frames, want %d", len(seen), parameter.SpriteFrames)
	}
}
