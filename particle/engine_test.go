package particle

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/homestead/parameter"
)

const tick = 16667 * time.Microsecond // one 60fps-normalized frame

func burning(id string) []CampfireSource {
	return []CampfireSource{{ID: id, X: 100, Y: 100, Burning: true}}
}

func extinguished(id string) []CampfireSource {
	return []CampfireSource{{ID: id, X: 100, Y: 100, Burning: false}}
}

// ticksFor converts a millisecond span to whole normalized ticks
func ticksFor(ms float64) int {
	return int(ms / 16.667)
}

func countKind(e *Engine, k Kind) int {
	n := 0
	for _, p := range e.Snapshot(nil) {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// TestEmitAccumulator verifies the fractional accumulator converges to
// rate * elapsed/16.667ms: rate 0.8 over 1000ms of steady ticks emits 48
// particles within rounding tolerance
func TestEmitAccumulator(t *testing.T) {
	var acc float64
	total := 0
	ticks := 60 // 60 * 16.667ms ~= 1000ms
	for i := 0; i < ticks; i++ {
		total += emit(&acc, 0.8, 1.0)
	}
	if math.Abs(float64(total)-48) > 1 {
		t.Fatalf("emitted %d, want 48 +/- 1", total)
	}
}

// TestEmitFractionCarry verifies the remainder survives across calls
func TestEmitFractionCarry(t *testing.T) {
	var acc float64
	if n := emit(&acc, 0.6, 1.0); n != 0 {
		t.Fatalf("first call emitted %d", n)
	}
	if n := emit(&acc, 0.6, 1.0); n != 1 {
		t.Fatalf("second call emitted %d, want 1", n)
	}
	if math.Abs(acc-0.2) > 1e-9 {
		t.Fatalf("carried fraction %v, want 0.2", acc)
	}
}

// TestEmitVariableDt verifies frame-rate independence: halving the tick
// rate with doubled deltas lands on the same total
func TestEmitVariableDt(t *testing.T) {
	var accA, accB float64
	totalA, totalB := 0, 0
	for i := 0; i < 120; i++ {
		totalA += emit(&accA, 0.5, 1.0)
	}
	for i := 0; i < 60; i++ {
		totalB += emit(&accB, 0.5, 2.0)
	}
	if totalA != totalB {
		t.Fatalf("60fps total %d != 30fps total %d", totalA, totalB)
	}
}

// TestBurningScenario simulates a burning campfire with no player nearby
// for 2000ms: only fire and smoke appear, never bursts, and the buffer is
// non-empty at the end given smoke lifetimes and continuous respawn
func TestBurningScenario(t *testing.T) {
	e := NewEngine(nil)
	for i := 0; i < 120; i++ {
		e.Step(tick, burning("c1"))
	}

	if n := countKind(e, KindSmokeBurst); n != 0 {
		t.Fatalf("%d burst particles without a hot-zone player", n)
	}
	if countKind(e, KindFire) == 0 {
		t.Fatal("no fire particles from a burning campfire")
	}
	if countKind(e, KindSmoke) == 0 {
		t.Fatal("no smoke particles from a burning campfire")
	}
	if e.Count() == 0 {
		t.Fatal("particle buffer fully decayed while burning")
	}
}

// TestHotZoneBurst verifies the denser burst family appears only while a
// player stands in the hot zone
func TestHotZoneBurst(t *testing.T) {
	e := NewEngine(nil)
	src := []CampfireSource{{ID: "c1", X: 0, Y: 0, Burning: true, PlayerInHotZone: true}}
	for i := 0; i < 60; i++ {
		e.Step(tick, src)
	}
	if countKind(e, KindSmokeBurst) == 0 {
		t.Fatal("no burst particles with a player in the hot zone")
	}
}

// TestLingeringSmoke verifies the 4-second grace window: smoke (and only
// smoke) keeps emitting after burn-out, then stops at the deadline
func TestLingeringSmoke(t *testing.T) {
	e := NewEngine(nil)

	// Burn briefly, then extinguish
	for i := 0; i < 10; i++ {
		e.Step(tick, burning("c1"))
	}
	// Let existing fire die off: fire lifetime tops out at 200ms
	for i := 0; i < 20; i++ {
		e.Step(tick, extinguished("c1"))
	}
	if n := countKind(e, KindFire); n != 0 {
		t.Fatalf("%d fire particles while extinguished", n)
	}

	// Inside the linger window smoke still appears
	before := countKind(e, KindSmoke)
	for i := 0; i < 30; i++ {
		e.Step(tick, extinguished("c1"))
	}
	if countKind(e, KindSmoke) == 0 && before == 0 {
		t.Fatal("no lingering smoke inside the grace window")
	}

	// Run past the 4000ms deadline, then long enough for all smoke to
	// decay; nothing new may spawn
	deadlineTicks := ticksFor(parameter.SmokeLingerMs) + 10
	for i := 0; i < deadlineTicks; i++ {
		e.Step(tick, extinguished("c1"))
	}
	decayTicks := ticksFor(parameter.SmokeLifeMaxMs) + 10
	for i := 0; i < decayTicks; i++ {
		e.Step(tick, extinguished("c1"))
	}
	if n := e.Count(); n != 0 {
		t.Fatalf("%d particles alive after linger deadline plus max lifetime", n)
	}
}

// TestReignitionCancelsLinger verifies that lighting the fire again before
// the deadline clears the linger state
func TestReignitionCancelsLinger(t *testing.T) {
	e := NewEngine(nil)
	for i := 0; i < 5; i++ {
		e.Step(tick, burning("c1"))
	}
	e.Step(tick, extinguished("c1"))

	st := e.fires["c1"]
	if st.lingerMs <= 0 {
		t.Fatal("linger not armed on burn-out")
	}

	e.Step(tick, burning("c1"))
	if st.lingerMs != 0 {
		t.Fatalf("linger %v after re-ignition, want 0", st.lingerMs)
	}
}

// TestCompaction verifies dead particles are removed in place
func TestCompaction(t *testing.T) {
	e := NewEngine(nil)
	for i := 0; i < 30; i++ {
		e.Step(tick, burning("c1"))
	}

	// Advance with no sources; everything decays eventually
	horizon := ticksFor(parameter.SmokeLifeMaxMs+parameter.SmokeLingerMs) + 20
	for i := 0; i < horizon; i++ {
		e.Step(tick, nil)
	}
	if n := e.Count(); n != 0 {
		t.Fatalf("%d particles alive after full decay horizon", n)
	}
}

// TestStatePurge verifies per-campfire accumulator state is dropped when
// the campfire leaves the source set
func TestStatePurge(t *testing.T) {
	e := NewEngine(nil)
	both := []CampfireSource{
		{ID: "c1", X: 0, Y: 0, Burning: true},
		{ID: "c2", X: 50, Y: 0, Burning: true},
	}
	e.Step(tick, both)

	if len(e.fires) != 2 {
		t.Fatalf("tracking %d campfires, want 2", len(e.fires))
	}
	e.Step(tick, burning("c2"))
	if _, ok := e.fires["c1"]; ok {
		t.Fatal("state for departed campfire not purged")
	}
	if _, ok := e.fires["c2"]; !ok {
		t.Fatal("state for present campfire purged")
	}
}

// TestFireAlphaFade verifies the linear remaining-lifetime fade
func TestFireAlphaFade(t *testing.T) {
	p := Particle{Kind: KindFire, LifeMs: 50, InitialMs: 200}
	if r := p.ratio(); math.Abs(r-0.25) > 1e-9 {
		t.Fatalf("ratio %v, want 0.25", r)
	}
}

// TestSmokeSizeCap verifies growth stops at the cap
func TestSmokeSizeCap(t *testing.T) {
	e := NewEngine(nil)
	e.particles = append(e.particles, Particle{
		Kind: KindSmoke, LifeMs: 10000, InitialMs: 10000,
		Size: parameter.SmokeSizeCap - 0.1, Alpha: 0.5,
	})
	for i := 0; i < 30; i++ {
		e.Step(tick, nil)
	}
	got := e.Snapshot(nil)
	if len(got) != 1 {
		t.Fatalf("particle count %d", len(got))
	}
	if got[0].Size > parameter.SmokeSizeCap {
		t.Fatalf("size %v exceeds cap", got[0].Size)
	}
}

// TestSnapshotIsolation verifies the render copy does not alias engine state
func TestSnapshotIsolation(t *testing.T) {
	e := NewEngine(nil)
	for i := 0; i < 10; i++ {
		e.Step(tick, burning("c1"))
	}
	snap := e.Snapshot(nil)
	if len(snap) == 0 {
		t.Fatal("empty snapshot from a burning campfire")
	}
	snap[0].X = -9999
	again := e.Snapshot(nil)
	if again[0].X == -9999 {
		t.Fatal("snapshot aliases the engine buffer")
	}
}

// TestStartStop verifies the loop tears down cleanly and Stop is idempotent
func TestStartStop(t *testing.T) {
	e := NewEngine(func() []CampfireSource { return burning("c1") })
	e.Start()
	time.Sleep(80 * time.Millisecond)
	e.Stop()
	e.Stop()

	if e.Count() == 0 {
		t.Fatal("loop produced no particles")
	}
}
