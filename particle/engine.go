package particle

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/homestead/parameter"
)

// SourceFunc supplies the current campfire emission inputs. Called once per
// simulation tick from the engine's own loop
type SourceFunc func() []CampfireSource

// Engine runs the fire and smoke simulation on its own wall-clock loop,
// decoupled from the render tick: a render frame may observe zero or
// several simulation steps. All mutable state is owned by the engine and
// exposed only through Snapshot copies
type Engine struct {
	mu        sync.Mutex
	particles []Particle
	fires     map[string]*campfireState
	rng       *rand.Rand

	source SourceFunc

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewEngine creates an engine reading emission inputs from source
func NewEngine(source SourceFunc) *Engine {
	return &Engine{
		particles: make([]Particle, 0, parameter.MaxParticles),
		fires:     make(map[string]*campfireState),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		source:    source,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the simulation loop. The loop measures its own wall-clock
// delta each iteration; no ordering guarantee exists between it and the
// render loop
func (e *Engine) Start() {
	e.wg.Add(1)
	go e.loop()
}

// Stop tears the loop down and waits for it to exit, so no tick can touch
// engine state after Stop returns
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.stopCh)
		e.wg.Wait()
	})
}

func (e *Engine) loop() {
	defer e.wg.Done()

	ticker := time.NewTicker(parameter.ParticleTickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-e.stopCh:
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			e.Step(dt, e.source())
		}
	}
}

// Step advances the simulation by dt against the given sources. Exposed so
// tests can drive the engine deterministically
func (e *Engine) Step(dt time.Duration, sources []CampfireSource) {
	dtMs := float64(dt.Nanoseconds()) / 1e6
	if dtMs <= 0 {
		return
	}
	frames := dtMs / parameter.FrameNormMs

	e.mu.Lock()
	defer e.mu.Unlock()

	e.emitAll(dtMs, frames, sources)
	e.advance(dtMs)
	e.purge(sources)
}

// emitAll runs the per-campfire emission model
func (e *Engine) emitAll(dtMs, frames float64, sources []CampfireSource) {
	for _, src := range sources {
		st, ok := e.fires[src.ID]
		if !ok {
			st = &campfireState{wasBurning: src.Burning}
			e.fires[src.ID] = st
		}

		// Burning edge transitions drive the linger window: going out arms
		// a 4s deadline, re-ignition cancels it
		if st.wasBurning && !src.Burning {
			st.lingerMs = parameter.SmokeLingerMs
		} else if src.Burning {
			st.lingerMs = 0
		}
		st.wasBurning = src.Burning

		if src.Burning {
			for i := range fireZones {
				for n := emit(&st.fireAcc[i], fireZones[i].Rate, frames); n > 0; n-- {
					e.add(e.spawnFire(src, fireZones[i], e.rng))
				}
			}
			if src.PlayerInHotZone {
				for n := emit(&st.burstAcc, parameter.BurstRate, frames); n > 0; n-- {
					e.add(e.spawnSmoke(src, true, e.rng))
				}
			}
			for n := emit(&st.smokeAcc, parameter.SmokeRate, frames); n > 0; n-- {
				e.add(e.spawnSmoke(src, false, e.rng))
			}
		} else if st.lingerMs > 0 {
			// Extinguished but still lingering: smoke only, at the normal rate
			for n := emit(&st.smokeAcc, parameter.SmokeRate, frames); n > 0; n-- {
				e.add(e.spawnSmoke(src, false, e.rng))
			}
			st.lingerMs -= dtMs
			if st.lingerMs < 0 {
				st.lingerMs = 0
			}
		}
	}
}

// advance ages every particle and compacts the buffer in place. Dead
// particles are overwritten rather than filtered into a fresh slice, so a
// steady state allocates nothing
func (e *Engine) advance(dtMs float64) {
	dtSec := dtMs / 1000.0
	live := e.particles[:0]
	for i := range e.particles {
		p := &e.particles[i]
		p.LifeMs -= dtMs
		if p.LifeMs <= 0 {
			continue
		}

		p.X += p.VX * dtSec
		p.Y += p.VY * dtSec

		switch p.Kind {
		case KindFire:
			// Linear fade, no growth
			p.Alpha = p.ratio()
		case KindSmoke, KindSmokeBurst:
			start := parameter.SmokeAlphaStart
			if p.Kind == KindSmokeBurst {
				start = parameter.BurstAlphaStart
			}
			r := p.ratio()
			p.Alpha = parameter.SmokeAlphaEnd + (start-parameter.SmokeAlphaEnd)*r
			if p.Size < parameter.SmokeSizeCap {
				p.Size += parameter.SmokeGrowth * dtSec
				if p.Size > parameter.SmokeSizeCap {
					p.Size = parameter.SmokeSizeCap
				}
			}
			// Slow drift upward, accelerating slightly
			p.VY -= parameter.SmokeAccel * dtSec
		}

		if p.Alpha <= 0.01 {
			continue
		}
		live = append(live, *p)
	}
	e.particles = live
}

// purge drops accumulator and linger state for campfires that left the
// source set; without this the map grows without bound
func (e *Engine) purge(sources []CampfireSource) {
	if len(e.fires) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		seen[src.ID] = struct{}{}
	}
	for id := range e.fires {
		if _, ok := seen[id]; !ok {
			delete(e.fires, id)
		}
	}
}

func (e *Engine) add(p Particle) {
	if len(e.particles) >= parameter.MaxParticles {
		return
	}
	e.particles = append(e.particles, p)
}

// Snapshot copies the live particles into dst, reusing its capacity. The
// copy is what the render loop draws; the engine keeps sole ownership of
// the backing buffer
func (e *Engine) Snapshot(dst []Particle) []Particle {
	e.mu.Lock()
	defer e.mu.Unlock()
	dst = dst[:0]
	return append(dst, e.particles...)
}

// Count returns the live particle count
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.particles)
}
