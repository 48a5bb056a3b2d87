package audio

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// crackle tuning: sparse random impulses over a low noise bed
	impulseChance = 0.0025
	impulseGain   = 0.35
	bedGain       = 0.015
	decayPerSamp  = 0.9992
)

// Crackle plays a low fire-crackle loop while any visible campfire burns.
// The streamer runs for the life of the process; SetBurning only gates its
// output, which avoids click artifacts from stopping and restarting the
// speaker
type Crackle struct {
	burning  atomic.Bool
	initOnce sync.Once
	initErr  error

	rng *rand.Rand
	env float64 // current impulse envelope
}

// NewCrackle creates the crackle source. Nothing plays until Start
func NewCrackle() *Crackle {
	return &Crackle{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Start initializes the speaker and begins streaming. Safe to call once;
// errors are returned rather than logged so the caller owns the policy
func (c *Crackle) Start() error {
	c.initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			c.initErr = err
			return
		}
		speaker.Play(beep.StreamerFunc(c.stream))
	})
	return c.initErr
}

// SetBurning gates the crackle output
func (c *Crackle) SetBurning(on bool) {
	c.burning.Store(on)
}

// Stop silences and shuts the speaker down
func (c *Crackle) Stop() {
	c.burning.Store(false)
	speaker.Clear()
}

// stream generates the crackle: white-noise bed plus randomly triggered
// decaying impulses. Fully silent when no campfire burns
func (c *Crackle) stream(samples [][2]float64) (int, bool) {
	if !c.burning.Load() {
		for i := range samples {
			samples[i][0] = 0
			samples[i][1] = 0
		}
		return len(samples), true
	}

	for i := range samples {
		if c.rng.Float64() < impulseChance {
			c.env = impulseGain * (0.5 + c.rng.Float64()*0.5)
		}
		c.env *= decayPerSamp

		v := (c.rng.Float64()*2-1)*bedGain + (c.rng.Float64()*2-1)*c.env
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}
