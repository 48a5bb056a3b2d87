package particle

import "image/color"

// Kind discriminates the visual particle families
type Kind uint8

const (
	KindFire Kind = iota
	KindSmoke
	KindSmokeBurst
)

// Particle is a transient visual entity owned exclusively by the Engine.
// It is never replicated and never referenced outside the engine except
// through value copies handed to the renderer
type Particle struct {
	Kind Kind

	// World position and velocity (units per second)
	X, Y   float64
	VX, VY float64

	// LifeMs counts down from InitialMs; the particle dies at zero
	LifeMs    float64
	InitialMs float64

	Size  float64
	Alpha float64
	Color color.RGBA
}

// ratio is the remaining-lifetime fraction in [0,1]
func (p *Particle) ratio() float64 {
	if p.InitialMs <= 0 {
		return 0
	}
	r := p.LifeMs / p.InitialMs
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Fire palette, hot core to cool edge
var (
	fireHot  = color.RGBA{R: 0xff, G: 0xe0, B: 0x66, A: 0xff}
	fireMid  = color.RGBA{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff}
	smokeGry = color.RGBA{R: 0x9a, G: 0x9a, B: 0x9a, A: 0xff}
	smokeDrk = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)
