package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleRenderer paints the fire and smoke particles supplied by the
// particle engine's snapshot for this frame
type ParticleRenderer struct{}

// NewParticleRenderer creates the particle phase
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws each particle as a filled circle with its decayed alpha
func (p *ParticleRenderer) Render(f *Frame, screen *ebiten.Image) {
	for i := range f.Particles {
		pt := &f.Particles[i]
		sx, sy := f.WorldToScreen(pt.X, pt.Y)
		a := pt.Alpha
		if a <= 0 {
			continue
		}
		c := color.RGBA{
			R: uint8(float64(pt.Color.R) * a),
			G: uint8(float64(pt.Color.G) * a),
			B: uint8(float64(pt.Color.B) * a),
			A: uint8(255 * a),
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(pt.Size), c, true)
	}
}
