package render

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/homestead/parameter"
)

// LightRenderer composites additive point lights over burning campfires,
// with a per-frame random flicker on the radius
type LightRenderer struct {
	rng  *rand.Rand
	glow *ebiten.Image
}

// NewLightRenderer creates the light phase
func NewLightRenderer() *LightRenderer {
	return &LightRenderer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// glowTexture builds a radial falloff sprite once; additive scaling of one
// texture is cheaper than per-frame gradient fills
func (l *LightRenderer) glowTexture() *ebiten.Image {
	if l.glow != nil {
		return l.glow
	}
	const size = 128
	img := ebiten.NewImage(size, size)
	center := float64(size) / 2
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			d := (dx*dx + dy*dy) / (center * center)
			if d > 1 {
				d = 1
			}
			v := 1 - d
			v *= v
			i := (y*size + x) * 4
			pix[i+0] = uint8(255 * v * 1.0)  // warm white, premultiplied
			pix[i+1] = uint8(255 * v * 0.72)
			pix[i+2] = uint8(255 * v * 0.35)
			pix[i+3] = uint8(255 * v)
		}
	}
	img.WritePixels(pix)
	l.glow = img
	return img
}

// Render draws one additive glow per burning visible campfire
func (l *LightRenderer) Render(f *Frame, screen *ebiten.Image) {
	glow := l.glowTexture()
	gb := glow.Bounds()

	for _, r := range f.Visible.Campfires {
		if r.IsBurning == nil || !*r.IsBurning {
			continue
		}
		x, okX := r.X()
		y, okY := r.Y()
		if !okX || !okY {
			continue
		}
		sx, sy := f.WorldToScreen(x, y)

		radius := parameter.CampfireLightRadius +
			(l.rng.Float64()*2-1)*parameter.CampfireLightFlicker
		scale := radius * 2 / float64(gb.Dx())

		op := &ebiten.DrawImageOptions{}
		op.Blend = ebiten.BlendLighter
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx-radius, sy-radius)
		op.ColorScale.ScaleAlpha(0.55)
		screen.DrawImage(glow, op)
	}
}
