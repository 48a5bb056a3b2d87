package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GroundRenderer paints the flat layer: mushrooms, corn, dropped items,
// campfires, sleeping bags. No depth sorting; collection order is stable
type GroundRenderer struct{}

// NewGroundRenderer creates the ground phase
func NewGroundRenderer() *GroundRenderer {
	return &GroundRenderer{}
}

// Render draws every ground-layer entity centered on its world position
func (g *GroundRenderer) Render(f *Frame, screen *ebiten.Image) {
	for _, r := range f.Layers.Ground {
		x, okX := r.X()
		y, okY := r.Y()
		if !okX || !okY {
			continue
		}
		sx, sy := f.WorldToScreen(x, y)
		drawCentered(screen, f.Assets.Get(spriteName(r, f.Tables)), sx, sy)
	}
}
