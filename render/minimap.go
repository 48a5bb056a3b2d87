package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

// MinimapRenderer draws the corner overlay: terrain backdrop, entity dots,
// player pins, and the local player marker. Toggleable at runtime
type MinimapRenderer struct {
	enabled bool
}

// NewMinimapRenderer creates the minimap phase
func NewMinimapRenderer(enabled bool) *MinimapRenderer {
	return &MinimapRenderer{enabled: enabled}
}

// SetEnabled toggles the overlay
func (m *MinimapRenderer) SetEnabled(v bool) { m.enabled = v }

// IsVisible implements VisibilityToggle
func (m *MinimapRenderer) IsVisible() bool { return m.enabled }

var (
	mapBack   = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xc0}
	mapBorder = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	dotTree   = color.RGBA{R: 0x30, G: 0x90, B: 0x30, A: 0xff}
	dotStone  = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}
	dotFire   = color.RGBA{R: 0xff, G: 0x80, B: 0x20, A: 0xff}
	dotPlayer = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dotLocal  = color.RGBA{R: 0x40, G: 0xc0, B: 0xff, A: 0xff}
	dotPin    = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// Render paints the overlay in the top-right corner, centered on the local
// player's world position
func (m *MinimapRenderer) Render(f *Frame, screen *ebiten.Image) {
	size := float32(parameter.MinimapSize)
	x0 := float32(f.ScreenW-parameter.MinimapSize) - parameter.MinimapMargin
	y0 := float32(parameter.MinimapMargin)

	vector.DrawFilledRect(screen, x0, y0, size, size, mapBack, false)
	vector.StrokeRect(screen, x0, y0, size, size, 1, mapBorder, false)

	local, ok := f.Tables.Players[f.LocalID]
	if !ok {
		return
	}
	cx, okX := local.X()
	cy, okY := local.Y()
	if !okX || !okY {
		return
	}

	// World-to-minimap projection centered on the local player
	project := func(wx, wy float64) (float32, float32, bool) {
		fx := (wx-cx)/parameter.MinimapWorldSpan + 0.5
		fy := (wy-cy)/parameter.MinimapWorldSpan + 0.5
		if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
			return 0, 0, false
		}
		return x0 + float32(fx)*size, y0 + float32(fy)*size, true
	}

	plot := func(table map[string]*entity.Record, c color.RGBA, radius float32) {
		for _, r := range table {
			wx, okX := r.X()
			wy, okY := r.Y()
			if !okX || !okY {
				continue
			}
			if px, py, in := project(wx, wy); in {
				vector.DrawFilledCircle(screen, px, py, radius, c, false)
			}
		}
	}

	plot(f.Tables.Trees, dotTree, 1)
	plot(f.Tables.Stones, dotStone, 1)
	plot(f.Tables.Campfires, dotFire, 2)
	plot(f.Tables.Players, dotPlayer, 2)

	for _, pin := range f.Tables.PlayerPins {
		if px, py, in := project(pin.PinX, pin.PinY); in {
			vector.DrawFilledCircle(screen, px, py, 2, dotPin, false)
		}
	}

	if px, py, in := project(cx, cy); in {
		vector.DrawFilledCircle(screen, px, py, 3, dotLocal, false)
	}
}
