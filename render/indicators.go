package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HoldState is the in-progress hold-to-interact, owned by the input layer.
// Progress is [0,1]
type HoldState struct {
	TargetID string
	Progress float64
}

// IndicatorRenderer draws hold-to-interact progress arcs over in-range
// interactables, and the equipped ranged weapon's range ring around the
// local player
type IndicatorRenderer struct {
	// Hold returns the current hold state, nil when idle
	Hold func() *HoldState
}

// NewIndicatorRenderer creates the indicator phase
func NewIndicatorRenderer(hold func() *HoldState) *IndicatorRenderer {
	return &IndicatorRenderer{Hold: hold}
}

var (
	arcBack = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xb0}
	arcFill = color.RGBA{R: 0xf0, G: 0xd0, B: 0x40, A: 0xe0}
	ringCol = color.RGBA{R: 0xd0, G: 0xd0, B: 0xff, A: 0x50}
)

// Render draws the progress arc and the range ring
func (ir *IndicatorRenderer) Render(f *Frame, screen *ebiten.Image) {
	if ir.Hold != nil {
		if h := ir.Hold(); h != nil {
			if r, ok := f.Visible.ByID[h.TargetID]; ok {
				x, okX := r.X()
				y, okY := r.Y()
				if okX && okY {
					sx, sy := f.WorldToScreen(x, y)
					drawProgressArc(screen, float32(sx), float32(sy-36), 12, h.Progress)
				}
			}
		}
	}

	ir.renderRangeRing(f, screen)
}

// renderRangeRing shows the equipped ranged weapon's reach
func (ir *IndicatorRenderer) renderRangeRing(f *Frame, screen *ebiten.Image) {
	local, ok := f.Tables.Players[f.LocalID]
	if !ok {
		return
	}
	if local.Identity == nil {
		return
	}
	eq, ok := f.Tables.ActiveEquipments[*local.Identity]
	if !ok {
		return
	}
	stats, ok := f.Tables.RangedWeapons[eq.EquippedName]
	if !ok {
		return
	}
	x, okX := local.X()
	y, okY := local.Y()
	if !okX || !okY {
		return
	}
	sx, sy := f.WorldToScreen(x, y)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(stats.WeaponRange), 1, ringCol, true)
}

// drawProgressArc paints a circular progress indicator as a backing ring
// plus filled segment dots up to progress
func drawProgressArc(screen *ebiten.Image, cx, cy, radius float32, progress float64) {
	vector.StrokeCircle(screen, cx, cy, radius, 3, arcBack, true)
	if progress <= 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	const segments = 24
	filled := int(progress * segments)
	for i := 0; i < filled; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/segments
		px := cx + radius*float32(math.Cos(a))
		py := cy + radius*float32(math.Sin(a))
		vector.DrawFilledCircle(screen, px, py, 2, arcFill, true)
	}
}
