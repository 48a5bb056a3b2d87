package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// PlacementRenderer draws the ghost of the item about to be placed at the
// mouse world position, tinted red when out of range, plus the optional
// placement error string
type PlacementRenderer struct{}

// NewPlacementRenderer creates the placement phase
func NewPlacementRenderer() *PlacementRenderer {
	return &PlacementRenderer{}
}

// Render draws nothing unless a placement is in progress
func (p *PlacementRenderer) Render(f *Frame, screen *ebiten.Image) {
	pl := f.Placement
	if pl == nil {
		return
	}

	sx, sy := f.WorldToScreen(pl.WorldX, pl.WorldY)

	def, ok := f.Tables.ItemDefinitions[pl.ItemDefID]
	if ok {
		if img := f.Assets.Get(def.AssetName); img != nil {
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sx-float64(b.Dx())/2, sy-float64(b.Dy())/2)
			op.ColorScale.ScaleAlpha(0.6)
			if pl.TooFar {
				op.ColorScale.Scale(1, 0.4, 0.4, 1)
			}
			screen.DrawImage(img, op)
		}
	}

	if pl.TooFar {
		ebitenutil.DebugPrintAt(screen, "Too far away", int(sx)-36, int(sy)+24)
	}
	if pl.Error != "" {
		ebitenutil.DebugPrintAt(screen, pl.Error, int(sx)-len(pl.Error)*3, int(sy)+38)
	}
}
