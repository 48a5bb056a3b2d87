package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

// LabelRenderer draws the interaction prompt for the nearest interactable
// of each kind within range of the local player
type LabelRenderer struct{}

// NewLabelRenderer creates the label phase
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

func labelFor(kind entity.Kind) string {
	switch kind {
	case entity.KindMushroom, entity.KindCorn:
		return "Press E to Harvest"
	case entity.KindDroppedItem:
		return "Press E to Pick Up"
	case entity.KindCampfire:
		return "Press E to Use"
	case entity.KindStorageBox:
		return "Hold E to Open"
	case entity.KindSleepingBag:
		return "Hold E to Sleep"
	}
	return ""
}

// nearestInRange returns the closest candidate within interaction range of
// (px, py), or nil
func nearestInRange(px, py float64, candidates []*entity.Record) *entity.Record {
	var best *entity.Record
	bestDist := parameter.InteractionRangeSq
	for _, r := range candidates {
		x, okX := r.X()
		y, okY := r.Y()
		if !okX || !okY {
			continue
		}
		dx, dy := x-px, y-py
		d := dx*dx + dy*dy
		if d <= bestDist {
			bestDist = d
			best = r
		}
	}
	return best
}

// Render finds the local player and prompts for each interactable kind
func (l *LabelRenderer) Render(f *Frame, screen *ebiten.Image) {
	local, ok := f.Tables.Players[f.LocalID]
	if !ok {
		return
	}
	px, okX := local.X()
	py, okY := local.Y()
	if !okX || !okY {
		return
	}

	groups := [][]*entity.Record{
		f.Visible.Mushrooms,
		f.Visible.Corn,
		f.Visible.DroppedItems,
		f.Visible.Campfires,
		f.Visible.StorageBoxes,
		f.Visible.SleepingBags,
	}
	for _, g := range groups {
		r := nearestInRange(px, py, g)
		if r == nil {
			continue
		}
		text := labelFor(entity.Classify(r))
		if text == "" {
			continue
		}
		x, _ := r.X()
		y, _ := r.Y()
		sx, sy := f.WorldToScreen(x, y)
		ebitenutil.DebugPrintAt(screen, text, int(sx)-len(text)*3, int(sy)-40)
	}
}
