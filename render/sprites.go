package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/snapshot"
)

// spriteName resolves the asset file for a non-player entity. Dropped items
// resolve through their item definition
func spriteName(r *entity.Record, t snapshot.Tables) string {
	switch entity.Classify(r) {
	case entity.KindTree:
		if r.TreeType != nil {
			return fmt.Sprintf("tree_%s.png", *r.TreeType)
		}
		return "tree_oak.png"
	case entity.KindStone:
		return "stone.png"
	case entity.KindCampfire:
		if r.IsBurning != nil && *r.IsBurning {
			return "campfire_on.png"
		}
		return "campfire_off.png"
	case entity.KindMushroom:
		return "mushroom.png"
	case entity.KindCorn:
		return "corn.png"
	case entity.KindDroppedItem:
		if r.ItemDefID != nil {
			if def, ok := t.ItemDefinitions[*r.ItemDefID]; ok && def.AssetName != "" {
				return def.AssetName
			}
		}
		return "dropped_item.png"
	case entity.KindStorageBox:
		return "wooden_storage_box.png"
	case entity.KindSleepingBag:
		return "sleeping_bag.png"
	}
	return ""
}

// drawCentered paints img with its center at screen position (sx, sy).
// A nil image (not yet loaded, or failed) draws nothing
func drawCentered(screen, img *ebiten.Image, sx, sy float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx-float64(b.Dx())/2, sy-float64(b.Dy())/2)
	screen.DrawImage(img, op)
}
