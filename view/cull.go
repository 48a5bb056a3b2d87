package view

import (
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

// cullBox returns the approximate half extents for a kind. The boxes are
// fixed constants, not sprite-derived: the test runs for every replicated
// entity every frame and must stay O(1) with no allocation
func cullBox(kind entity.Kind) (halfW, halfH float64) {
	switch kind {
	case entity.KindPlayer:
		return parameter.CullBoxPlayerW / 2, parameter.CullBoxPlayerH / 2
	case entity.KindTree:
		return parameter.CullBoxTreeW / 2, parameter.CullBoxTreeH / 2
	case entity.KindStone:
		return parameter.CullBoxStoneW / 2, parameter.CullBoxStoneH / 2
	case entity.KindCampfire:
		return parameter.CullBoxCampfireW / 2, parameter.CullBoxCampfireH / 2
	case entity.KindMushroom, entity.KindCorn:
		return parameter.CullBoxHarvestW / 2, parameter.CullBoxHarvestH / 2
	case entity.KindDroppedItem:
		return parameter.CullBoxDroppedW / 2, parameter.CullBoxDroppedH / 2
	case entity.KindStorageBox:
		return parameter.CullBoxStorageW / 2, parameter.CullBoxStorageH / 2
	case entity.KindSleepingBag:
		return parameter.CullBoxBagW / 2, parameter.CullBoxBagH / 2
	}
	return 0, 0
}

// InView tests the entity's kind-specific box against the bounds rectangle.
// Unclassifiable or positionless records are not visible rather than an
// error. The overlap test uses strict inequalities, so an entity whose box
// edge exactly touches the bounds edge is excluded
func InView(r *entity.Record, b Bounds) bool {
	kind := entity.Classify(r)
	if kind == entity.KindUnknown {
		return false
	}

	x, okX := r.X()
	y, okY := r.Y()
	if !okX || !okY {
		return false
	}

	halfW, halfH := cullBox(kind)
	return x+halfW > b.MinX && x-halfW < b.MaxX &&
		y+halfH > b.MinY && y-halfH < b.MaxY
}
