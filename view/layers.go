package view

import (
	"sort"

	"github.com/lixenwraith/homestead/entity"
)

// Layers are the two paint-order partitions. Ground entities are flat and
// draw in collection order; the Y-sorted layer draws ascending by world Y
// so entities lower on screen paint over entities above them
type Layers struct {
	Ground  []*entity.Record
	YSorted []*entity.Record
}

// SplitLayers partitions the visible set and depth-sorts the Y layer.
// The sort is stable: entities sharing a Y keep their relative order
// between frames, which prevents flicker
func SplitLayers(v *Visible) Layers {
	var l Layers

	groundLen := len(v.Mushrooms) + len(v.Corn) + len(v.DroppedItems) +
		len(v.Campfires) + len(v.SleepingBags)
	l.Ground = make([]*entity.Record, 0, groundLen)
	l.Ground = append(l.Ground, v.Mushrooms...)
	l.Ground = append(l.Ground, v.Corn...)
	l.Ground = append(l.Ground, v.DroppedItems...)
	l.Ground = append(l.Ground, v.Campfires...)
	l.Ground = append(l.Ground, v.SleepingBags...)

	sortedLen := len(v.Players) + len(v.Trees) + len(v.Stones) + len(v.StorageBoxes)
	l.YSorted = make([]*entity.Record, 0, sortedLen)
	l.YSorted = append(l.YSorted, v.Players...)
	l.YSorted = append(l.YSorted, v.Trees...)
	l.YSorted = append(l.YSorted, v.Stones...)
	l.YSorted = append(l.YSorted, v.StorageBoxes...)

	sort.SliceStable(l.YSorted, func(i, j int) bool {
		return l.YSorted[i].SortY() < l.YSorted[j].SortY()
	})
	return l
}
