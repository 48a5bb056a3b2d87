package view

import (
	"sort"

	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/snapshot"
)

// Visible holds the per-kind visible subsets for one frame, as both ordered
// slices and id-keyed maps. Slices are ordered by id so that downstream
// sorts see the same insertion order every frame regardless of map
// iteration order
type Visible struct {
	Players      []*entity.Record
	Trees        []*entity.Record
	Stones       []*entity.Record
	Campfires    []*entity.Record
	Mushrooms    []*entity.Record
	Corn         []*entity.Record
	DroppedItems []*entity.Record
	StorageBoxes []*entity.Record
	SleepingBags []*entity.Record

	ByID map[string]*entity.Record
}

// alive is the kind-specific liveness predicate: depleted resources and
// respawning harvestables are replicated but must not render
func alive(r *entity.Record) bool {
	switch entity.Classify(r) {
	case entity.KindTree, entity.KindStone:
		return r.Health != nil && *r.Health > 0
	case entity.KindMushroom, entity.KindCorn:
		// Suppress while a respawn timestamp is present, even if it is
		// already past; the server owns clearing it
		return r.RespawnAt == nil
	}
	return true
}

// collect filters one table to its visible, live members in id order
func collect(table map[string]*entity.Record, b Bounds, byID map[string]*entity.Record) []*entity.Record {
	if len(table) == 0 {
		return nil
	}
	out := make([]*entity.Record, 0, len(table))
	for _, r := range table {
		if alive(r) && InView(r, b) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for _, r := range out {
		byID[r.ID] = r
	}
	return out
}

// Collect computes the visible sets for a frame from the replicated tables
// and the viewport bounds
func Collect(t snapshot.Tables, b Bounds) *Visible {
	v := &Visible{ByID: make(map[string]*entity.Record, 64)}
	v.Players = collect(t.Players, b, v.ByID)
	v.Trees = collect(t.Trees, b, v.ByID)
	v.Stones = collect(t.Stones, b, v.ByID)
	v.Campfires = collect(t.Campfires, b, v.ByID)
	v.Mushrooms = collect(t.Mushrooms, b, v.ByID)
	v.Corn = collect(t.Corn, b, v.ByID)
	v.DroppedItems = collect(t.DroppedItems, b, v.ByID)
	v.StorageBoxes = collect(t.StorageBoxes, b, v.ByID)
	v.SleepingBags = collect(t.SleepingBags, b, v.ByID)
	return v
}
