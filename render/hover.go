package render

import (
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

// HoverChange reports one player transitioning into or out of mouse hover
type HoverChange struct {
	PlayerID string
	Hovered  bool
}

// HoverSet tracks which players the pointer is over and reports
// transitions only on change. Null pointer coordinates force everything to
// not-hovered
type HoverSet struct {
	hovered map[string]bool
}

// NewHoverSet creates an empty hover set
func NewHoverSet() *HoverSet {
	return &HoverSet{hovered: make(map[string]bool)}
}

// Update runs the circular hit test for every visible player against the
// pointer and returns only the transitions. mouseValid false (pointer left
// the canvas) un-hovers everything that was hovered
func (h *HoverSet) Update(players []*entity.Record, mouseX, mouseY float64, mouseValid bool) []HoverChange {
	var changes []HoverChange

	if !mouseValid {
		for id, was := range h.hovered {
			if was {
				h.hovered[id] = false
				changes = append(changes, HoverChange{PlayerID: id, Hovered: false})
			}
		}
		return changes
	}

	seen := make(map[string]struct{}, len(players))
	for _, r := range players {
		x, okX := r.X()
		y, okY := r.Y()
		if !okX || !okY {
			continue
		}
		seen[r.ID] = struct{}{}

		dx := mouseX - x
		dy := mouseY - y
		now := dx*dx+dy*dy <= parameter.HoverRadius*parameter.HoverRadius
		if now != h.hovered[r.ID] {
			h.hovered[r.ID] = now
			changes = append(changes, HoverChange{PlayerID: r.ID, Hovered: now})
		}
	}

	// Players that left the visible set stop being hovered
	for id, was := range h.hovered {
		if _, ok := seen[id]; !ok {
			if was {
				changes = append(changes, HoverChange{PlayerID: id, Hovered: false})
			}
			delete(h.hovered, id)
		}
	}
	return changes
}

// Hovered reports the current hover state for a player
func (h *HoverSet) Hovered(id string) bool {
	return h.hovered[id]
}
