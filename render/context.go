package render

import (
	"time"

	"github.com/lixenwraith/homestead/assets"
	"github.com/lixenwraith/homestead/particle"
	"github.com/lixenwraith/homestead/snapshot"
	"github.com/lixenwraith/homestead/view"
)

// PlacementState describes the item ghost the local player is about to
// place. Nil means no placement is in progress
type PlacementState struct {
	ItemDefID uint64
	WorldX    float64
	WorldY    float64

	// TooFar flags the ghost red when the spot is beyond interaction range
	TooFar bool

	// Error is the optional placement failure string from the last attempt
	Error string
}

// Frame is the per-frame state handed to every renderer, passed by value.
// Renderers read it and the canvas; they never write back
type Frame struct {
	Now time.Time

	// Camera top-left in world coordinates
	CameraX, CameraY float64

	// Canvas size in pixels
	ScreenW, ScreenH int

	// Mouse position in world coordinates; Valid is false when the pointer
	// has left the canvas
	MouseX, MouseY float64
	MouseValid     bool

	// LocalID is the local player's identity
	LocalID string

	Tables    snapshot.Tables
	Bounds    view.Bounds
	Visible   *view.Visible
	Layers    view.Layers
	Particles []particle.Particle
	Placement *PlacementState

	Assets *assets.Cache
}

// WorldToScreen converts world coordinates to canvas pixels under the
// current camera offset
func (f *Frame) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx - f.CameraX, wy - f.CameraY
}
