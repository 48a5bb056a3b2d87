package view

import "github.com/lixenwraith/homestead/parameter"

// Bounds is an axis-aligned viewport rectangle in world coordinates,
// recomputed every frame from camera state and never persisted
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ComputeBounds derives the culling rectangle from the camera's top-left
// world offset and the canvas size, padded by the fixed buffer margin so
// entities do not pop in at the edges
func ComputeBounds(cameraX, cameraY, canvasW, canvasH float64) Bounds {
	buffer := float64(parameter.ViewBufferTiles) * parameter.TileSize
	return Bounds{
		MinX: cameraX - buffer,
		MinY: cameraY - buffer,
		MaxX: cameraX + canvasW + buffer,
		MaxY: cameraY + canvasH + buffer,
	}
}
