package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lixenwraith/homestead/parameter"
)

// BackgroundRenderer tiles the ground texture across the visible tile
// range only, never the whole map
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates the background phase
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

var grassFill = color.RGBA{R: 0x3a, G: 0x5f, B: 0x2a, A: 0xff}

// Render clears the canvas and paints the visible tiles
func (b *BackgroundRenderer) Render(f *Frame, screen *ebiten.Image) {
	screen.Fill(grassFill)

	tile := f.Assets.Get("grass.png")
	if tile == nil {
		return
	}

	// Visible tile range from camera offset and canvas size
	startX := math.Floor(f.CameraX/parameter.TileSize) * parameter.TileSize
	startY := math.Floor(f.CameraY/parameter.TileSize) * parameter.TileSize
	endX := f.CameraX + float64(f.ScreenW)
	endY := f.CameraY + float64(f.ScreenH)

	tb := tile.Bounds()
	scaleX := parameter.TileSize / float64(tb.Dx())
	scaleY := parameter.TileSize / float64(tb.Dy())

	for wy := startY; wy < endY; wy += parameter.TileSize {
		for wx := startX; wx < endX; wx += parameter.TileSize {
			sx, sy := f.WorldToScreen(wx, wy)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(sx, sy)
			screen.DrawImage(tile, op)
		}
	}
}
