package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/homestead/parameter"
)

// NightMaskRenderer composites the day/night darkness over the whole
// canvas. Fully transparent frames skip the fill entirely
type NightMaskRenderer struct{}

// NewNightMaskRenderer creates the darkness phase
func NewNightMaskRenderer() *NightMaskRenderer {
	return &NightMaskRenderer{}
}

// Darkness maps cycle progress to mask alpha: zero through the day, rising
// through dusk to the midnight peak, falling through dawn. Full moons halve
// the peak
func Darkness(cycleProgress float64, fullMoon bool) float64 {
	// Day spans [0, 0.5), night [0.5, 1); midnight at 0.75
	if cycleProgress < 0.5 {
		return 0
	}
	phase := (cycleProgress - 0.5) / 0.5
	d := math.Sin(phase*math.Pi) * parameter.NightMaxDarkness
	if fullMoon {
		d *= 0.5
	}
	return d
}

// Render fills the canvas with the darkness alpha, short-circuiting when
// fully transparent
func (n *NightMaskRenderer) Render(f *Frame, screen *ebiten.Image) {
	d := Darkness(f.Tables.World.CycleProgress, f.Tables.World.IsFullMoon)
	if d <= 0 {
		return
	}
	a := uint8(255 * d)
	vector.DrawFilledRect(screen, 0, 0, float32(f.ScreenW), float32(f.ScreenH),
		color.RGBA{A: a}, false)
}
