package render

import "github.com/hajimehoshi/ebiten/v2"

// Renderer is implemented by each compositor phase
type Renderer interface {
	Render(f *Frame, screen *ebiten.Image)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
