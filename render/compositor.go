package render

import "github.com/hajimehoshi/ebiten/v2"

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Compositor coordinates the frame pipeline: renderers registered at fixed
// priorities execute in ascending order against the same canvas
type Compositor struct {
	renderers []rendererEntry
	regCount  int
}

// NewCompositor creates an empty compositor
func NewCompositor() *Compositor {
	return &Compositor{
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted
// order via insertion sort; equal priorities keep registration order
func (c *Compositor) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    c.regCount,
	}
	c.regCount++

	pos := len(c.renderers)
	for i, e := range c.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.renderers = append(c.renderers, rendererEntry{})
	copy(c.renderers[pos+1:], c.renderers[pos:])
	c.renderers[pos] = entry
}

// RenderFrame executes the pipeline for one frame
func (c *Compositor) RenderFrame(f *Frame, screen *ebiten.Image) {
	for _, entry := range c.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(f, screen)
	}
}
