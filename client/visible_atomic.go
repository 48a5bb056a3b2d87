package client

import (
	"sync/atomic"

	"github.com/lixenwraith/homestead/view"
)

// atomicVisible shares the last computed visible set between the render
// loop (writer) and the particle engine's loop (reader). The set itself is
// immutable once published
type atomicVisible struct {
	v atomic.Pointer[view.Visible]
}

func (a *atomicVisible) store(v *view.Visible) { a.v.Store(v) }
func (a *atomicVisible) load() *view.Visible   { return a.v.Load() }
