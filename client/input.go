package client

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
	"github.com/lixenwraith/homestead/render"
	"github.com/lixenwraith/homestead/view"
)

// inputState carries per-frame input bookkeeping so intents dispatch only
// on change, not every refresh
type inputState struct {
	lastDX, lastDY float64
	lastDir        string
	sprinting      bool

	holdTarget string
	holdStart  time.Time

	equippedSlot int // -1 = none
}

// handleInput translates device state into fire-and-forget intents
func (g *Game) handleInput() {
	g.handleMovement()
	g.handleActions()
	g.handleHold()
	g.handlePlacement()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.minimap.SetEnabled(!g.minimap.IsVisible())
	}
}

func (g *Game) handleMovement() {
	var dx, dy float64
	dir := g.input.lastDir

	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
		dir = "left"
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
		dir = "right"
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
		dir = "up"
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
		dir = "down"
	}

	if dx != g.input.lastDX || dy != g.input.lastDY || dir != g.input.lastDir {
		g.net.UpdateInput(dx, dy, dir)
		g.input.lastDX, g.input.lastDY, g.input.lastDir = dx, dy, dir
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.net.Jump()
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if shift != g.input.sprinting {
		g.net.SetSprinting(shift)
		g.input.sprinting = shift
	}
}

func (g *Game) handleActions() {
	t := g.store.View()
	local, hasLocal := t.Players[g.net.Identity()]

	if hasLocal && local.IsDead != nil && *local.IsDead {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.net.Respawn()
		}
		return
	}

	// Hotbar 1..6: equip, or unequip when the slot is already held
	for slot, key := range hotbarKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if g.input.equippedSlot == slot {
			g.net.UnequipItem()
			g.input.equippedSlot = -1
			continue
		}
		if item, ok := g.hotbarItem(slot); ok {
			g.net.EquipItem(item)
			g.input.equippedSlot = slot
		}
	}

	// C consumes the first consumable stack
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if item, ok := g.firstByCategory("Consumable"); ok {
			g.net.ConsumeItem(item)
		}
	}
}

var hotbarKeys = map[int]ebiten.Key{
	0: ebiten.KeyDigit1,
	1: ebiten.KeyDigit2,
	2: ebiten.KeyDigit3,
	3: ebiten.KeyDigit4,
	4: ebiten.KeyDigit5,
	5: ebiten.KeyDigit6,
}

// hotbarItem finds the local player's stack in a hotbar slot
func (g *Game) hotbarItem(slot int) (uint64, bool) {
	t := g.store.View()
	id := g.net.Identity()
	for _, item := range t.InventoryItems {
		if item.PlayerIdentity == id && item.HotbarSlot != nil && *item.HotbarSlot == slot {
			return item.InstanceID, true
		}
	}
	return 0, false
}

// firstByCategory finds the local player's first stack of a category
func (g *Game) firstByCategory(category string) (uint64, bool) {
	t := g.store.View()
	id := g.net.Identity()
	for _, item := range t.InventoryItems {
		if item.PlayerIdentity != id {
			continue
		}
		if def, ok := t.ItemDefinitions[item.ItemDefID]; ok && def.Category == category {
			return item.InstanceID, true
		}
	}
	return 0, false
}

// nearestHoldTarget picks the closest in-range entity that takes a hold
// interaction: storage boxes and sleeping bags
func nearestHoldTarget(px, py float64, v *view.Visible) *entity.Record {
	var target *entity.Record
	bestDist := parameter.InteractionRangeSq
	scan := func(group []*entity.Record) {
		for _, r := range group {
			x, okX := r.X()
			y, okY := r.Y()
			if !okX || !okY {
				continue
			}
			dx, dy := x-px, y-py
			if d := dx*dx + dy*dy; d <= bestDist {
				bestDist = d
				target = r
			}
		}
	}
	scan(v.StorageBoxes)
	scan(v.SleepingBags)
	return target
}

// handleHold runs the hold-to-interact state machine against the nearest
// storage box or sleeping bag. Releasing early cancels; completion
// quick-moves the first inventory stack into a box, or binds the respawn
// point to a bag
func (g *Game) handleHold() {
	v := g.lastVisible.load()
	if v == nil {
		return
	}
	t := g.store.View()
	local, ok := t.Players[g.net.Identity()]
	if !ok {
		g.hold = nil
		return
	}
	px, okX := local.X()
	py, okY := local.Y()
	if !okX || !okY {
		g.hold = nil
		return
	}

	if !ebiten.IsKeyPressed(ebiten.KeyE) {
		g.input.holdTarget = ""
		g.hold = nil
		return
	}

	target := nearestHoldTarget(px, py, v)
	if target == nil {
		g.input.holdTarget = ""
		g.hold = nil
		return
	}

	if g.input.holdTarget != target.ID {
		g.input.holdTarget = target.ID
		g.input.holdStart = time.Now()
	}

	progress := time.Since(g.input.holdStart).Seconds() / parameter.HoldInteractSeconds
	if progress >= 1 {
		switch entity.Classify(target) {
		case entity.KindSleepingBag:
			g.net.SetSpawn(target.ID)
		case entity.KindStorageBox:
			id := g.net.Identity()
			for _, item := range g.store.View().InventoryItems {
				if item.PlayerIdentity == id {
					g.net.QuickMoveToBox(target.ID, item.InstanceID)
					break
				}
			}
		}
		g.input.holdTarget = ""
		g.hold = nil
		return
	}
	g.hold = &render.HoldState{TargetID: target.ID, Progress: progress}
}

// handlePlacement runs the placement preview: P starts placing the first
// placeable stack, the ghost follows the mouse, click commits, escape
// cancels
func (g *Game) handlePlacement() {
	if g.placement == nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			if item, ok := g.firstPlaceableDef(); ok {
				g.net.StartPlacement(item)
				g.placement = &render.PlacementState{ItemDefID: item}
			}
		}
		return
	}

	mx, my := ebiten.CursorPosition()
	g.placement.WorldX = g.cameraX + float64(mx)
	g.placement.WorldY = g.cameraY + float64(my)

	t := g.store.View()
	if local, ok := t.Players[g.net.Identity()]; ok {
		if px, okX := local.X(); okX {
			if py, okY := local.Y(); okY {
				dx := g.placement.WorldX - px
				dy := g.placement.WorldY - py
				g.placement.TooFar = dx*dx+dy*dy > parameter.InteractionRangeSq
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.net.CancelPlacement()
		g.placement = nil
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.placement.TooFar {
		g.net.PlaceItem(g.placement.ItemDefID, g.placement.WorldX, g.placement.WorldY)
		g.placement = nil
	}
}

// firstPlaceableDef finds the item definition of the local player's first
// placeable stack
func (g *Game) firstPlaceableDef() (uint64, bool) {
	t := g.store.View()
	id := g.net.Identity()
	for _, item := range t.InventoryItems {
		if item.PlayerIdentity != id {
			continue
		}
		if def, ok := t.ItemDefinitions[item.ItemDefID]; ok && def.Category == "Placeable" {
			return def.ID, true
		}
	}
	return 0, false
}
