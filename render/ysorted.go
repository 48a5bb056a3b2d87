package render

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/parameter"
)

const (
	playerFrameW = 48
	playerFrameH = 64
)

// YSortedRenderer paints the depth-sorted layer: trees, stones, storage
// boxes, and players with the full pose model. It owns the movement
// tracker and the hover set; hover transitions go to onHover, which fires
// only on change
type YSortedRenderer struct {
	tracker *MovementTracker
	hover   *HoverSet
	rng     *rand.Rand
	onHover func(HoverChange)
}

// NewYSortedRenderer creates the Y-sorted phase. onHover may be nil
func NewYSortedRenderer(onHover func(HoverChange)) *YSortedRenderer {
	return &YSortedRenderer{
		tracker: NewMovementTracker(),
		hover:   NewHoverSet(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		onHover: onHover,
	}
}

// Render draws the layer in ascending Y order so lower entities occlude
// higher ones
func (y *YSortedRenderer) Render(f *Frame, screen *ebiten.Image) {
	visible := make(map[string]*entity.Record, len(f.Visible.Players))
	for _, r := range f.Visible.Players {
		visible[r.ID] = r
	}
	y.tracker.Prune(visible)

	for _, ch := range y.hover.Update(f.Visible.Players, f.MouseX, f.MouseY, f.MouseValid) {
		if y.onHover != nil {
			y.onHover(ch)
		}
	}

	for _, r := range f.Layers.YSorted {
		if entity.Classify(r) == entity.KindPlayer {
			y.renderPlayer(f, screen, r)
			continue
		}
		wx, okX := r.X()
		wy, okY := r.Y()
		if !okX || !okY {
			continue
		}
		sx, sy := f.WorldToScreen(wx, wy)
		img := f.Assets.Get(spriteName(r, f.Tables))
		if img == nil {
			continue
		}
		// Bottom-anchored so the sprite's foot sits on its world Y
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx-float64(b.Dx())/2, sy-float64(b.Dy()))
		screen.DrawImage(img, op)
	}
}

func (y *YSortedRenderer) renderPlayer(f *Frame, screen *ebiten.Image, r *entity.Record) {
	wx, okX := r.X()
	wy, okY := r.Y()
	if !okX || !okY {
		return
	}
	sx, sy := f.WorldToScreen(wx, wy)

	moved := y.tracker.Moved(r.ID, wx, wy)
	pose := PoseFor(r, f.Now, moved, y.rng)

	// Shadow first, correlated with jump height
	shadowW := float32(playerFrameW) * 0.4 * float32(pose.ShadowScale)
	shadowCol := color.RGBA{A: uint8(90 * pose.ShadowAlpha)}
	vector.DrawFilledCircle(screen, float32(sx), float32(sy+4), shadowW, shadowCol, true)

	equipBehind := pose.Row == parameter.SpriteRowLeft || pose.Row == parameter.SpriteRowUp
	if equipBehind {
		y.renderEquipment(f, screen, r, sx, sy, pose)
	}

	sheet := f.Assets.Get("player_sheet.png")
	if sheet != nil {
		sub := sheet.SubImage(image.Rect(
			pose.Frame*playerFrameW, pose.Row*playerFrameH,
			(pose.Frame+1)*playerFrameW, (pose.Row+1)*playerFrameH,
		)).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		if pose.Dead {
			op.GeoM.Translate(-playerFrameW/2, -playerFrameH/2)
			op.GeoM.Rotate(pose.Rotation)
			op.GeoM.Translate(playerFrameW/2, playerFrameH/2)
		}
		op.GeoM.Translate(
			sx-playerFrameW/2+pose.OffsetX,
			sy-playerFrameH+pose.OffsetY-pose.JumpOffset,
		)
		screen.DrawImage(sub, op)
	}

	if !equipBehind {
		y.renderEquipment(f, screen, r, sx, sy, pose)
	}

	y.renderNameTag(f, screen, r, sx, sy)
}

// renderEquipment draws the held item. Behind the body when facing left or
// up, in front when facing right or down
func (y *YSortedRenderer) renderEquipment(f *Frame, screen *ebiten.Image, r *entity.Record, sx, sy float64, pose Pose) {
	if pose.Dead || r.Identity == nil {
		return
	}
	eq, ok := f.Tables.ActiveEquipments[*r.Identity]
	if !ok || eq.EquippedDefID == nil {
		return
	}
	def, ok := f.Tables.ItemDefinitions[*eq.EquippedDefID]
	if !ok || def.AssetName == "" {
		return
	}
	dx := 14.0
	if pose.Row == parameter.SpriteRowLeft {
		dx = -14.0
	}
	drawCentered(screen, f.Assets.Get(def.AssetName), sx+dx, sy-playerFrameH/2-pose.JumpOffset)
}

// renderNameTag draws the username above alive players that are hovered
func (y *YSortedRenderer) renderNameTag(f *Frame, screen *ebiten.Image, r *entity.Record, sx, sy float64) {
	if r.IsDead != nil && *r.IsDead {
		return
	}
	if !y.hover.Hovered(r.ID) {
		return
	}
	name := r.ID
	if r.Username != nil {
		name = *r.Username
	}
	ebitenutil.DebugPrintAt(screen, name, int(sx)-len(name)*3, int(sy)-playerFrameH-14)
}
