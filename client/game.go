package client

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/homestead/assets"
	"github.com/lixenwraith/homestead/audio"
	"github.com/lixenwraith/homestead/config"
	"github.com/lixenwraith/homestead/network"
	"github.com/lixenwraith/homestead/parameter"
	"github.com/lixenwraith/homestead/particle"
	"github.com/lixenwraith/homestead/render"
	"github.com/lixenwraith/homestead/snapshot"
	"github.com/lixenwraith/homestead/view"
)

// Game is the ebiten application: Update drives input and intents on the
// display-refresh loop, Draw runs the frame pipeline. The particle engine
// runs its own wall-clock loop; the two are not synchronized and a frame
// may observe zero or several particle ticks
type Game struct {
	cfg   config.Config
	log   *logrus.Logger
	store *snapshot.Store
	net   *network.Client
	cache *assets.Cache

	compositor *render.Compositor
	particles  *particle.Engine
	crackle    *audio.Crackle
	minimap    *render.MinimapRenderer

	input     inputState
	placement *render.PlacementState
	hold      *render.HoldState

	// camera top-left, follows the local player
	cameraX, cameraY float64

	// particle buffer reused across frames
	particleBuf []particle.Particle

	// latest visible set, shared with the particle source function; the
	// engine's loop reads it under the store's happy path of whole-value
	// swaps guarded by this tiny accessor
	lastVisible atomicVisible
}

// NewGame wires the client together. Network connection and the particle
// loop are started here; teardown happens in Shutdown
func NewGame(cfg config.Config, log *logrus.Logger) (*Game, error) {
	store := snapshot.NewStore()

	g := &Game{
		cfg:     cfg,
		log:     log,
		store:   store,
		cache:   assets.NewCache(cfg.AssetDir, log),
		crackle: audio.NewCrackle(),
	}

	g.net = network.NewClient(cfg.ServerURL, cfg.PlayerName, store, log)
	if err := g.net.Connect(); err != nil {
		return nil, err
	}

	g.particles = particle.NewEngine(g.campfireSources)
	g.particles.Start()

	if cfg.Audio {
		if err := g.crackle.Start(); err != nil {
			log.WithError(err).Warn("audio unavailable")
		}
	}

	g.minimap = render.NewMinimapRenderer(cfg.Minimap)

	c := render.NewCompositor()
	c.Register(render.NewBackgroundRenderer(), render.PriorityBackground)
	c.Register(render.NewGroundRenderer(), render.PriorityGround)
	c.Register(render.NewYSortedRenderer(func(ch render.HoverChange) {
		log.WithFields(logrus.Fields{"player": ch.PlayerID, "hovered": ch.Hovered}).Debug("hover change")
	}), render.PriorityYSorted)
	c.Register(render.NewParticleRenderer(), render.PriorityParticles)
	c.Register(render.NewLabelRenderer(), render.PriorityLabels)
	c.Register(render.NewPlacementRenderer(), render.PriorityPlacement)
	c.Register(render.NewNightMaskRenderer(), render.PriorityNightMask)
	c.Register(render.NewIndicatorRenderer(func() *render.HoldState { return g.hold }), render.PriorityIndicators)
	c.Register(render.NewLightRenderer(), render.PriorityLights)
	c.Register(g.minimap, render.PriorityMinimap)
	g.compositor = c

	return g, nil
}

// Shutdown cancels both loops and the socket. Must run before exit so no
// callback fires into freed state
func (g *Game) Shutdown() {
	g.particles.Stop()
	g.crackle.Stop()
	g.net.Close()
}

// campfireSources derives the particle emission inputs from the last
// computed visible set. Runs on the particle engine's loop
func (g *Game) campfireSources() []particle.CampfireSource {
	v := g.lastVisible.load()
	if v == nil {
		return nil
	}
	t := g.store.View()

	sources := make([]particle.CampfireSource, 0, len(v.Campfires))
	for _, r := range v.Campfires {
		x, okX := r.X()
		y, okY := r.Y()
		if !okX || !okY {
			continue
		}
		src := particle.CampfireSource{
			ID:      r.ID,
			X:       x,
			Y:       y,
			Burning: r.IsBurning != nil && *r.IsBurning,
		}
		if src.Burning {
			for _, p := range t.Players {
				px, okPX := p.X()
				py, okPY := p.Y()
				if !okPX || !okPY {
					continue
				}
				dx, dy := px-x, py-y
				if dx*dx+dy*dy <= parameter.CampfireHotZoneRadius*parameter.CampfireHotZoneRadius {
					src.PlayerInHotZone = true
					break
				}
			}
		}
		sources = append(sources, src)
	}
	return sources
}

// Update advances input and intent dispatch once per display refresh
func (g *Game) Update() error {
	g.handleInput()
	g.followCamera()

	// Audio gate: any visible burning campfire
	if v := g.lastVisible.load(); v != nil {
		burning := false
		for _, r := range v.Campfires {
			if r.IsBurning != nil && *r.IsBurning {
				burning = true
				break
			}
		}
		g.crackle.SetBurning(burning)
	}

	// Drain the latest placement failure into the preview
	select {
	case msg := <-g.net.PlacementError:
		if g.placement != nil {
			g.placement.Error = msg
		}
	default:
	}
	return nil
}

// followCamera centers the viewport on the local player
func (g *Game) followCamera() {
	t := g.store.View()
	local, ok := t.Players[g.net.Identity()]
	if !ok {
		return
	}
	x, okX := local.X()
	y, okY := local.Y()
	if !okX || !okY {
		return
	}
	g.cameraX = math.Round(x - float64(g.cfg.WindowW)/2)
	g.cameraY = math.Round(y - float64(g.cfg.WindowH)/2)
}

// Draw runs the frame pipeline: cull, split, sort, composite
func (g *Game) Draw(screen *ebiten.Image) {
	t := g.store.View()
	bounds := view.ComputeBounds(g.cameraX, g.cameraY, float64(g.cfg.WindowW), float64(g.cfg.WindowH))
	visible := view.Collect(t, bounds)
	g.lastVisible.store(visible)
	layers := view.SplitLayers(visible)

	g.particleBuf = g.particles.Snapshot(g.particleBuf)

	mx, my := ebiten.CursorPosition()
	mouseValid := mx >= 0 && my >= 0 && mx < g.cfg.WindowW && my < g.cfg.WindowH

	f := render.Frame{
		Now:        time.Now(),
		CameraX:    g.cameraX,
		CameraY:    g.cameraY,
		ScreenW:    g.cfg.WindowW,
		ScreenH:    g.cfg.WindowH,
		MouseX:     g.cameraX + float64(mx),
		MouseY:     g.cameraY + float64(my),
		MouseValid: mouseValid,
		LocalID:    g.net.Identity(),
		Tables:     t,
		Bounds:     bounds,
		Visible:    visible,
		Layers:     layers,
		Particles:  g.particleBuf,
		Placement:  g.placement,
		Assets:     g.cache,
	}
	g.compositor.RenderFrame(&f, screen)
}

// Layout reports the fixed logical canvas size
func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}
