// ttyview is a diagnostic terminal viewer: it connects to the replication
// service and renders the entity tables as glyphs on a tcell screen.
// Useful for checking classification and culling without GPU output
package main

import (
	"flag"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/homestead/entity"
	"github.com/lixenwraith/homestead/network"
	"github.com/lixenwraith/homestead/parameter"
	"github.com/lixenwraith/homestead/snapshot"
	"github.com/lixenwraith/homestead/view"
)

// glyphs per kind
var glyphs = map[entity.Kind]rune{
	entity.KindPlayer:      '@',
	entity.KindTree:        'T',
	entity.KindStone:       'o',
	entity.KindCampfire:    '&',
	entity.KindMushroom:    'm',
	entity.KindCorn:        'c',
	entity.KindDroppedItem: '*',
	entity.KindStorageBox:  '#',
	entity.KindSleepingBag: '=',
}

func main() {
	url := flag.String("url", "ws://localhost:3000/replica", "replication endpoint")
	name := flag.String("name", "ttyview", "player name for the handshake")
	flag.Parse()

	log := logrus.New()

	store := snapshot.NewStore()
	client := network.NewClient(*url, *name, store, log)
	if err := client.Connect(); err != nil {
		log.WithError(err).Fatal("connect failed")
	}
	defer client.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("screen init failed")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("screen init failed")
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			draw(screen, store, client.Identity())
		}
	}
}

// draw maps one terminal cell per world tile, centered on the local player
func draw(screen tcell.Screen, store *snapshot.Store, localID string) {
	screen.Clear()
	w, h := screen.Size()

	t := store.View()
	var cx, cy float64
	if local, ok := t.Players[localID]; ok {
		cx, _ = local.X()
		cy, _ = local.Y()
	}

	cameraX := cx - float64(w)/2*parameter.TileSize
	cameraY := cy - float64(h)/2*parameter.TileSize
	bounds := view.ComputeBounds(cameraX, cameraY,
		float64(w)*parameter.TileSize, float64(h)*parameter.TileSize)
	visible := view.Collect(t, bounds)

	style := tcell.StyleDefault
	for _, r := range visible.ByID {
		kind := entity.Classify(r)
		g, ok := glyphs[kind]
		if !ok {
			continue
		}
		x, _ := r.X()
		y, _ := r.Y()
		col := int((x - cameraX) / parameter.TileSize)
		row := int((y - cameraY) / parameter.TileSize)
		if col < 0 || col >= w || row < 0 || row >= h {
			continue
		}
		s := style
		if kind == entity.KindCampfire && r.IsBurning != nil && *r.IsBurning {
			s = s.Foreground(tcell.ColorOrange)
		}
		if r.ID == localID {
			s = s.Foreground(tcell.ColorAqua).Bold(true)
		}
		screen.SetContent(col, row, g, nil, s)
	}
	screen.Show()
}
