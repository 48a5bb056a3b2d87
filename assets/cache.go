package assets

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Cache loads sprite images asynchronously and serves them by name. Loads
// happen off the hot path; the render loop only ever does a map lookup and
// a readiness check. A failed or incomplete image yields nil and the
// caller draws nothing instead of crashing the frame
type Cache struct {
	mu      sync.RWMutex
	images  map[string]*ebiten.Image
	loading map[string]bool

	dir string
	log *logrus.Entry
}

// NewCache creates a cache rooted at dir
func NewCache(dir string, log *logrus.Logger) *Cache {
	return &Cache{
		images:  make(map[string]*ebiten.Image),
		loading: make(map[string]bool),
		dir:     dir,
		log:     log.WithField("component", "assets"),
	}
}

// Get returns the image for name when it is loaded with a non-zero natural
// size, else nil. A miss kicks off an async load exactly once
func (c *Cache) Get(name string) *ebiten.Image {
	c.mu.RLock()
	img, ok := c.images[name]
	c.mu.RUnlock()
	if ok {
		return img
	}

	c.mu.Lock()
	if c.loading[name] {
		c.mu.Unlock()
		return nil
	}
	c.loading[name] = true
	c.mu.Unlock()

	go c.load(name)
	return nil
}

func (c *Cache) load(name string) {
	path := filepath.Join(c.dir, name)
	f, err := os.Open(path)
	if err != nil {
		c.log.WithField("asset", name).WithError(err).Warn("asset open failed")
		return
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		c.log.WithField("asset", name).WithError(err).Warn("asset decode failed")
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		c.log.WithField("asset", name).Warn("asset has zero size")
		return
	}

	img := ebiten.NewImageFromImage(src)
	c.mu.Lock()
	c.images[name] = img
	c.mu.Unlock()
}
