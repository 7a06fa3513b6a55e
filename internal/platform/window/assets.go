package window

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Images loads layer images on first use. Paths that fail to load are
// remembered and drawn as tinted rectangles instead.
type Images struct {
	root   string
	cache  map[string]*ebiten.Image
	failed map[string]bool
	logger *log.Logger
}

// NewImages creates a loader for paths relative to root.
func NewImages(root string, logger *log.Logger) *Images {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Images{
		root:   root,
		cache:  make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
		logger: logger,
	}
}

// Get returns the image at path, or nil if it cannot be loaded.
func (i *Images) Get(path string) *ebiten.Image {
	if path == "" || i.failed[path] {
		return nil
	}
	if img, ok := i.cache[path]; ok {
		return img
	}

	full := path
	if !filepath.IsAbs(path) {
		full = filepath.Join(i.root, path)
	}
	img, _, err := ebitenutil.NewImageFromFile(full)
	if err != nil {
		i.failed[path] = true
		i.logger.Warn("image not loaded, drawing tint", "path", full, "err", err)
		return nil
	}
	i.cache[path] = img
	return img
}
