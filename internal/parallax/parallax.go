// Package parallax implements the infinite background scroller.
//
// Each layer pre-spawns a fixed number of tiles. Tiles are not translated
// every tick; a tile only jumps when its distance from the player leaves the
// layer's transition band (viewport width times the transition factor).
// Layer records live in an arena and tiles refer to them by index.
package parallax

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// ErrInvalidLayer is returned when a layer set cannot scroll correctly.
var ErrInvalidLayer = errors.New("parallax: invalid layer")

// Policy selects how far a tile jumps when it leaves the band.
type Policy int

const (
	// Nudge shifts the tile by the layer speed times the global speed.
	Nudge Policy = iota
	// Wrap shifts the tile by the full span of its layer (count tile widths),
	// which keeps the layer continuous.
	Wrap
)

// String returns the policy name as used in configuration.
func (p Policy) String() string {
	switch p {
	case Nudge:
		return "nudge"
	case Wrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "nudge", "":
		return Nudge, nil
	case "wrap":
		return Wrap, nil
	default:
		return Nudge, fmt.Errorf("parallax: unknown recycle policy %q", s)
	}
}

// Layer is one background layer. It is read-only after setup.
type Layer struct {
	Name             string
	Speed            core.Vec2 // scroll ratio relative to the global speed
	Path             string    // opaque asset path
	TileSize         core.Vec2 // unscaled tile size
	Scale            float64
	Z                float64
	Position         core.Vec2 // centre of the first tile
	TransitionFactor float64   // band half width as a fraction of viewport width
	Tint             core.RGBA // fallback colour when the image is not drawn
}

// TileWidth returns the rendered tile width.
func (l Layer) TileWidth() float64 {
	return l.TileSize.X * l.Scale
}

// TileHeight returns the rendered tile height.
func (l Layer) TileHeight() float64 {
	return l.TileSize.Y * l.Scale
}

// Resource aggregates the layers with the per-layer tile count and the
// global speed scalar.
type Resource struct {
	Layers      []Layer
	Count       int
	GlobalSpeed float64
}

// Tile is one rendered copy of a layer. Its position is the only mutable state.
type Tile struct {
	Layer    int // index into the layer arena
	Position core.Vec2
}

// Engine holds the layer arena and the tile instances.
type Engine struct {
	layers      []Layer
	tiles       []Tile
	count       int
	globalSpeed float64
	viewport    core.Vec2
	policy      Policy
	recycles    int
	logger      *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy sets the recycle policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New validates the resource and spawns Count tiles per layer, laid out
// edge to edge from the layer's origin. Layers are ordered back to front
// by Z. Validation failures wrap ErrInvalidLayer.
func New(res Resource, viewport core.Vec2, opts ...Option) (*Engine, error) {
	if err := Validate(res, viewport); err != nil {
		return nil, err
	}

	layers := make([]Layer, len(res.Layers))
	copy(layers, res.Layers)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Z < layers[j].Z })

	e := &Engine{
		layers:      layers,
		tiles:       make([]Tile, 0, len(layers)*res.Count),
		count:       res.Count,
		globalSpeed: res.GlobalSpeed,
		viewport:    viewport,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	for li, l := range layers {
		for i := 0; i < res.Count; i++ {
			pos := l.Position
			pos.X += float64(i) * l.TileWidth()
			e.tiles = append(e.tiles, Tile{Layer: li, Position: pos})
		}
	}
	e.logger.Debug("parallax ready", "layers", len(layers), "tiles", len(e.tiles), "policy", e.policy)
	return e, nil
}

// Validate checks that every layer can be tiled across the viewport.
func Validate(res Resource, viewport core.Vec2) error {
	if len(res.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidLayer)
	}
	if res.Count <= 0 {
		return fmt.Errorf("%w: tile count %d, expected at least 1", ErrInvalidLayer, res.Count)
	}
	if !(viewport.X > 0) {
		return fmt.Errorf("%w: viewport width %v", ErrInvalidLayer, viewport.X)
	}
	for i, l := range res.Layers {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if !(l.TileSize.X > 0) || !(l.TileSize.Y > 0) {
			return fmt.Errorf("%w: layer %s: tile size %vx%v", ErrInvalidLayer, name, l.TileSize.X, l.TileSize.Y)
		}
		if !(l.Scale > 0) {
			return fmt.Errorf("%w: layer %s: scale %v", ErrInvalidLayer, name, l.Scale)
		}
		if !(l.TransitionFactor > 0) {
			return fmt.Errorf("%w: layer %s: transition factor %v", ErrInvalidLayer, name, l.TransitionFactor)
		}
		if math.IsNaN(l.Speed.X) || math.IsInf(l.Speed.X, 0) {
			return fmt.Errorf("%w: layer %s: speed %v", ErrInvalidLayer, name, l.Speed.X)
		}
		if cover := float64(res.Count) * l.TileWidth(); cover < viewport.X {
			return fmt.Errorf("%w: layer %s: %d tiles cover %v, viewport is %v",
				ErrInvalidLayer, name, res.Count, cover, viewport.X)
		}
	}
	return nil
}

// SetGlobalSpeed changes the global speed scalar.
func (e *Engine) SetGlobalSpeed(v float64) {
	e.globalSpeed = v
}

// GlobalSpeed returns the global speed scalar.
func (e *Engine) GlobalSpeed() float64 {
	return e.globalSpeed
}

// Policy returns the recycle policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Band returns the recycle band half width of layer i.
func (e *Engine) Band(i int) float64 {
	return e.viewport.X * e.layers[i].TransitionFactor
}

// Edge returns the signed distance used by the recycle rule for a tile.
func (e *Engine) Edge(t Tile, playerX float64) float64 {
	return playerX - t.Position.X + e.layers[t.Layer].TileWidth()/2
}

// Update runs one tick of the recycle rule for every tile and returns the
// number of tiles that moved. With edge = playerX - tile.x + tile_width/2
// and band = viewport_width * transition_factor, a tile moves back when
// edge < -band, moves forward when edge > band, and stays put otherwise.
// Both comparisons are strict.
func (e *Engine) Update(playerX float64) int {
	moved := 0
	for i := range e.tiles {
		t := &e.tiles[i]
		band := e.Band(t.Layer)
		edge := e.Edge(*t, playerX)

		var dir float64
		switch {
		case edge < -band:
			dir = -1
		case edge > band:
			dir = 1
		default:
			continue
		}

		shift := dir * e.step(t.Layer)
		if shift == 0 {
			continue
		}
		t.Position.X += shift
		moved++
		e.logger.Debug("tile recycled", "layer", e.layers[t.Layer].Name, "tile", i, "edge", edge, "shift", shift)
	}
	e.recycles += moved
	return moved
}

// step returns the unsigned jump for a tile of layer li.
func (e *Engine) step(li int) float64 {
	l := e.layers[li]
	if e.policy == Wrap {
		return float64(e.count) * l.TileWidth()
	}
	return l.Speed.X * e.globalSpeed
}

// Recycles returns the total number of recycle events so far.
func (e *Engine) Recycles() int {
	return e.recycles
}

// Layers returns the layer arena ordered back to front.
func (e *Engine) Layers() []Layer {
	return e.layers
}

// Layer returns layer i.
func (e *Engine) Layer(i int) Layer {
	return e.layers[i]
}

// Count returns the number of tiles per layer.
func (e *Engine) Count() int {
	return e.count
}

// Tiles returns the tile instances grouped by layer, back to front.
func (e *Engine) Tiles() []Tile {
	return e.tiles
}

// TileRect returns the world rectangle covered by a tile.
func (e *Engine) TileRect(t Tile) core.Rect {
	l := e.layers[t.Layer]
	return core.Rect{Center: t.Position, HalfW: l.TileWidth() / 2, HalfH: l.TileHeight() / 2}
}
