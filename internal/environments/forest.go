// Package environments registers the built-in parallax presets.
package environments

import (
	"fmt"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
	"github.com/vovakirdan/parallax-runner/internal/registry"
)

// Forest tile size in source pixels.
const (
	ForestTileW = 928.0
	ForestTileH = 793.0
)

func init() {
	registry.Register("forest", func() registry.Environment { return Forest{} })
	registry.Register("meadow", func() registry.Environment { return Meadow{} })
}

func forestPath(name string) string {
	return fmt.Sprintf("environment/Layer_00%s.png", name)
}

// Forest is the five-layer woodland. The far layer scrolls against the
// others and the leaf floor sits in front of the player.
type Forest struct{}

// ID returns the environment identifier.
func (Forest) ID() string { return "forest" }

// Title returns the display name.
func (Forest) Title() string { return "Forest" }

// Layers returns the forest layers back to front.
func (Forest) Layers() []parallax.Layer {
	tile := core.V(ForestTileW, ForestTileH)
	layer := func(name, asset string, speed, scale, z, y float64, tint string) parallax.Layer {
		return parallax.Layer{
			Name:             name,
			Speed:            core.V(speed, 0),
			Path:             forestPath(asset),
			TileSize:         tile,
			Scale:            scale,
			Z:                z,
			Position:         core.V(-ForestTileW, y),
			TransitionFactor: 1.2,
			Tint:             core.MustParseHex(tint),
		}
	}
	return []parallax.Layer{
		layer("haze", "09_2", -1.0, 1.2, 0.5, ForestTileH/4.2, "#9fb7c9"),
		layer("grey trees", "05_5", 0.8, 1.2, 1.0, ForestTileH/4, "#6f8a8f"),
		layer("near trees", "03_6", 0.7, 1.2, 1.1, ForestTileH/4, "#4a6b57"),
		layer("canopy", "02_7", 0.6, 1.2, 1.1, ForestTileH/4.5, "#2f5a3a"),
		layer("leaf floor", "02_7", 0.5, 1.0, 2.0, -370, "#3d4a2a"),
	}
}
