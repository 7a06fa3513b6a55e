package environments

import (
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
)

// Meadow is a light two-layer preset without image assets.
type Meadow struct{}

// ID returns the environment identifier.
func (Meadow) ID() string { return "meadow" }

// Title returns the display name.
func (Meadow) Title() string { return "Meadow" }

// Layers returns the meadow layers back to front.
func (Meadow) Layers() []parallax.Layer {
	return []parallax.Layer{
		{
			Name:             "hills",
			Speed:            core.V(0.3, 0),
			TileSize:         core.V(800, 300),
			Scale:            1,
			Z:                0.5,
			Position:         core.V(-800, -150),
			TransitionFactor: 1.2,
			Tint:             core.RGB(0.55, 0.70, 0.45),
		},
		{
			Name:             "grass",
			Speed:            core.V(0.9, 0),
			TileSize:         core.V(600, 120),
			Scale:            1,
			Z:                2.0,
			Position:         core.V(-600, -330),
			TransitionFactor: 1.2,
			Tint:             core.RGB(0.30, 0.55, 0.25),
		},
	}
}
