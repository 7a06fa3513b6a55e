package config

// RampConfig configures the optional forward speed ramp.
type RampConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 to 1.0
	MaxAt        float64 `yaml:"max_at"`        // distance at which the level reaches 1.0
	MaxBoost     float64 `yaml:"max_boost"`     // speed multiplier added at level 1.0
}

// Ramp calculates the forward speed from the distance travelled.
// A disabled ramp always returns the base speed.
type Ramp struct {
	cfg          RampConfig
	initialLevel float64
}

// NewRamp creates a speed ramp.
func NewRamp(cfg RampConfig) *Ramp {
	return &Ramp{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether the ramp is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.MaxBoost != 0
}

// Level returns the current ramp level (0.0 to 1.0) for a distance.
func (r *Ramp) Level(distance float64) float64 {
	if !r.cfg.Enabled {
		return r.initialLevel
	}
	maxAt := r.cfg.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(distance/maxAt, 0.0, 1.0)
	return r.initialLevel + progress*(1.0-r.initialLevel)
}

// Speed returns the ramped speed for a base speed.
func (r *Ramp) Speed(base, distance float64) float64 {
	if !r.IsEnabled() {
		return base
	}
	return base * (1.0 + r.Level(distance)*r.cfg.MaxBoost)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
