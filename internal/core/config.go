package core

import "time"

// RuntimeConfig contains configuration passed to the runner by the platform.
type RuntimeConfig struct {
	ScreenW  int // Screen width in platform units (cells or pixels)
	ScreenH  int // Screen height in platform units
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDuration returns the fixed step length for the tick rate.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
