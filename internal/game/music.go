package game

// Music plays the ambient loop. Implementations live in the platforms.
type Music interface {
	// Play starts the loop, or resumes it where Stop paused it, at the
	// given volume.
	Play(volume float64) error
	// Stop halts playback.
	Stop()
}

type silence struct{}

func (silence) Play(float64) error { return nil }
func (silence) Stop()              {}
