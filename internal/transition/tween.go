package transition

import (
	"time"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// Tween interpolates a colour over a fixed duration.
type Tween struct {
	From     core.RGBA
	To       core.RGBA
	Duration time.Duration
	Elapsed  time.Duration
	Ease     Ease
}

// NewTween creates a tween. A nil ease is linear.
func NewTween(from, to core.RGBA, d time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Ease: ease}
}

// Advance accumulates elapsed time.
func (t *Tween) Advance(dt time.Duration) {
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Progress returns linear progress in [0, 1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return core.ClampF(float64(t.Elapsed)/float64(t.Duration), 0, 1)
}

// Value returns the eased colour at the current progress.
func (t *Tween) Value() core.RGBA {
	return t.From.Lerp(t.To, t.Ease(t.Progress()))
}

// Done reports whether the full duration has elapsed.
func (t *Tween) Done() bool {
	return t.Elapsed >= t.Duration
}

// Pulse is a repeating tween that runs forward, then backward, and so on.
type Pulse struct {
	From    core.RGBA
	To      core.RGBA
	Period  time.Duration // one leg
	Ease    Ease
	elapsed time.Duration
}

// NewPulse creates a mirrored repeating tween.
func NewPulse(from, to core.RGBA, period time.Duration, ease Ease) *Pulse {
	if ease == nil {
		ease = Linear
	}
	return &Pulse{From: from, To: to, Period: period, Ease: ease}
}

// Advance accumulates elapsed time.
func (p *Pulse) Advance(dt time.Duration) {
	p.elapsed += dt
}

// Reset restarts the pulse on its first leg.
func (p *Pulse) Reset() {
	p.elapsed = 0
}

// Leg returns the index of the current leg, starting at 0.
func (p *Pulse) Leg() int {
	if p.Period <= 0 {
		return 0
	}
	return int(p.elapsed / p.Period)
}

// Progress returns linear progress within the current leg.
func (p *Pulse) Progress() float64 {
	if p.Period <= 0 {
		return 1
	}
	return float64(p.elapsed%p.Period) / float64(p.Period)
}

// Value returns the colour. Even legs run From to To, odd legs back.
func (p *Pulse) Value() core.RGBA {
	t := p.Ease(p.Progress())
	if p.Leg()%2 == 1 {
		return p.To.Lerp(p.From, t)
	}
	return p.From.Lerp(p.To, t)
}
