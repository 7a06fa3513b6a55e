package transition

import (
	"time"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// Mode is the animator state.
type Mode int

const (
	Idle Mode = iota
	Show
	Hide
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Show:
		return "Show"
	case Hide:
		return "Hide"
	default:
		return "Unknown"
	}
}

// Element is a text element driven by the animator. At most one fade runs
// on an element; starting a new one replaces it.
type Element struct {
	ID      string
	Text    string
	Target  core.RGBA // colour when fully shown
	Color   core.RGBA // current colour
	Visible bool

	fade    *Tween
	showing bool
}

// NewElement creates a hidden, transparent element.
func NewElement(id, text string, target core.RGBA) *Element {
	return &Element{
		ID:     id,
		Text:   text,
		Target: target,
		Color:  target.WithAlpha(0),
	}
}

// Fading reports whether a fade is running.
func (e *Element) Fading() bool {
	return e.fade != nil
}

// FadeProgress returns the linear progress of the running fade.
func (e *Element) FadeProgress() (float64, bool) {
	if e.fade == nil {
		return 0, false
	}
	return e.fade.Progress(), true
}

// Options tunes an Animator.
type Options struct {
	Duration      time.Duration
	Ease          Ease
	ShowThreshold float64 // show progress past which an element becomes visible
	HideThreshold float64 // hide progress at which an element becomes hidden
}

// DefaultOptions returns a 500 ms quadratic-in fade with 0.01/0.99 thresholds.
func DefaultOptions() Options {
	return Options{
		Duration:      500 * time.Millisecond,
		Ease:          QuadraticIn,
		ShowThreshold: 0.01,
		HideThreshold: 0.99,
	}
}

// Animator fades a collection of elements. It knows nothing about why
// Show or Hide was invoked.
type Animator struct {
	opts     Options
	mode     Mode
	elements []*Element
}

// NewAnimator creates an idle animator.
func NewAnimator(opts Options) *Animator {
	if opts.Ease == nil {
		opts.Ease = QuadraticIn
	}
	return &Animator{opts: opts}
}

// Mode returns the current animator state.
func (a *Animator) Mode() Mode {
	return a.mode
}

// Add registers elements.
func (a *Animator) Add(els ...*Element) {
	a.elements = append(a.elements, els...)
}

// Remove drops the element with the given id.
func (a *Animator) Remove(id string) {
	out := a.elements[:0]
	for _, e := range a.elements {
		if e.ID != id {
			out = append(out, e)
		}
	}
	a.elements = out
}

// Clear drops all elements.
func (a *Animator) Clear() {
	a.elements = nil
}

// Elements returns the registered elements.
func (a *Animator) Elements() []*Element {
	return a.elements
}

// Element returns the element with the given id.
func (a *Animator) Element(id string) (*Element, bool) {
	for _, e := range a.elements {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Show starts a fade from each element's current colour to its target.
func (a *Animator) Show() {
	for _, e := range a.elements {
		e.fade = NewTween(e.Color, e.Target, a.opts.Duration, a.opts.Ease)
		e.showing = true
	}
	a.mode = Show
}

// Hide starts a fade from each element's current colour to transparent.
func (a *Animator) Hide() {
	for _, e := range a.elements {
		e.fade = NewTween(e.Color, e.Color.WithAlpha(0), a.opts.Duration, a.opts.Ease)
		e.showing = false
	}
	a.mode = Hide
}

// Tick advances running fades by dt and updates colours and visibility.
// An element becomes visible once its show fade passes the show threshold
// and hidden once its hide fade reaches the hide threshold. The animator
// returns to Idle after the tick that follows Show or Hide.
func (a *Animator) Tick(dt time.Duration) {
	for _, e := range a.elements {
		if e.fade == nil {
			continue
		}
		e.fade.Advance(dt)
		e.Color = e.fade.Value()
		p := e.fade.Progress()
		if e.showing && p > a.opts.ShowThreshold {
			e.Visible = true
		}
		if !e.showing && p >= a.opts.HideThreshold {
			e.Visible = false
		}
		if e.fade.Done() {
			e.fade = nil
		}
	}
	a.mode = Idle
}

// Busy reports whether any element is still fading.
func (a *Animator) Busy() bool {
	for _, e := range a.elements {
		if e.fade != nil {
			return true
		}
	}
	return false
}
