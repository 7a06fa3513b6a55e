package window

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/state"
)

var (
	floorColor  = core.RGB(0.30, 0.22, 0.16)
	playerColor = core.RGB(0.95, 0.55, 0.20)
	markerColor = core.RGB(0.90, 0.85, 0.40)
	hudColor    = core.White.WithAlpha(0.85)
)

const (
	markerSize = 12
	lineHeight = 56
)

// projection maps world space (y up, origin at the viewport centre) to
// screen pixels (y down, origin top left) for one snapshot.
type projection struct {
	cam core.Vec2
	vp  core.Vec2
}

func newProjection(s game.Snapshot) projection {
	return projection{cam: s.Camera, vp: s.Viewport}
}

func (p projection) point(v core.Vec2) (float64, float64) {
	return v.X - p.cam.X + p.vp.X/2, p.vp.Y/2 - (v.Y - p.cam.Y)
}

// rect returns the screen rectangle of r clipped to just outside the
// viewport, so unbounded rectangles stay drawable. ok is false when r is
// entirely off screen.
func (p projection) rect(r core.Rect) (x, y, w, h float64, ok bool) {
	x0, y0 := p.point(core.V(r.Left(), r.Top()))
	x1, y1 := p.point(core.V(r.Right(), r.Bottom()))
	x0, x1 = core.ClampF(x0, -1, p.vp.X+1), core.ClampF(x1, -1, p.vp.X+1)
	y0, y1 = core.ClampF(y0, -1, p.vp.Y+1), core.ClampF(y1, -1, p.vp.Y+1)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

type slice struct {
	z    float64
	draw func()
}

// Renderer draws snapshots onto ebiten images.
type Renderer struct {
	images *Images
	face   text.Face
}

// NewRenderer creates a renderer. A nil face skips text.
func NewRenderer(images *Images, face text.Face) *Renderer {
	return &Renderer{images: images, face: face}
}

// Draw renders the snapshot: sky, then layers, floor and player ordered
// by depth, then UI text.
func (r *Renderer) Draw(dst *ebiten.Image, s game.Snapshot) {
	dst.Fill(core.Sky.NRGBA())
	p := newProjection(s)
	var slices []slice

	for _, t := range s.Tiles {
		l := s.Layers[t.Layer]
		rect := t.Rect
		slices = append(slices, slice{z: l.Z, draw: func() {
			x, y, w, h, ok := p.rect(rect)
			if !ok {
				return
			}
			if img := r.image(l.Path); img != nil {
				// Full tile geometry, not the clipped one, so the image keeps its scale.
				tx, ty := p.point(core.V(rect.Left(), rect.Top()))
				b := img.Bounds()
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(rect.Width()/float64(b.Dx()), rect.Height()/float64(b.Dy()))
				op.GeoM.Translate(tx, ty)
				op.Filter = ebiten.FilterLinear
				dst.DrawImage(img, op)
				return
			}
			fillRect(dst, x, y, w, h, l.Tint)
		}})
	}
	if s.Floor != nil {
		floor := *s.Floor
		slices = append(slices, slice{z: s.FloorZ, draw: func() {
			if x, y, w, h, ok := p.rect(floor); ok {
				fillRect(dst, x, y, w, h, floorColor)
			}
			if s.Marker != nil {
				mx, my := p.point(*s.Marker)
				fillRect(dst, mx-markerSize/2, my-markerSize, markerSize, markerSize, markerColor)
			}
		}})
	}
	if pl := s.Player; pl != nil {
		slices = append(slices, slice{z: pl.Z, draw: func() {
			if x, y, w, h, ok := p.rect(pl.Collider); ok {
				fillRect(dst, x, y, w, h, playerColor)
			}
		}})
	}

	sort.SliceStable(slices, func(i, j int) bool { return slices[i].z < slices[j].z })
	for _, sl := range slices {
		sl.draw()
	}

	r.drawUI(dst, s)
}

func (r *Renderer) image(path string) *ebiten.Image {
	if r.images == nil {
		return nil
	}
	return r.images.Get(path)
}

func (r *Renderer) drawUI(dst *ebiten.Image, s game.Snapshot) {
	if r.face == nil {
		return
	}
	w, h := s.Viewport.X, s.Viewport.Y
	if w == 0 || h == 0 {
		b := dst.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}

	if s.Splash != nil {
		r.text(dst, s.Splash.Text, w/2, h/2, s.Splash.Color, text.AlignCenter)
		if s.Loading {
			r.text(dst, "loading", w/2, h/2+lineHeight, s.Splash.Color.WithAlpha(s.Splash.Color.A*0.5), text.AlignCenter)
		}
	}

	top := h / 4
	for _, t := range s.Text {
		if !t.Visible {
			continue
		}
		line := t.Text
		c := t.Color
		if t.Hovered {
			line = "> " + line + " <"
			c = s.Hover.WithAlpha(s.Hover.A * t.Color.A)
		}
		r.text(dst, line, w/2, top+float64(t.Row)*lineHeight, c, text.AlignCenter)
	}

	switch s.State {
	case state.InGame:
		r.text(dst, fmt.Sprintf("distance %.0f", s.Distance), 16, 16, hudColor, text.AlignStart)
	case state.Paused:
		r.text(dst, "PAUSED", w/2, h/2, core.White, text.AlignCenter)
	case state.GameOver:
		r.text(dst, "GAME OVER", w/2, h/2, core.White, text.AlignCenter)
	}
}

func (r *Renderer) text(dst *ebiten.Image, s string, x, y float64, c core.RGBA, align text.Align) {
	if c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, r.face, op)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c core.RGBA) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), false)
}
