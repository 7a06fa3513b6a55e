package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/state"
)

// Terminal palette for the world.
var (
	floorColor  = core.RGB(0.30, 0.22, 0.16)
	playerColor = core.RGB(0.95, 0.55, 0.20)
	markerColor = core.RGB(0.90, 0.85, 0.40)
	hudColor    = core.White.WithAlpha(0.85)
)

// view projects world space (y up, origin at the viewport centre) onto
// screen cells (y down, origin top left).
type view struct {
	cam    core.Vec2
	vp     core.Vec2
	sx, sy float64
	w, h   int
}

func newView(s game.Snapshot, w, h int) view {
	v := view{cam: s.Camera, vp: s.Viewport, w: w, h: h}
	if s.Viewport.X > 0 && s.Viewport.Y > 0 {
		v.sx = float64(w) / s.Viewport.X
		v.sy = float64(h) / s.Viewport.Y
	}
	return v
}

// cell converts a world point to a cell. Points far off screen (including
// unbounded colliders) are clamped just outside the screen.
func (v view) cell(p core.Vec2) (int, int) {
	x := (p.X - v.cam.X + v.vp.X/2) * v.sx
	y := (v.vp.Y/2 - (p.Y - v.cam.Y)) * v.sy
	x = core.ClampF(x, -1, float64(v.w+1))
	y = core.ClampF(y, -1, float64(v.h+1))
	return int(math.Floor(x)), int(math.Floor(y))
}

// rect converts a world rectangle to the half-open cell range it covers.
// Anything on screen covers at least one cell.
func (v view) rect(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(core.V(r.Left(), r.Top()))
	x1, y1 = v.cell(core.V(r.Right(), r.Bottom()))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	return x0, y0, x1, y1
}

// layer is one depth slice of the frame.
type layer struct {
	z    float64
	draw func()
}

// Draw renders a snapshot into the screen buffer: sky, then layers, floor
// and player ordered by depth, then UI text on top.
func Draw(scr *core.Screen, s game.Snapshot) {
	scr.SetBackground(core.Sky)
	scr.Clear()
	if scr.Width() == 0 || scr.Height() == 0 {
		return
	}

	v := newView(s, scr.Width(), scr.Height())
	var layers []layer

	for _, t := range s.Tiles {
		l := s.Layers[t.Layer]
		rect := t.Rect
		layers = append(layers, layer{z: l.Z, draw: func() {
			x0, y0, x1, y1 := v.rect(rect)
			scr.FillRect(x0, y0, x1, y1, l.Tint)
		}})
	}
	if s.Floor != nil {
		floor := *s.Floor
		layers = append(layers, layer{z: s.FloorZ, draw: func() {
			x0, y0, x1, y1 := v.rect(floor)
			scr.FillRect(x0, y0, x1, y1, floorColor)
			if s.Marker != nil {
				mx, my := v.cell(*s.Marker)
				scr.Set(mx, my-1, '▲', markerColor)
			}
		}})
	}
	if p := s.Player; p != nil {
		layers = append(layers, layer{z: p.Z, draw: func() {
			x0, y0, x1, y1 := v.rect(p.Collider)
			scr.FillRect(x0, y0, x1, y1, playerColor)
			if !p.Grounded {
				scr.Set((x0+x1)/2, y1, '\'', playerColor)
			}
		}})
	}

	sort.SliceStable(layers, func(i, j int) bool { return layers[i].z < layers[j].z })
	for _, l := range layers {
		l.draw()
	}

	drawUI(scr, s)
}

func drawUI(scr *core.Screen, s game.Snapshot) {
	h := scr.Height()

	if s.Splash != nil {
		scr.DrawTextCentered(h/2, s.Splash.Text, s.Splash.Color)
		if s.Loading {
			scr.DrawTextCentered(h/2+2, "loading", s.Splash.Color.WithAlpha(s.Splash.Color.A*0.5))
		}
	}

	top := h / 4
	for _, t := range s.Text {
		if !t.Visible {
			continue
		}
		text := t.Text
		color := t.Color
		if t.Hovered {
			text = "> " + text + " <"
			color = s.Hover.WithAlpha(s.Hover.A * t.Color.A)
		}
		scr.DrawTextCentered(top+t.Row*2, text, color)
	}

	switch s.State {
	case state.InGame:
		scr.DrawText(1, 0, fmt.Sprintf("distance %.0f", s.Distance), hudColor)
	case state.Paused:
		scr.DrawTextCentered(h/2, "PAUSED", core.White)
	case state.GameOver:
		scr.DrawTextCentered(h/2, "GAME OVER", core.White)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.RGBA]lipgloss.Style)
	styleFor := func(c core.Cell) lipgloss.Style {
		k := [2]core.RGBA{c.FG, c.BG}
		st, ok := styles[k]
		if !ok {
			st = lipgloss.NewStyle().
				Foreground(lipgloss.Color(c.FG.Hex())).
				Background(lipgloss.Color(c.BG.Hex()))
			styles[k] = st
		}
		return st
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
