package game

import (
	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
	"github.com/vovakirdan/parallax-runner/internal/state"
)

// TileView is a parallax tile ready to draw.
type TileView struct {
	Layer int // index into Snapshot.Layers
	Rect  core.Rect
}

// TextView is a line of UI text.
type TextView struct {
	ID      string
	Text    string
	Color   core.RGBA
	Visible bool
	Row     int  // line index on the page, top first
	Hovered bool // under the menu cursor
}

// PlayerView is the player ready to draw.
type PlayerView struct {
	Position core.Vec2
	Size     core.Vec2 // sprite size
	Collider core.Rect
	Grounded bool
	Z        float64
}

// Snapshot is a read-only view of one tick for renderers. Positions are
// in world space; Camera is the world point at the viewport centre.
type Snapshot struct {
	Tick     uint64
	State    state.GameState
	Loading  bool
	Viewport core.Vec2
	Camera   core.Vec2

	Layers []parallax.Layer
	Tiles  []TileView // back to front
	Floor  *core.Rect
	FloorZ float64
	Marker *core.Vec2
	Player *PlayerView

	Splash   *TextView
	Text     []TextView
	Hover    core.RGBA // hover marker colour
	Page     Page
	Distance float64
}

// Snapshot captures the current frame.
func (r *Runner) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     r.tick,
		State:    r.machine.Current(),
		Loading:  !r.Ready(),
		Viewport: r.viewport,
	}

	if s.State == state.Splash {
		s.Splash = &TextView{ID: "splash", Text: r.splashText, Color: r.splash.Value(), Visible: true}
	}
	if !r.Ready() {
		return s
	}

	s.Camera = r.camera.Position
	if r.parallax != nil {
		s.Layers = r.parallax.Layers()
		tiles := r.parallax.Tiles()
		s.Tiles = make([]TileView, len(tiles))
		for i, t := range tiles {
			s.Tiles[i] = TileView{Layer: t.Layer, Rect: r.parallax.TileRect(t)}
		}
	}
	if r.floor != nil {
		rect := r.floor.Rect()
		marker := r.marker
		s.Floor = &rect
		s.FloorZ = r.floor.Z
		s.Marker = &marker
	}
	if b := r.player.Body(); b != nil {
		t := r.player.Tuning()
		s.Player = &PlayerView{
			Position: b.Position,
			Size:     t.Size,
			Collider: b.Rect(),
			Grounded: b.Grounded,
			Z:        b.Z,
		}
		s.Distance = r.player.Distance()
	}

	selected := ""
	if s.State == state.MainMenu {
		selected = r.menu.Selected()
		s.Page = r.menu.Page()
	}
	s.Hover = r.hover.Value()
	for i, e := range r.anim.Elements() {
		s.Text = append(s.Text, TextView{
			ID:      e.ID,
			Text:    e.Text,
			Color:   e.Color,
			Visible: e.Visible,
			Row:     i,
			Hovered: e.ID == selected,
		})
	}
	return s
}
