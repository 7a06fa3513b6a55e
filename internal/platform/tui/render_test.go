package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/parallax-runner/internal/core"
	"github.com/vovakirdan/parallax-runner/internal/game"
	"github.com/vovakirdan/parallax-runner/internal/parallax"
	"github.com/vovakirdan/parallax-runner/internal/state"
)

func TestViewCell(t *testing.T) {
	s := game.Snapshot{Viewport: core.V(80, 24), Camera: core.V(10, 0)}
	v := newView(s, 80, 24)

	tests := []struct {
		name   string
		p      core.Vec2
		ex, ey int
	}{
		{"camera is the centre", core.V(10, 0), 40, 12},
		{"top left", core.V(-30, 12), 0, 0},
		{"y grows up", core.V(10, 6), 40, 6},
		{"clamped right", core.V(1e9, 0), 81, 12},
		{"clamped below", core.V(10, -1e9), 40, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.cell(tt.p)
			if x != tt.ex || y != tt.ey {
				t.Errorf("cell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.ex, tt.ey)
			}
		})
	}
}

func TestViewRectMinimumCell(t *testing.T) {
	v := newView(game.Snapshot{Viewport: core.V(800, 240)}, 80, 24)
	x0, y0, x1, y1 := v.rect(core.NewRect(0, 0, 1, 1))
	if x1-x0 != 1 || y1-y0 != 1 {
		t.Errorf("rect() = [%d,%d)x[%d,%d), expected one cell", x0, x1, y0, y1)
	}
}

func TestDrawWorld(t *testing.T) {
	floor := core.NewRect(0, -10, 100, 2)
	marker := core.V(-20, -8)
	tint := core.RGB(0.2, 0.4, 0.6)
	s := game.Snapshot{
		State:    state.InGame,
		Viewport: core.V(80, 24),
		Layers:   []parallax.Layer{{Name: "hills", Tint: tint, Z: -1}},
		Tiles:    []game.TileView{{Layer: 0, Rect: core.NewRect(-30, 8, 5, 2)}},
		Floor:    &floor,
		FloorZ:   -0.5,
		Marker:   &marker,
		Player: &game.PlayerView{
			Collider: core.NewRect(0, -6, 1, 2),
			Grounded: true,
		},
		Distance: 42,
	}

	scr := core.NewScreen(80, 24)
	Draw(scr, s)

	if got := scr.GetCell(70, 10).BG; got != core.Sky {
		t.Errorf("sky cell = %v, expected %v", got, core.Sky)
	}
	if got := scr.GetCell(10, 5).BG; got != tint {
		t.Errorf("tile cell = %v, expected %v", got, tint)
	}
	if got := scr.GetCell(5, 21).BG; got != floorColor {
		t.Errorf("floor cell = %v, expected %v", got, floorColor)
	}
	if got := scr.GetCell(40, 17).BG; got != playerColor {
		t.Errorf("player cell = %v, expected %v", got, playerColor)
	}
	if got := scr.Get(20, 19); got != '▲' {
		t.Errorf("marker = %q, expected ▲", got)
	}
	if !strings.Contains(scr.Row(0), "distance 42") {
		t.Errorf("HUD row = %q, expected the distance", scr.Row(0))
	}
}

func TestDrawUI(t *testing.T) {
	tests := []struct {
		name     string
		snap     game.Snapshot
		row      int
		expected string
	}{
		{
			name: "splash",
			snap: game.Snapshot{
				State:  state.Splash,
				Splash: &game.TextView{Text: "Runner", Color: core.White, Visible: true},
			},
			row:      10,
			expected: "Runner",
		},
		{
			name: "loading",
			snap: game.Snapshot{
				State:   state.Splash,
				Loading: true,
				Splash:  &game.TextView{Text: "Runner", Color: core.White, Visible: true},
			},
			row:      12,
			expected: "loading",
		},
		{
			name: "hovered menu line",
			snap: game.Snapshot{
				State: state.MainMenu,
				Hover: core.White,
				Text: []game.TextView{
					{ID: "title", Text: "Runner", Color: core.White, Visible: true},
					{ID: "item-play", Text: "Play", Color: core.White, Visible: true, Row: 1, Hovered: true},
				},
			},
			row:      7,
			expected: "> Play <",
		},
		{"paused", game.Snapshot{State: state.Paused}, 10, "PAUSED"},
		{"game over", game.Snapshot{State: state.GameOver}, 10, "GAME OVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := core.NewScreen(40, 20)
			Draw(scr, tt.snap)
			if !strings.Contains(scr.Row(tt.row), tt.expected) {
				t.Errorf("row %d = %q, expected %q", tt.row, scr.Row(tt.row), tt.expected)
			}
		})
	}
}

func TestDrawHiddenText(t *testing.T) {
	scr := core.NewScreen(40, 20)
	Draw(scr, game.Snapshot{
		State: state.MainMenu,
		Text:  []game.TextView{{ID: "title", Text: "Runner", Color: core.White}},
	})
	if strings.Contains(scr.String(), "Runner") {
		t.Error("invisible text should not be drawn")
	}
}

func TestRenderScreen(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.SetBackground(core.Sky)
	scr.Clear()
	scr.DrawText(2, 1, "hey", core.White)

	out := RenderScreen(scr)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", strings.Count(out, "\n"))
	}
	if !strings.Contains(out, "hey") {
		t.Errorf("RenderScreen() = %q, expected the text run", out)
	}
}
