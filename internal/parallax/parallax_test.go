package parallax

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

func layer(name string, speed, tileW, scale, z float64) Layer {
	return Layer{
		Name:             name,
		Speed:            core.V(speed, 0),
		TileSize:         core.V(tileW, 400),
		Scale:            scale,
		Z:                z,
		TransitionFactor: 1.2,
	}
}

func TestNewValidation(t *testing.T) {
	viewport := core.V(1000, 600)
	good := layer("a", 0.5, 500, 1, 1)

	tests := []struct {
		name string
		res  Resource
		ok   bool
	}{
		{"valid", Resource{Layers: []Layer{good}, Count: 4, GlobalSpeed: 3}, true},
		{"zero count", Resource{Layers: []Layer{good}, Count: 0}, false},
		{"no layers", Resource{Count: 4}, false},
		{"zero tile", Resource{Layers: []Layer{layer("z", 1, 0, 1, 1)}, Count: 4}, false},
		{"zero scale", Resource{Layers: []Layer{layer("s", 1, 500, 0, 1)}, Count: 4}, false},
		{"no band", Resource{Layers: []Layer{{Name: "b", TileSize: core.V(500, 1), Scale: 1}}, Count: 4}, false},
		{"nan speed", Resource{Layers: []Layer{layer("n", math.NaN(), 500, 1, 1)}, Count: 4}, false},
		{"does not cover", Resource{Layers: []Layer{layer("c", 1, 200, 1, 1)}, Count: 4}, false},
		{"covers with scale", Resource{Layers: []Layer{layer("c", 1, 200, 1.25, 1)}, Count: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.res, viewport)
			if tt.ok {
				if err != nil {
					t.Fatalf("New() error: %v", err)
				}
				if len(e.Tiles()) != tt.res.Count*len(tt.res.Layers) {
					t.Errorf("tiles = %d, expected %d", len(e.Tiles()), tt.res.Count*len(tt.res.Layers))
				}
				return
			}
			if !errors.Is(err, ErrInvalidLayer) {
				t.Errorf("New() error = %v, expected ErrInvalidLayer", err)
			}
		})
	}
}

func TestLayersSortedAndSpawnedEdgeToEdge(t *testing.T) {
	front := layer("front", 0.5, 500, 1, 2)
	back := layer("back", 0.1, 400, 1.5, 0.5)
	back.Position = core.V(-100, 50)

	e, err := New(Resource{Layers: []Layer{front, back}, Count: 3, GlobalSpeed: 1}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	if e.Layer(0).Name != "back" || e.Layer(1).Name != "front" {
		t.Fatalf("layers = %s, %s; expected back, front", e.Layer(0).Name, e.Layer(1).Name)
	}

	tiles := e.Tiles()
	expected := []Tile{
		{Layer: 0, Position: core.V(-100, 50)},
		{Layer: 0, Position: core.V(500, 50)},
		{Layer: 0, Position: core.V(1100, 50)},
		{Layer: 1, Position: core.V(0, 0)},
		{Layer: 1, Position: core.V(500, 0)},
		{Layer: 1, Position: core.V(1000, 0)},
	}
	for i, want := range expected {
		if tiles[i] != want {
			t.Errorf("tile %d = %+v, expected %+v", i, tiles[i], want)
		}
	}
}

// Player advances 50 per tick for 30 ticks across a 1000-wide viewport with
// a 1.2 transition factor.
func TestRecycleTriggersWhilePlayerAdvances(t *testing.T) {
	res := Resource{
		Layers: []Layer{
			layer("near", 0.8, 500, 1, 1),
			layer("far", 0.2, 928, 1.2, 0.5),
		},
		Count:       4,
		GlobalSpeed: 50,
	}
	e, err := New(res, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	x := 0.0
	for i := 0; i < 30; i++ {
		x += 50
		total += e.Update(x)
	}
	if total == 0 {
		t.Error("no recycle events after advancing 1500 units")
	}
	if e.Recycles() != total {
		t.Errorf("Recycles() = %d, expected %d", e.Recycles(), total)
	}
}

func TestStationaryPlayerIsIdempotent(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 0.5, 500, 1, 1)}, Count: 4, GlobalSpeed: 3}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	// Tiles at 0..1500; from x=750 every edge is within +-1200.
	before := append([]Tile(nil), e.Tiles()...)
	for i := 0; i < 100; i++ {
		if n := e.Update(750); n != 0 {
			t.Fatalf("tick %d moved %d tiles, expected 0", i, n)
		}
	}
	for i, tile := range e.Tiles() {
		if tile != before[i] {
			t.Errorf("tile %d moved from %v to %v", i, before[i].Position, tile.Position)
		}
	}
}

func TestBoundaryTieDoesNotMove(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 1, 500, 1, 1)}, Count: 4, GlobalSpeed: 3}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	// edge = x - 0 + 250 == 1200 exactly for the first tile.
	x := 950.0
	if got := e.Edge(e.Tiles()[0], x); got != e.Band(0) {
		t.Fatalf("Edge() = %v, expected band %v", got, e.Band(0))
	}
	if n := e.Update(x); n != 0 {
		t.Errorf("Update() at the boundary moved %d tiles", n)
	}

	// Just past the boundary the first tile is shifted by speed * global.
	if n := e.Update(x + 0.001); n != 1 {
		t.Fatalf("Update() past the boundary moved %d tiles, expected 1", n)
	}
	if got := e.Tiles()[0].Position.X; got != 3 {
		t.Errorf("tile X = %v, expected 3", got)
	}
}

func TestNudgeBehindSubtracts(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 0.5, 500, 1, 1)}, Count: 4, GlobalSpeed: 4}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	// Last tile sits at 1500: edge = -2000 + ... < -1200 for x = -1000.
	e.Update(-1000)
	if got := e.Tiles()[3].Position.X; got != 1498 {
		t.Errorf("tile X = %v, expected 1498", got)
	}
}

func TestWrapKeepsLayerContinuous(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 0.5, 500, 1, 1)}, Count: 4, GlobalSpeed: 3}, core.V(1000, 600), WithPolicy(Wrap))
	if err != nil {
		t.Fatal(err)
	}

	x := 0.0
	for i := 0; i < 400; i++ {
		x += 25
		e.Update(x)
	}

	// Positions stay on the initial 500-unit lattice, all distinct.
	seen := map[float64]bool{}
	for _, tile := range e.Tiles() {
		if math.Mod(tile.Position.X, 500) != 0 {
			t.Errorf("tile X = %v is off the lattice", tile.Position.X)
		}
		if seen[tile.Position.X] {
			t.Errorf("two tiles at X = %v", tile.Position.X)
		}
		seen[tile.Position.X] = true
		if edge := e.Edge(tile, x); math.Abs(edge) > e.Band(0)+float64(e.Count())*500 {
			t.Errorf("tile at %v drifted out of reach of player %v", tile.Position.X, x)
		}
	}
}

func TestGlobalSpeedScalesNudge(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 0.5, 500, 1, 1)}, Count: 4, GlobalSpeed: 3}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	e.SetGlobalSpeed(10)
	e.Update(2000)
	if got := e.Tiles()[0].Position.X; got != 5 {
		t.Errorf("tile X = %v, expected 5", got)
	}
}

func TestTileRect(t *testing.T) {
	e, err := New(Resource{Layers: []Layer{layer("a", 0.5, 500, 1.2, 1)}, Count: 4, GlobalSpeed: 3}, core.V(1000, 600))
	if err != nil {
		t.Fatal(err)
	}
	r := e.TileRect(e.Tiles()[0])
	if r.Width() != 600 || r.Height() != 480 {
		t.Errorf("TileRect() = %vx%v, expected 600x480", r.Width(), r.Height())
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Nudge, Wrap} {
		got, err := ParsePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePolicy("spin"); err == nil {
		t.Error("ParsePolicy(spin) should fail")
	}
}
