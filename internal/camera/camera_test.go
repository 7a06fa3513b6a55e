package camera

import (
	"testing"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"static", Static, false},
		{"follow", Follow, false},
		{"follow-x", FollowX, false},
		{"", FollowX, false},
		{"orbit", Static, true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, expected %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q, expected %q", got, got.String(), tt.in)
		}
	}
}

func TestUpdatePolicies(t *testing.T) {
	target := core.V(100, 40)
	offset := core.V(448, 0)

	tests := []struct {
		policy Policy
		want   core.Vec2
	}{
		{Static, core.V(0, 10)},
		{Follow, core.V(548, 40)},
		{FollowX, core.V(548, 10)},
	}
	for _, tt := range tests {
		r := NewRig(tt.policy, offset)
		r.Position = core.V(0, 10)
		r.Update(target)
		if r.Position != tt.want {
			t.Errorf("%v: Position = %v, expected %v", tt.policy, r.Position, tt.want)
		}
	}
}

func TestCorrection(t *testing.T) {
	r := NewRig(Static, core.V(448, 0))
	target := core.V(-448, -200)

	if got := r.Correction(target); got != core.V(0, 200) {
		t.Errorf("Correction() = %v, expected (0, 200)", got)
	}

	r.Policy = Follow
	r.Update(target)
	if got := r.Correction(target); got != (core.Vec2{}) {
		t.Errorf("Correction() after follow = %v, expected zero", got)
	}
}

func TestToViewAndBounds(t *testing.T) {
	r := NewRig(Static, core.Vec2{})
	r.Position = core.V(500, 0)

	if got := r.ToView(core.V(600, 50)); got != core.V(100, 50) {
		t.Errorf("ToView() = %v, expected (100, 50)", got)
	}
	b := r.Bounds(core.V(1000, 600))
	if b.Left() != 0 || b.Right() != 1000 || b.Top() != 300 {
		t.Errorf("Bounds() = %+v, expected [0,1000] x [-300,300]", b)
	}
}
