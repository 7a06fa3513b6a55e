// Package camera implements the camera rig that tracks the player.
package camera

import (
	"fmt"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// Policy selects how the camera reacts to the tracked target.
type Policy int

const (
	// Static keeps the camera where it was placed.
	Static Policy = iota
	// Follow keeps the camera at target + offset on both axes.
	Follow
	// FollowX follows horizontally and keeps the camera height.
	FollowX
)

// String returns the policy name as used in configuration.
func (p Policy) String() string {
	switch p {
	case Static:
		return "static"
	case Follow:
		return "follow"
	case FollowX:
		return "follow-x"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "static":
		return Static, nil
	case "follow":
		return Follow, nil
	case "follow-x", "":
		return FollowX, nil
	default:
		return Static, fmt.Errorf("camera: unknown policy %q", s)
	}
}

// Rig is the camera position plus a fixed offset from the tracked target.
type Rig struct {
	Position core.Vec2 // viewport centre in world space
	Offset   core.Vec2
	Policy   Policy
}

// NewRig creates a rig at the world origin.
func NewRig(policy Policy, offset core.Vec2) *Rig {
	return &Rig{Policy: policy, Offset: offset}
}

// Correction returns camera - target - offset: how far the camera is from
// where Follow would put it. It is zero while following.
func (r *Rig) Correction(target core.Vec2) core.Vec2 {
	return r.Position.Sub(target).Sub(r.Offset)
}

// Update moves the camera according to the policy.
func (r *Rig) Update(target core.Vec2) {
	switch r.Policy {
	case Follow:
		r.Position = target.Add(r.Offset)
	case FollowX:
		r.Position.X = target.X + r.Offset.X
	}
}

// ToView converts a world point to view space (relative to the viewport centre).
func (r *Rig) ToView(p core.Vec2) core.Vec2 {
	return p.Sub(r.Position)
}

// Bounds returns the visible world rectangle for a viewport size.
func (r *Rig) Bounds(viewport core.Vec2) core.Rect {
	return core.Rect{Center: r.Position, HalfW: viewport.X / 2, HalfH: viewport.Y / 2}
}
