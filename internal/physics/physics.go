// Package physics is a minimal axis-aligned body world: dynamic bodies fall
// under gravity and are pushed out of fixed bodies. It offers only what the
// runner consumes: body creation, transform access and an impulse
// accumulator.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/parallax-runner/internal/core"
)

// ErrInvalidShape is returned when a collider has non-positive extents.
var ErrInvalidShape = errors.New("physics: invalid collider shape")

// ErrUnknownBody is returned for operations on a body the world does not hold.
var ErrUnknownBody = errors.New("physics: unknown body")

// BodyKind selects how a body reacts to the simulation.
type BodyKind int

const (
	// Dynamic bodies are subject to gravity and collision response.
	Dynamic BodyKind = iota
	// Fixed bodies never move and are unaffected by forces.
	Fixed
)

// String returns the body kind name.
func (k BodyKind) String() string {
	switch k {
	case Dynamic:
		return "Dynamic"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// BodyID identifies a body within a world.
type BodyID int

// Box is an axis-aligned box collider given by half extents.
// A Fixed body may use +Inf for HalfW to span the whole world horizontally.
type Box struct {
	HalfW, HalfH float64
}

func (b Box) validate(kind BodyKind) error {
	okW := b.HalfW > 0 && (!math.IsInf(b.HalfW, 1) || kind == Fixed)
	okH := b.HalfH > 0 && !math.IsInf(b.HalfH, 1)
	if !okW || !okH {
		return fmt.Errorf("%w: half extents %vx%v for %s body", ErrInvalidShape, b.HalfW, b.HalfH, kind)
	}
	return nil
}

// Body is a simulated body.
type Body struct {
	ID       BodyID
	Kind     BodyKind
	Position core.Vec2 // centre
	Velocity core.Vec2 // units per second
	Box      Box
	Z        float64 // draw order only
	Grounded bool    // resting on a fixed body after the last step
}

// Rect returns the body's collider in world space.
func (b *Body) Rect() core.Rect {
	return core.Rect{Center: b.Position, HalfW: b.Box.HalfW, HalfH: b.Box.HalfH}
}

// World holds bodies and advances them.
type World struct {
	bodies  []*Body
	gravity float64
	nextID  BodyID
}

// NewWorld creates a world with downward gravity in units per second squared.
func NewWorld(gravity float64) *World {
	return &World{gravity: gravity, nextID: 1}
}

// Gravity returns the gravity magnitude.
func (w *World) Gravity() float64 {
	return w.gravity
}

// CreateBody adds a body. Non-positive extents fail with ErrInvalidShape.
func (w *World) CreateBody(pos core.Vec2, box Box, kind BodyKind) (*Body, error) {
	if err := box.validate(kind); err != nil {
		return nil, err
	}
	b := &Body{
		ID:       w.nextID,
		Kind:     kind,
		Position: pos,
		Box:      box,
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b, nil
}

// Body returns the body with the given id.
func (w *World) Body(id BodyID) (*Body, bool) {
	for _, b := range w.bodies {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Bodies returns all bodies in creation order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Transform returns a body's position.
func (w *World) Transform(id BodyID) (core.Vec2, bool) {
	b, ok := w.Body(id)
	if !ok {
		return core.Vec2{}, false
	}
	return b.Position, true
}

// SetTransform moves a body. Fixed bodies are immovable.
func (w *World) SetTransform(id BodyID, pos core.Vec2) error {
	b, ok := w.Body(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	if b.Kind == Fixed {
		return fmt.Errorf("physics: cannot move fixed body %d", id)
	}
	b.Position = pos
	return nil
}

// ApplyImpulse adds a velocity change to a dynamic body's accumulator.
func (w *World) ApplyImpulse(id BodyID, dv core.Vec2) error {
	b, ok := w.Body(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	if b.Kind != Dynamic {
		return nil
	}
	b.Velocity = b.Velocity.Add(dv)
	return nil
}

// Step advances dynamic bodies by dt seconds: gravity is integrated into
// velocity, velocity into position, and any penetration into fixed bodies
// is resolved. Horizontal position is only changed when a body is pushed
// out of a wall, never by vertical resolution.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.Kind != Dynamic {
			continue
		}
		prev := b.Rect()
		b.Velocity.Y -= w.gravity * dt
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		b.Grounded = false

		for _, f := range w.bodies {
			if f.Kind != Fixed {
				continue
			}
			w.resolve(b, f, prev)
		}
	}
}

// resolve pushes b out of the fixed body f along the axis it entered from.
func (w *World) resolve(b, f *Body, prev core.Rect) {
	fr := f.Rect()
	dx, dy := b.Rect().Overlap(fr)
	if dx == 0 && dy == 0 {
		return
	}

	wasAbove := prev.Bottom() >= fr.Top()
	wasBelow := prev.Top() <= fr.Bottom()
	wasBeside := prev.Right() <= fr.Left() || prev.Left() >= fr.Right()

	vertical := wasAbove || wasBelow
	if !vertical && !wasBeside {
		vertical = dy <= dx
	}

	if vertical {
		if b.Position.Y >= f.Position.Y {
			b.Position.Y += dy
			if b.Velocity.Y < 0 {
				b.Velocity.Y = 0
			}
			b.Grounded = true
		} else {
			b.Position.Y -= dy
			if b.Velocity.Y > 0 {
				b.Velocity.Y = 0
			}
		}
		return
	}

	if b.Position.X < f.Position.X {
		b.Position.X -= dx
		if b.Velocity.X > 0 {
			b.Velocity.X = 0
		}
	} else {
		b.Position.X += dx
		if b.Velocity.X < 0 {
			b.Velocity.X = 0
		}
	}
}
