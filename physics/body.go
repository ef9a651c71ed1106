package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is a dynamic, non-rotating box body driven by the grapple.
type Body struct {
	world  *World
	body   *cp.Body
	shape  *cp.Shape
	width  float64
	height float64

	moving  bool
	moveVel cp.Vector
}

// NewBody adds a dynamic box centred on pos. Its shapes never show up in
// the world's raycasts.
func (w *World) NewBody(pos cp.Vector, width, height, mass float64) *Body {
	if w == nil || w.space == nil {
		return nil
	}
	if mass <= 0 {
		mass = 1
	}
	b := &Body{world: w, width: width, height: height}

	b.body = cp.NewBody(mass, math.Inf(1))
	b.body.SetPosition(pos)
	b.body.SetVelocityUpdateFunc(b.updateVelocity)

	b.shape = cp.NewBox(b.body, width, height, 0)
	b.shape.SetFriction(0.8)
	b.shape.SetFilter(cp.ShapeFilter{Group: actorGroup, Categories: uint(CategoryActor), Mask: cp.ALL_CATEGORIES})

	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	return b
}

// updateVelocity replaces Chipmunk's integrator so a pending MoveTo lands
// exactly, without gravity or accumulated forces.
func (b *Body) updateVelocity(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
	if b.moving {
		b.moving = false
		body.SetVelocityVector(b.moveVel)
		body.SetForce(cp.Vector{})
		return
	}
	cp.BodyUpdateVelocity(body, gravity, damping, dt)
}

func (b *Body) Position() cp.Vector {
	if b == nil || b.body == nil {
		return cp.Vector{}
	}
	return b.body.Position()
}

func (b *Body) Velocity() cp.Vector {
	if b == nil || b.body == nil {
		return cp.Vector{}
	}
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.moving = false
	b.body.SetVelocityVector(v)
}

// MoveTo sets the velocity that carries the body to p over one fixed step.
// Collisions can still stop it short.
func (b *Body) MoveTo(p cp.Vector) {
	if b == nil || b.body == nil || b.world == nil {
		return
	}
	b.moveVel = p.Sub(b.body.Position()).Mult(1 / b.world.step)
	b.moving = true
	b.body.SetVelocityVector(b.moveVel)
}

// ApplyAcceleration adds a mass-independent acceleration for the next step.
func (b *Body) ApplyAcceleration(a cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetForce(b.body.Force().Add(a.Mult(b.body.Mass())))
}

// Size returns the collider width and height.
func (b *Body) Size() (float64, float64) {
	if b == nil {
		return 0, 0
	}
	return b.width, b.height
}

// Teleport places the body at p with no velocity, e.g. on respawn.
func (b *Body) Teleport(p cp.Vector) {
	if b == nil || b.body == nil {
		return
	}
	b.moving = false
	b.body.SetPosition(p)
	b.body.SetVelocityVector(cp.Vector{})
	b.body.SetForce(cp.Vector{})
}
