package system

import (
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/gravity"
)

// DefaultMaxFrame caps the physics catch-up after a stall.
const DefaultMaxFrame = 0.25

// PhysicsSystem advances the physics world in fixed steps and runs each
// controller's physics tick and the fixed gravity phase before every step.
type PhysicsSystem struct {
	Frame    float64
	MaxFrame float64

	// AfterStep, if set, runs after each step with the running step count.
	AfterStep func(w *ecs.World, steps int)

	accum float64
	steps int
}

func NewPhysicsSystem(frame float64) *PhysicsSystem {
	return &PhysicsSystem{Frame: frame, MaxFrame: DefaultMaxFrame}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	step := pw.StepSize()
	if step <= 0 {
		return
	}

	ps.accum += ps.Frame
	if ps.MaxFrame > 0 && ps.accum > ps.MaxFrame {
		ps.accum = ps.MaxFrame
	}
	for ps.accum >= step {
		ecs.ForEach(w, component.GrappleComponent, func(_ ecs.Entity, g *component.Grapple) {
			if g != nil {
				g.Controller.PhysicsTick(step)
			}
		})
		TickGravity(w, gravity.FixedUpdate)
		pw.Step(step)
		ps.accum -= step
		ps.steps++
		if ps.AfterStep != nil {
			ps.AfterStep(w, ps.steps)
		}
	}
}

// Steps is the number of fixed steps taken so far.
func (ps *PhysicsSystem) Steps() int {
	if ps == nil {
		return 0
	}
	return ps.steps
}

// Reset drops any banked frame time.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.accum = 0
}
