package system

import (
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/grapple"
)

// InputSource samples the grapple button once per frame.
type InputSource interface {
	Poll() grapple.Input
}

// GrappleInputSystem runs every controller's input tick.
type GrappleInputSystem struct {
	Frame float64
	Input InputSource
}

func NewGrappleInputSystem(frame float64, in InputSource) *GrappleInputSystem {
	return &GrappleInputSystem{Frame: frame, Input: in}
}

func (s *GrappleInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	var in grapple.Input
	if s.Input != nil {
		in = s.Input.Poll()
	}
	ecs.ForEach(w, component.GrappleComponent, func(_ ecs.Entity, g *component.Grapple) {
		if g == nil || g.Controller == nil {
			return
		}
		g.Status = g.Controller.InputTick(s.Frame, in)
	})
}
