package system

import (
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/gravity"
)

// GravitySystem ticks every gravity tracker for one frame phase. The fixed
// phase is driven from PhysicsSystem, once per step.
type GravitySystem struct {
	Phase gravity.UpdateMode
}

func NewGravitySystem(phase gravity.UpdateMode) *GravitySystem {
	return &GravitySystem{Phase: phase}
}

func (s *GravitySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	TickGravity(w, s.Phase)
}

// TickGravity runs phase on every tracker. The grapple path owns the body
// while attached, so gravity is only applied to bodies that are not grappling.
func TickGravity(w *ecs.World, phase gravity.UpdateMode) {
	for _, e := range w.Query(component.GravityTrackerComponent.Kind()) {
		gt, ok := ecs.Get(w, e, component.GravityTrackerComponent)
		if !ok || gt.Tracker == nil {
			continue
		}
		grappling := false
		if g, ok := ecs.Get(w, e, component.GrappleComponent); ok && g != nil && g.Controller != nil {
			grappling = g.Controller.IsGrappling()
		}
		gt.Tracker.ApplyGravity = gt.Apply && !grappling
		gt.Tracker.Tick(phase)
	}
}
