package system

import (
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
)

// RopeSystem shoots the line out when an episode begins and hides it when
// the episode finishes.
type RopeSystem struct {
	Frame float64
}

func NewRopeSystem(frame float64) *RopeSystem {
	return &RopeSystem{Frame: frame}
}

func (s *RopeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Pending() {
		e, ok := evt.Data.(ecs.Entity)
		if !ok {
			continue
		}
		rope, ok := ecs.Get(w, e, component.RopeComponent)
		if !ok {
			continue
		}
		switch evt.Type {
		case ecs.EventGrappleBegan:
			g, ok := ecs.Get(w, e, component.GrappleComponent)
			if !ok || g == nil {
				continue
			}
			rope = component.Rope{Active: true, Anchor: g.Controller.Target().Location, Extending: true}
		case ecs.EventGrappleFinished:
			rope.Active = false
			rope.Extending = false
		default:
			continue
		}
		if err := ecs.Add(w, e, component.RopeComponent, rope); err != nil {
			panic("rope system: update rope: " + err.Error())
		}
	}

	for _, e := range w.Query(component.RopeComponent.Kind()) {
		rope, ok := ecs.Get(w, e, component.RopeComponent)
		if !ok || !rope.Extending {
			continue
		}
		rope.Extend += s.Frame
		if rope.Extend >= component.RopeExtendTime {
			rope.Extend = component.RopeExtendTime
			rope.Extending = false
		}
		if err := ecs.Add(w, e, component.RopeComponent, rope); err != nil {
			panic("rope system: update rope: " + err.Error())
		}
	}
}
