package system

import (
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
)

// ReticleSystem shows each grapple's last broadcast status on its reticle.
type ReticleSystem struct{}

func NewReticleSystem() *ReticleSystem { return &ReticleSystem{} }

func (s *ReticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.GrappleComponent, component.ReticleComponent, func(_ ecs.Entity, g *component.Grapple, r component.Reticle) {
		if g == nil {
			return
		}
		r.Reticle.OnStatus(g.Status.IsGrappling, g.Status.CanGrapple)
	})
}
