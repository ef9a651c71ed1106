package system

import (
	"log"

	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
)

// SurfaceCleanupSystem destroys surface entities whose tagging was removed
// from the physics world.
type SurfaceCleanupSystem struct{}

func NewSurfaceCleanupSystem() *SurfaceCleanupSystem { return &SurfaceCleanupSystem{} }

func (s *SurfaceCleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.SurfaceComponent.Kind()) {
		sc, ok := ecs.Get(w, e, component.SurfaceComponent)
		if !ok || sc.Tag == nil || sc.Tag.Alive() {
			continue
		}
		w.DestroyEntity(e)
		log.Printf("surface: destroyed entity %v (%s)", e, sc.Kind)
	}
}
