package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/gravity"
	"github.com/milk9111/grapple/prefabs"
	"github.com/milk9111/grapple/surface"
	"golang.org/x/image/colornames"
)

// LoadLevelToWorld adds the level's geometry to the world's physics world and
// creates a bounds entity, one entity per surface box and one per gravity
// source. It returns the gravity manager holding the level's sources.
func LoadLevelToWorld(w *ecs.World, spec *prefabs.LevelSpec) (*gravity.Manager, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: nil spec")
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return nil, fmt.Errorf("level %s: world has no physics", spec.Name)
	}

	manager := gravity.NewManager()
	tags, err := spec.Populate(pw, manager)
	if err != nil {
		return nil, err
	}

	bounds := w.CreateEntity()
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent, component.LevelBounds{
		Name:   spec.Name,
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return nil, err
	}

	for i, s := range spec.Surfaces {
		sc := component.Surface{Kind: s.Kind, Rect: s.Rect(), Tag: tags[i], Color: kindColor(s.Kind, tags[i])}
		if s.Color != nil {
			sc.Color = s.Color.ToRGBA()
		}
		if err := ecs.Add(w, w.CreateEntity(), component.SurfaceComponent, sc); err != nil {
			return nil, err
		}
	}

	for _, src := range manager.Sources() {
		if err := ecs.Add(w, w.CreateEntity(), component.GravitySourceComponent, component.GravitySource{Source: src}); err != nil {
			return nil, err
		}
	}

	log.Printf("level: built %s with %d surfaces, %d gravity sources", spec.Name, len(spec.Surfaces), len(spec.Gravity))
	return manager, nil
}

func kindColor(kind string, s *surface.Surface) color.RGBA {
	switch kind {
	case "trigger":
		return color.RGBA{R: 200, G: 180, B: 40, A: 160}
	case "backdrop":
		return colornames.Slategray
	case "untagged":
		return colornames.Dimgray
	}
	if s == nil {
		return colornames.Seagreen
	}
	switch s.Behaviour {
	case surface.TimedGrapple:
		return colornames.Goldenrod
	case surface.CannotGrapple:
		return colornames.Firebrick
	default:
		return colornames.Seagreen
	}
}

// SurfaceAt returns the live tagged surface whose box contains pt.
func SurfaceAt(w *ecs.World, pt cp.Vector) (*surface.Surface, bool) {
	for _, e := range w.Query(component.SurfaceComponent.Kind()) {
		sc, ok := ecs.Get(w, e, component.SurfaceComponent)
		if !ok || sc.Tag == nil || !sc.Tag.Alive() {
			continue
		}
		r := sc.Rect
		if pt.X >= r.X && pt.X <= r.X+r.W && pt.Y >= r.Y && pt.Y <= r.Y+r.H {
			return sc.Tag, true
		}
	}
	return nil, false
}
