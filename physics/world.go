package physics

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/surface"
)

// Collision categories. Level geometry defaults to CategorySolid.
const (
	CategorySolid uint32 = 1 << iota
	CategoryActor
	CategoryTrigger
	CategoryBackdrop
)

// actorGroup keeps the actor's own shapes out of its raycasts.
const actorGroup uint = 1

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) bb() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// World owns the Chipmunk space and the shape -> surface registry used to
// resolve grapple raycasts.
type World struct {
	space *cp.Space
	step  float64

	surfaces map[*cp.Shape]*surface.Surface
	shapes   map[*surface.Surface]*cp.Shape
	triggers map[*cp.Shape]struct{}
}

// NewWorld creates an empty space advanced in fixed steps of step seconds.
// Gravity is applied per body by gravity trackers, so the space has none.
func NewWorld(step float64) *World {
	if step <= 0 {
		step = 1.0 / 60.0
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return &World{
		space:    space,
		step:     step,
		surfaces: make(map[*cp.Shape]*surface.Surface),
		shapes:   make(map[*surface.Surface]*cp.Shape),
		triggers: make(map[*cp.Shape]struct{}),
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// StepSize is the fixed simulation step in seconds.
func (w *World) StepSize() float64 {
	if w == nil {
		return 0
	}
	return w.step
}

// Step advances the simulation by dt.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil || dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// AddSolid adds untagged static geometry. A zero category means CategorySolid.
func (w *World) AddSolid(r Rect, category uint32) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	if category == 0 {
		category = CategorySolid
	}
	shape := cp.NewBox2(w.space.StaticBody, r.bb(), 0)
	shape.SetFriction(0.8)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(category), Mask: cp.ALL_CATEGORIES})
	w.space.AddShape(shape)
	return shape
}

// AddSurface adds static geometry tagged with s.
func (w *World) AddSurface(r Rect, s *surface.Surface, category uint32) *cp.Shape {
	shape := w.AddSolid(r, category)
	if shape == nil || s == nil {
		return shape
	}
	w.surfaces[shape] = s
	w.shapes[s] = shape
	return shape
}

// AddTrigger adds a trigger box. Its mask only admits the trigger category,
// so bodies pass through it while queries still see it.
func (w *World) AddTrigger(r Rect) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	shape := cp.NewBox2(w.space.StaticBody, r.bb(), 0)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(CategoryTrigger), Mask: uint(CategoryTrigger)})
	w.space.AddShape(shape)
	w.triggers[shape] = struct{}{}
	return shape
}

// RemoveSurface takes tagged geometry out of the space and marks the surface
// removed so outstanding references see it gone.
func (w *World) RemoveSurface(s *surface.Surface) {
	if w == nil || s == nil {
		return
	}
	shape, ok := w.shapes[s]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.shapes, s)
	delete(w.surfaces, shape)
	s.Remove()
	log.Printf("physics: removed surface %v", s.Behaviour)
}

// Surface returns the surface tagging shape, if any.
func (w *World) Surface(shape *cp.Shape) (*surface.Surface, bool) {
	if w == nil || shape == nil {
		return nil, false
	}
	s, ok := w.surfaces[shape]
	return s, ok
}

// IsTrigger reports whether shape was added with AddTrigger.
func (w *World) IsTrigger(shape *cp.Shape) bool {
	if w == nil || shape == nil {
		return false
	}
	_, ok := w.triggers[shape]
	return ok
}

// Raycast returns the nearest shape hit along dir within maxDistance.
// layerMask selects collision categories, zero meaning all.
func (w *World) Raycast(origin, dir cp.Vector, maxDistance float64, layerMask uint32, ignoreTriggers bool) (grapple.Hit, bool) {
	if w == nil || w.space == nil || maxDistance <= 0 || dir.LengthSq() == 0 {
		return grapple.Hit{}, false
	}

	mask := cp.ALL_CATEGORIES
	if layerMask != 0 {
		mask = uint(layerMask)
	}
	filter := cp.ShapeFilter{Group: actorGroup, Categories: cp.ALL_CATEGORIES, Mask: mask}
	end := origin.Add(dir.Normalize().Mult(maxDistance))

	var (
		best      *cp.Shape
		bestPoint cp.Vector
		bestAlpha = 2.0
	)
	w.space.SegmentQuery(origin, end, 0, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		if ignoreTriggers && w.IsTrigger(shape) {
			return
		}
		if alpha < bestAlpha {
			best = shape
			bestPoint = point
			bestAlpha = alpha
		}
	}, nil)

	if best == nil {
		return grapple.Hit{}, false
	}
	hit := grapple.Hit{Point: bestPoint}
	if s, ok := w.surfaces[best]; ok {
		hit.Surface = s
	}
	return hit, true
}
