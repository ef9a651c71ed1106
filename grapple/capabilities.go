package grapple

import "github.com/jakecoffman/cp"

// SurfaceInfo describes how a tagged object treats grapple attempts.
type SurfaceInfo interface {
	CanGrapple() bool
	HasTimeLimit() bool
	TimeLimit() float64
}

// Hit is a raycast result. Surface is nil when the hit object carries no
// surface tagging.
type Hit struct {
	Point   cp.Vector
	Surface SurfaceInfo
}

// PhysicsQuery casts rays against the host scene.
type PhysicsQuery interface {
	Raycast(origin, dir cp.Vector, maxDistance float64, layerMask uint32, ignoreTriggers bool) (Hit, bool)
}

// Body is the physical body pulled along by the grapple.
type Body interface {
	Position() cp.Vector
	SetVelocity(v cp.Vector)
	// MoveTo moves the body to p over the next physics step, respecting
	// collisions the way the host does.
	MoveTo(p cp.Vector)
}

// Viewport supplies the aim ray used for target acquisition.
type Viewport interface {
	AimRay() (origin, dir cp.Vector)
}

// UpSource overrides the configured up axis, e.g. when gravity is
// reoriented.
type UpSource interface {
	Up() cp.Vector
}

// Input is the control state sampled once per input tick.
type Input struct {
	Pressed  bool // went down this frame
	Released bool // went up this frame
	Held     bool
}

// Status is broadcast once per input tick.
type Status struct {
	IsGrappling bool
	CanGrapple  bool
}

func surfaceAlive(s SurfaceInfo) bool {
	if s == nil {
		return false
	}
	if a, ok := s.(interface{ Alive() bool }); ok {
		return a.Alive()
	}
	return true
}
