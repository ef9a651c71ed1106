package grapple

import "github.com/jakecoffman/cp"

type fakeSurface struct {
	canGrapple bool
	timed      bool
	limit      float64
	dead       bool
}

func (s *fakeSurface) CanGrapple() bool   { return s.canGrapple }
func (s *fakeSurface) HasTimeLimit() bool { return s.timed }
func (s *fakeSurface) TimeLimit() float64 { return s.limit }
func (s *fakeSurface) Alive() bool        { return !s.dead }

type rayCall struct {
	origin, dir    cp.Vector
	maxDistance    float64
	layerMask      uint32
	ignoreTriggers bool
}

type fakeWorld struct {
	hit   *Hit
	calls []rayCall
}

func (w *fakeWorld) Raycast(origin, dir cp.Vector, maxDistance float64, layerMask uint32, ignoreTriggers bool) (Hit, bool) {
	w.calls = append(w.calls, rayCall{origin, dir, maxDistance, layerMask, ignoreTriggers})
	if w.hit == nil {
		return Hit{}, false
	}
	return *w.hit, true
}

// fakeBody applies moves immediately unless blocked.
type fakeBody struct {
	pos     cp.Vector
	vel     cp.Vector
	moves   int
	blocked bool
}

func (b *fakeBody) Position() cp.Vector     { return b.pos }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.vel = v }
func (b *fakeBody) MoveTo(p cp.Vector) {
	b.moves++
	if b.blocked {
		return
	}
	b.pos = p
}

// integrate advances the body by its velocity, standing in for a physics step.
func (b *fakeBody) integrate(dt float64) {
	b.pos = b.pos.Add(b.vel.Mult(dt))
}

type fakeView struct {
	origin, dir cp.Vector
}

func (v fakeView) AimRay() (cp.Vector, cp.Vector) { return v.origin, v.dir }

type fixedUp cp.Vector

func (u fixedUp) Up() cp.Vector { return cp.Vector(u) }

type counter struct {
	began, finished int
	statuses        []Status
}

func (c *counter) listen(ctrl *Controller) {
	ctrl.OnBegan(func() { c.began++ })
	ctrl.OnFinished(func() { c.finished++ })
	ctrl.OnStatus(func(isGrappling, canGrapple bool) {
		c.statuses = append(c.statuses, Status{IsGrappling: isGrappling, CanGrapple: canGrapple})
	})
}

func newRig(cfg Config, hit *Hit) (*Controller, *fakeWorld, *fakeBody, *counter) {
	w := &fakeWorld{hit: hit}
	b := &fakeBody{}
	ctrl := NewController(cfg, w, b, fakeView{dir: cp.Vector{X: 1}})
	cnt := &counter{}
	cnt.listen(ctrl)
	return ctrl, w, b, cnt
}

func near(a, b cp.Vector) bool {
	const eps = 1e-9
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y < eps*eps
}
