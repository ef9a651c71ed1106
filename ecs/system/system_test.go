package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/gravity"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/reticle"
	"github.com/milk9111/grapple/surface"
)

const step = 1.0 / 120.0

type fixedAim struct {
	from *physics.Body
}

func (a fixedAim) AimRay() (cp.Vector, cp.Vector) {
	return a.from.Position(), cp.Vector{X: 1}
}

type press struct {
	in grapple.Input
}

func (p *press) Poll() grapple.Input { return p.in }

// rig is a world with one grappling body aimed at a tagged wall at x=100.
type rig struct {
	w       *ecs.World
	e       ecs.Entity
	body    *physics.Body
	ctrl    *grapple.Controller
	tracker *gravity.Tracker
}

func newRig(t *testing.T) rig {
	t.Helper()
	w := ecs.NewWorld()
	pw := physics.NewWorld(step)
	w.SetPhysicsWorld(pw)
	pw.AddSurface(physics.Rect{X: 100, Y: -50, W: 10, H: 100}, surface.New(surface.CanGrapple, 0), physics.CategorySolid)

	body := pw.NewBody(cp.Vector{}, 14, 24, 1)
	tracker := gravity.NewTracker(gravity.NewManager(&gravity.Directional{Acceleration: cp.Vector{Y: 900}}), body, gravity.FixedUpdate, true)
	cfg := grapple.DefaultConfig()
	cfg.TimeToReach = 0.5
	cfg.HaltDistance = 16
	cfg.MaxRange = 400
	ctrl := grapple.NewController(cfg, pw, body, fixedAim{from: body})

	e := w.CreateEntity()
	ctrl.OnBegan(func() { w.Events().Push(ecs.Event{Type: ecs.EventGrappleBegan, Data: e}) })
	ctrl.OnFinished(func() { w.Events().Push(ecs.Event{Type: ecs.EventGrappleFinished, Data: e}) })
	for _, err := range []error{
		ecs.Add(w, e, component.BodyComponent, component.Body{Body: body}),
		ecs.Add(w, e, component.GravityTrackerComponent, component.GravityTracker{Tracker: tracker, Apply: true}),
		ecs.Add(w, e, component.GrappleComponent, &component.Grapple{Controller: ctrl}),
		ecs.Add(w, e, component.RopeComponent, component.Rope{}),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	return rig{w: w, e: e, body: body, ctrl: ctrl, tracker: tracker}
}

func TestTickGravitySuspendsWhileGrappling(t *testing.T) {
	r := newRig(t)

	TickGravity(r.w, gravity.FixedUpdate)
	if !r.tracker.ApplyGravity {
		t.Fatalf("idle body should receive gravity")
	}

	r.ctrl.Attach()
	TickGravity(r.w, gravity.FixedUpdate)
	if r.tracker.ApplyGravity {
		t.Fatalf("grappling body received gravity")
	}

	r.ctrl.Detach()
	TickGravity(r.w, gravity.FixedUpdate)
	if !r.tracker.ApplyGravity {
		t.Fatalf("gravity not restored after detach")
	}
}

func TestPhysicsSystemSteps(t *testing.T) {
	cases := []struct {
		name      string
		frame     float64
		frames    int
		wantSteps int
	}{
		{"two_steps_per_frame", 1.0 / 60.0, 3, 6},
		{"stall_is_capped", 1, 1, int(DefaultMaxFrame / step)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			ps := NewPhysicsSystem(c.frame)
			var seen int
			ps.AfterStep = func(_ *ecs.World, steps int) { seen = steps }
			for i := 0; i < c.frames; i++ {
				ps.Update(r.w)
			}
			// float rounding may bank the final step for the next frame
			if got := ps.Steps(); got < c.wantSteps-1 || got > c.wantSteps {
				t.Fatalf("steps = %d, want %d", got, c.wantSteps)
			}
			if seen != ps.Steps() {
				t.Fatalf("AfterStep saw %d of %d steps", seen, ps.Steps())
			}
		})
	}
}

func TestGrappleInputAndRope(t *testing.T) {
	r := newRig(t)
	in := &press{in: grapple.Input{Pressed: true, Held: true}}
	input := NewGrappleInputSystem(1.0/60.0, in)
	rope := NewRopeSystem(0.1)

	input.Update(r.w)
	rope.Update(r.w)
	g, _ := ecs.Get(r.w, r.e, component.GrappleComponent)
	if !g.Status.IsGrappling {
		t.Fatalf("status not recorded: %+v", g.Status)
	}
	rc, _ := ecs.Get(r.w, r.e, component.RopeComponent)
	if !rc.Active || !rc.Extending || rc.Anchor != r.ctrl.Target().Location {
		t.Fatalf("rope = %+v", rc)
	}

	// no scheduler here, so clear the pass's events by hand
	r.w.Events().Drain()
	in.in = grapple.Input{Held: true}
	input.Update(r.w)
	rope.Update(r.w)
	rc, _ = ecs.Get(r.w, r.e, component.RopeComponent)
	if rc.Extending || rc.Progress() != 1 {
		t.Fatalf("rope should be fully out after 0.2s: %+v", rc)
	}

	in.in = grapple.Input{Released: true}
	input.Update(r.w)
	rope.Update(r.w)
	rc, _ = ecs.Get(r.w, r.e, component.RopeComponent)
	if rc.Active {
		t.Fatalf("rope still active after release")
	}
}

func TestReticleSystemFollowsStatus(t *testing.T) {
	r := newRig(t)
	ret := reticle.New()
	if err := ecs.Add(r.w, r.e, component.ReticleComponent, component.Reticle{Reticle: ret}); err != nil {
		t.Fatal(err)
	}

	NewGrappleInputSystem(1.0/60.0, &press{}).Update(r.w)
	NewReticleSystem().Update(r.w)
	if ret.Current().Sprite != reticle.SpriteCanGrapple {
		t.Fatalf("idle aimed at wall: sprite = %v", ret.Current().Sprite)
	}

	r.ctrl.Attach()
	NewGrappleInputSystem(1.0/60.0, &press{in: grapple.Input{Held: true}}).Update(r.w)
	NewReticleSystem().Update(r.w)
	if ret.Current().Sprite != reticle.SpriteGrappling {
		t.Fatalf("attached: sprite = %v", ret.Current().Sprite)
	}
}

func TestSurfaceCleanup(t *testing.T) {
	w := ecs.NewWorld()
	live := surface.New(surface.CanGrapple, 0)
	gone := surface.New(surface.CanGrapple, 0)
	gone.Remove()
	for _, sc := range []component.Surface{{Kind: "can_grapple", Tag: live}, {Kind: "can_grapple", Tag: gone}, {Kind: "untagged"}} {
		if err := ecs.Add(w, w.CreateEntity(), component.SurfaceComponent, sc); err != nil {
			t.Fatal(err)
		}
	}

	NewSurfaceCleanupSystem().Update(w)
	left := w.Query(component.SurfaceComponent.Kind())
	if len(left) != 2 {
		t.Fatalf("surfaces left = %d, want 2", len(left))
	}
	for _, e := range left {
		if sc, _ := ecs.Get(w, e, component.SurfaceComponent); sc.Tag == gone {
			t.Fatalf("removed surface kept")
		}
	}
}
