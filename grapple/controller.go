package grapple

import (
	"log"

	"github.com/jakecoffman/cp"
)

const (
	// NoExpiry marks a target without a time limit.
	NoExpiry = -1.0
	// NotGrappling is the elapsed time reported while idle.
	NotGrappling = -1.0
)

// State is the controller's position in the grapple state machine.
type State int

const (
	Idle State = iota
	Approaching
	Halted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Approaching:
		return "approaching"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

// Target is the attach point of one grapple episode.
type Target struct {
	// ExpiryTime is the remaining held time before auto-release; <= 0 means
	// no limit.
	ExpiryTime float64
	// Surface is nil for untagged geometry. It is never owned.
	Surface  SurfaceInfo
	Location cp.Vector
}

func noTarget() Target {
	return Target{ExpiryTime: NoExpiry}
}

// Controller owns the grapple state of one actor. It is driven by two tick
// calls from the host loop and is not safe for concurrent use.
type Controller struct {
	cfg    Config
	world  PhysicsQuery
	body   Body
	view   Viewport
	upSrc  UpSource
	logger *log.Logger

	grappling  bool
	reachedEnd bool
	start      cp.Vector
	elapsed    float64
	lockedEnd  cp.Vector
	target     Target

	began    []func()
	finished []func()
	status   []func(isGrappling, canGrapple bool)
}

func NewController(cfg Config, world PhysicsQuery, body Body, view Viewport) *Controller {
	return &Controller{
		cfg:     cfg,
		world:   world,
		body:    body,
		view:    view,
		elapsed: NotGrappling,
		target:  noTarget(),
	}
}

// SetUpSource makes the arc axis follow src instead of Config.Up.
func (c *Controller) SetUpSource(src UpSource) {
	if c == nil {
		return
	}
	c.upSrc = src
}

// SetLogger enables transition logging. Nil silences it.
func (c *Controller) SetLogger(l *log.Logger) {
	if c == nil {
		return
	}
	c.logger = l
}

func (c *Controller) OnBegan(fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.began = append(c.began, fn)
}

func (c *Controller) OnFinished(fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.finished = append(c.finished, fn)
}

func (c *Controller) OnStatus(fn func(isGrappling, canGrapple bool)) {
	if c == nil || fn == nil {
		return
	}
	c.status = append(c.status, fn)
}

func (c *Controller) Config() Config { return c.cfg }

// Viewport is the aim source the controller was built with.
func (c *Controller) Viewport() Viewport { return c.view }

func (c *Controller) State() State {
	switch {
	case !c.grappling:
		return Idle
	case c.reachedEnd:
		return Halted
	default:
		return Approaching
	}
}

func (c *Controller) IsGrappling() bool            { return c.grappling }
func (c *Controller) ReachedEnd() bool             { return c.reachedEnd }
func (c *Controller) ElapsedTime() float64         { return c.elapsed }
func (c *Controller) StartLocation() cp.Vector     { return c.start }
func (c *Controller) LockedEndPosition() cp.Vector { return c.lockedEnd }
func (c *Controller) Target() Target               { return c.target }

// FindTarget casts the aim ray and reports whether the hit can be grappled.
// It has no side effects.
func (c *Controller) FindTarget() (Target, bool) {
	if c == nil || c.world == nil || c.view == nil {
		return noTarget(), false
	}
	origin, dir := c.view.AimRay()
	if dir.LengthSq() == 0 {
		return noTarget(), false
	}

	hit, ok := c.world.Raycast(origin, unit(dir), c.cfg.MaxRange, c.cfg.LayerMask, true)
	if !ok {
		return noTarget(), false
	}

	if hit.Surface != nil {
		if !surfaceAlive(hit.Surface) || !hit.Surface.CanGrapple() {
			return noTarget(), false
		}
		t := Target{ExpiryTime: NoExpiry, Surface: hit.Surface, Location: hit.Point}
		if hit.Surface.HasTimeLimit() && hit.Surface.TimeLimit() > 0 {
			t.ExpiryTime = hit.Surface.TimeLimit()
		}
		return t, true
	}

	if !c.cfg.PermitByDefault {
		return noTarget(), false
	}
	return Target{ExpiryTime: NoExpiry, Location: hit.Point}, true
}

// Attach starts a grapple episode if idle and a target is in sight.
func (c *Controller) Attach() bool {
	if c == nil || c.body == nil || c.grappling {
		return false
	}
	target, ok := c.FindTarget()
	if !ok {
		return false
	}

	c.target = target
	c.start = c.body.Position()
	c.elapsed = 0
	c.grappling = true
	c.reachedEnd = false

	c.logf("grapple: attached at (%.1f, %.1f) expiry=%.2f", target.Location.X, target.Location.Y, target.ExpiryTime)
	for _, fn := range c.began {
		fn()
	}
	return true
}

// Detach ends the current episode. It is a no-op while idle.
func (c *Controller) Detach() bool {
	if c == nil || !c.grappling {
		return false
	}

	c.target = noTarget()
	c.elapsed = NotGrappling
	c.grappling = false
	c.reachedEnd = false

	c.logf("grapple: detached")
	for _, fn := range c.finished {
		fn()
	}
	return true
}

// InputTick runs once per rendered frame. It handles attach/detach edges and
// the held-input time limit, then broadcasts the status pair.
func (c *Controller) InputTick(dt float64, in Input) Status {
	if c == nil {
		return Status{}
	}

	if c.grappling && c.target.Surface != nil && !surfaceAlive(c.target.Surface) {
		c.target.Surface = nil
		c.target.ExpiryTime = NoExpiry
	}

	switch {
	case in.Pressed && !c.grappling:
		c.Attach()
	case in.Released && c.grappling:
		c.Detach()
	case c.grappling && in.Held && c.target.ExpiryTime > 0:
		// counts down only on held ticks
		c.target.ExpiryTime -= dt
		if c.target.ExpiryTime <= 0 {
			c.logf("grapple: time limit expired")
			c.Detach()
		}
	}

	st := Status{IsGrappling: c.grappling}
	if !c.grappling {
		_, st.CanGrapple = c.FindTarget()
	}
	for _, fn := range c.status {
		fn(st.IsGrappling, st.CanGrapple)
	}
	return st
}

// PhysicsTick runs once per fixed simulation step.
func (c *Controller) PhysicsTick(dt float64) {
	if c == nil || c.body == nil || !c.grappling {
		return
	}
	c.elapsed += dt

	if c.reachedEnd {
		c.body.SetVelocity(cp.Vector{})
		c.body.MoveTo(c.lockedEnd)
		return
	}

	pos := c.body.Position()
	halt := c.cfg.HaltDistance
	if c.target.Location.Sub(pos).LengthSq() <= halt*halt {
		c.body.SetVelocity(cp.Vector{})
		c.lock(pos)
		return
	}

	up := c.up()
	switch c.cfg.MovementMode {
	case ConstantSpeed:
		c.body.SetVelocity(ConstantSpeedVelocity(c.cfg, up, c.start, c.target.Location, pos))
	default:
		next, progress := ConstantTimePosition(c.cfg, up, c.start, c.target.Location, c.elapsed)
		c.body.MoveTo(next)
		if progress < 1 {
			return
		}
		// a blocked or deferred move leaves the halt check to a later tick
		if after := c.body.Position(); c.target.Location.Sub(after).LengthSq() <= halt*halt {
			c.lock(after)
		}
	}
}

func (c *Controller) lock(pos cp.Vector) {
	c.lockedEnd = pos
	c.reachedEnd = true
	c.logf("grapple: halted at (%.1f, %.1f)", pos.X, pos.Y)
}

func (c *Controller) up() cp.Vector {
	if c.upSrc != nil {
		if u := c.upSrc.Up(); u.LengthSq() > 0 {
			return unit(u)
		}
	}
	return c.cfg.UpAxis()
}

func (c *Controller) logf(format string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Printf(format, args...)
}
