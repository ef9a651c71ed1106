// Package session assembles a playable grapple scene: an ECS world over a
// physics world, the level's entities, the player and the system order that
// drives them once per frame. It has no rendering or windowing imports.
package session

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/ecs/entity"
	"github.com/milk9111/grapple/ecs/system"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/gravity"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/prefabs"
	"github.com/milk9111/grapple/reticle"
)

const (
	// PhysicsStep is the fixed simulation step.
	PhysicsStep = 1.0 / 120.0
	// DefaultFrame is one frame at 60 TPS.
	DefaultFrame = 1.0 / 60.0
)

// Options wires host services into a session.
type Options struct {
	// Frame is the duration of one Step. Zero means DefaultFrame.
	Frame float64
	Input system.InputSource
	Aim   func(body *physics.Body) grapple.Viewport
	// Reticle, if set, is attached to the player and kept in sync.
	Reticle *reticle.Reticle
	Logger  *log.Logger
	// AfterStep, if set, runs after every fixed physics step.
	AfterStep func(s *Session, steps int)
}

// Session is one built level with its player.
type Session struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Player    ecs.Entity
	Bounds    component.LevelBounds

	tool    *prefabs.GrappleToolSpec
	level   *prefabs.LevelSpec
	physics *system.PhysicsSystem
	logger  *log.Logger
}

// New builds a session from a tool and a level. Either everything is built
// or an error is returned and nothing is kept.
func New(tool *prefabs.GrappleToolSpec, level *prefabs.LevelSpec, opts Options) (*Session, error) {
	if tool == nil || level == nil {
		return nil, fmt.Errorf("session: nil tool or level")
	}
	frame := opts.Frame
	if frame <= 0 {
		frame = DefaultFrame
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(physics.NewWorld(PhysicsStep))

	manager, err := entity.LoadLevelToWorld(w, level)
	if err != nil {
		return nil, err
	}
	player, err := entity.BuildPlayer(w, entity.Player{
		Spawn:   level.Spawn.Vector(),
		Size:    level.Player,
		Tool:    tool,
		Gravity: manager,
		Aim:     opts.Aim,
		Reticle: opts.Reticle,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	s := &Session{
		World:   w,
		Player:  player,
		Bounds:  component.LevelBounds{Name: level.Name, Width: level.Width, Height: level.Height},
		tool:    tool,
		level:   level,
		physics: system.NewPhysicsSystem(frame),
		logger:  opts.Logger,
	}
	if opts.AfterStep != nil {
		s.physics.AfterStep = func(_ *ecs.World, steps int) { opts.AfterStep(s, steps) }
	}
	s.Scheduler = ecs.NewScheduler(
		system.NewGravitySystem(gravity.Update),
		system.NewGrappleInputSystem(frame, opts.Input),
		s.physics,
		system.NewRopeSystem(frame),
		system.NewReticleSystem(),
		system.NewSurfaceCleanupSystem(),
	)
	return s, nil
}

// Step runs one frame: the update gravity phase, the input tick, the fixed
// physics steps, rope and reticle upkeep. LateStep finishes the frame.
func (s *Session) Step() {
	if s == nil {
		return
	}
	s.Scheduler.Update(s.World)
}

// LateStep runs the late gravity phase, after the host has read positions
// for the frame.
func (s *Session) LateStep() {
	if s == nil {
		return
	}
	system.TickGravity(s.World, gravity.LateUpdate)
}

func (s *Session) Physics() *physics.World { return s.World.PhysicsWorld() }

// Tool is the tool spec the current controller was built from.
func (s *Session) Tool() *prefabs.GrappleToolSpec { return s.tool }

// Level is the level spec the session was built from.
func (s *Session) Level() *prefabs.LevelSpec { return s.level }

// Steps is the number of fixed physics steps taken.
func (s *Session) Steps() int { return s.physics.Steps() }

func (s *Session) grapple() *component.Grapple {
	g, _ := ecs.Get(s.World, s.Player, component.GrappleComponent)
	return g
}

// Controller is the player's grapple controller.
func (s *Session) Controller() *grapple.Controller {
	if g := s.grapple(); g != nil {
		return g.Controller
	}
	return nil
}

// Status is what the last input tick broadcast.
func (s *Session) Status() grapple.Status {
	if g := s.grapple(); g != nil {
		return g.Status
	}
	return grapple.Status{}
}

// Body is the player's physics body.
func (s *Session) Body() *physics.Body {
	b, _ := ecs.Get(s.World, s.Player, component.BodyComponent)
	return b.Body
}

// Tracker is the player's gravity tracker.
func (s *Session) Tracker() *gravity.Tracker {
	gt, _ := ecs.Get(s.World, s.Player, component.GravityTrackerComponent)
	return gt.Tracker
}

// Rope is the player's grapple line.
func (s *Session) Rope() component.Rope {
	r, _ := ecs.Get(s.World, s.Player, component.RopeComponent)
	return r
}

// Respawn detaches the grapple and puts the body back at the spawn point.
func (s *Session) Respawn() {
	if c := s.Controller(); c != nil {
		c.Detach()
	}
	b, ok := ecs.Get(s.World, s.Player, component.BodyComponent)
	if !ok {
		return
	}
	b.Body.Teleport(b.Spawn)
	s.physics.Reset()
}

// RemoveSurfaceAt takes the tagged surface under pt out of the level.
func (s *Session) RemoveSurfaceAt(pt cp.Vector) bool {
	tag, ok := entity.SurfaceAt(s.World, pt)
	if !ok {
		return false
	}
	s.Physics().RemoveSurface(tag)
	return true
}

// SetTool rebuilds the player's grapple from tool. It fails, changing
// nothing, while attached or when tool does not validate.
func (s *Session) SetTool(tool *prefabs.GrappleToolSpec) error {
	if err := entity.RebuildGrapple(s.World, s.Player, tool, s.logger); err != nil {
		return err
	}
	s.tool = tool
	return nil
}

// ToggleMovementMode switches between constant time and constant speed.
func (s *Session) ToggleMovementMode() error {
	next := *s.tool
	switch c := s.Controller(); {
	case c != nil && c.Config().MovementMode == grapple.ConstantSpeed:
		next.MovementMode = "constant_time"
	default:
		next.MovementMode = "constant_speed"
	}
	return s.SetTool(&next)
}

// ToggleArcing flips the tool's arc setting.
func (s *Session) ToggleArcing() error {
	next := *s.tool
	next.Arc.Enabled = !next.Arc.Enabled
	return s.SetTool(&next)
}
