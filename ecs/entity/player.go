package entity

import (
	"errors"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/gravity"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/prefabs"
	"github.com/milk9111/grapple/reticle"
)

// ErrGrappling is returned when the grapple cannot be swapped mid-episode.
var ErrGrappling = errors.New("player: grapple is attached")

const (
	defaultPlayerWidth  = 14
	defaultPlayerHeight = 24
)

// Player describes the grappling actor to build.
type Player struct {
	Spawn   cp.Vector
	Size    prefabs.PlayerSpec
	Tool    *prefabs.GrappleToolSpec
	Gravity *gravity.Manager
	// Aim builds the viewport the controller aims through from the new body.
	Aim     func(body *physics.Body) grapple.Viewport
	Reticle *reticle.Reticle
	Logger  *log.Logger
}

// BuildPlayer creates the player entity with its body, gravity tracker,
// grapple controller, rope and reticle. The tool is validated before anything
// is added to the world.
func BuildPlayer(w *ecs.World, p Player) (ecs.Entity, error) {
	cfg, mode, err := toolSettings(p.Tool)
	if err != nil {
		return 0, err
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("player: world has no physics")
	}

	width, height := p.Size.Width, p.Size.Height
	if width <= 0 {
		width = defaultPlayerWidth
	}
	if height <= 0 {
		height = defaultPlayerHeight
	}
	body := pw.NewBody(p.Spawn, width, height, p.Size.Mass)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent, component.Body{Body: body, Spawn: p.Spawn}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RopeComponent, component.Rope{}); err != nil {
		return 0, err
	}
	if p.Reticle != nil {
		if err := ecs.Add(w, e, component.ReticleComponent, component.Reticle{Reticle: p.Reticle}); err != nil {
			return 0, err
		}
	}

	var view grapple.Viewport
	if p.Aim != nil {
		view = p.Aim(body)
	}
	if err := attachGrapple(w, e, p.Tool, cfg, mode, p.Gravity, view, p.Logger); err != nil {
		return 0, err
	}
	return e, nil
}

// RebuildGrapple swaps the player's controller and tracker for ones built
// from tool, keeping the body where it is. Nothing changes if tool is
// invalid or the current controller is mid-episode.
func RebuildGrapple(w *ecs.World, e ecs.Entity, tool *prefabs.GrappleToolSpec, logger *log.Logger) error {
	cfg, mode, err := toolSettings(tool)
	if err != nil {
		return err
	}
	old, ok := ecs.Get(w, e, component.GrappleComponent)
	if !ok || old == nil {
		return fmt.Errorf("player %v: no grapple", e)
	}
	if old.Controller.IsGrappling() {
		return ErrGrappling
	}
	gt, _ := ecs.Get(w, e, component.GravityTrackerComponent)
	return attachGrapple(w, e, tool, cfg, mode, gt.Tracker.Manager(), old.Controller.Viewport(), logger)
}

func toolSettings(tool *prefabs.GrappleToolSpec) (grapple.Config, gravity.UpdateMode, error) {
	if tool == nil {
		return grapple.Config{}, 0, fmt.Errorf("player: nil grapple tool")
	}
	cfg, err := tool.Config()
	if err != nil {
		return cfg, 0, err
	}
	mode, err := tool.Gravity.Mode()
	if err != nil {
		return cfg, 0, fmt.Errorf("grapple tool: %w", err)
	}
	return cfg, mode, nil
}

func attachGrapple(w *ecs.World, e ecs.Entity, tool *prefabs.GrappleToolSpec, cfg grapple.Config, mode gravity.UpdateMode, m *gravity.Manager, view grapple.Viewport, logger *log.Logger) error {
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return fmt.Errorf("player %v: no body", e)
	}
	tracker := gravity.NewTracker(m, body.Body, mode, tool.Gravity.ApplyGravity())

	ctrl := grapple.NewController(cfg, w.PhysicsWorld(), body.Body, view)
	if tool.Gravity.FollowUp {
		ctrl.SetUpSource(tracker)
	}
	if logger != nil {
		ctrl.SetLogger(logger)
	}
	ctrl.OnBegan(func() { w.Events().Push(ecs.Event{Type: ecs.EventGrappleBegan, Data: e}) })
	ctrl.OnFinished(func() { w.Events().Push(ecs.Event{Type: ecs.EventGrappleFinished, Data: e}) })

	if err := ecs.Add(w, e, component.GravityTrackerComponent, component.GravityTracker{Tracker: tracker, Apply: tool.Gravity.ApplyGravity()}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.GrappleComponent, &component.Grapple{Controller: ctrl}); err != nil {
		return err
	}
	log.Printf("grapple: %s mode=%v range=%.0f", tool.Name, cfg.MovementMode, cfg.MaxRange)
	return nil
}
