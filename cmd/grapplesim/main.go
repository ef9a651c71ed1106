// Command grapplesim runs one grapple episode headless against a level
// prefab and prints the body's path, one line per fixed step.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/prefabs"
	"github.com/milk9111/grapple/session"
)

const frameTime = 1.0 / 60.0

// fixedAim aims from the body at a fixed world point.
type fixedAim struct {
	from *physics.Body
	at   cp.Vector
}

func (a fixedAim) AimRay() (cp.Vector, cp.Vector) {
	origin := a.from.Position()
	return origin, a.at.Sub(origin)
}

// script holds the button for a number of frames, then releases it.
type script struct {
	frame, hold int
}

func (s *script) Poll() grapple.Input {
	f := s.frame
	s.frame++
	return grapple.Input{Held: f < s.hold, Pressed: f == 0, Released: f == s.hold}
}

func main() {
	levelName := flag.String("level", "", "level prefab (default level.yaml)")
	mode := flag.String("mode", "", "override movement mode: constant_time or constant_speed")
	aimX := flag.Float64("x", 260, "aim point x")
	aimY := flag.Float64("y", 88, "aim point y")
	hold := flag.Float64("hold", 2, "seconds to hold the grapple input")
	every := flag.Int("every", 6, "print every Nth physics step")
	verbose := flag.Bool("v", false, "log controller transitions")
	flag.Parse()

	tool, err := prefabs.LoadGrappleToolSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *mode != "" {
		tool.MovementMode = *mode
	}
	lvl, err := prefabs.LoadLevelSpec(*levelName)
	if err != nil {
		log.Fatal(err)
	}

	frames := int(*hold/frameTime) + 1
	opts := session.Options{
		Frame: frameTime,
		Input: &script{hold: frames},
		Aim: func(b *physics.Body) grapple.Viewport {
			return fixedAim{from: b, at: cp.Vector{X: *aimX, Y: *aimY}}
		},
		AfterStep: func(s *session.Session, steps int) {
			if *every <= 0 || steps%*every != 0 {
				return
			}
			pos := s.Body().Position()
			fmt.Printf("%6.3f  %-11v  (%7.2f, %7.2f)\n", float64(steps)*session.PhysicsStep, s.Controller().State(), pos.X, pos.Y)
		},
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", 0)
	}
	sess, err := session.New(tool, lvl, opts)
	if err != nil {
		log.Fatal(err)
	}

	ctrl := sess.Controller()
	target, ok := ctrl.FindTarget()
	if !ok {
		fmt.Printf("no grapple target toward (%.1f, %.1f)\n", *aimX, *aimY)
		os.Exit(1)
	}
	fmt.Printf("target (%.1f, %.1f) expiry %.2f mode %v\n", target.Location.X, target.Location.Y, target.ExpiryTime, ctrl.Config().MovementMode)

	for f := 0; f <= frames; f++ {
		sess.Step()
		sess.LateStep()
		if !ctrl.IsGrappling() && f > 0 {
			break
		}
	}
	pos := sess.Body().Position()
	fmt.Printf("final state %v at (%.2f, %.2f)\n", ctrl.State(), pos.X, pos.Y)
}
