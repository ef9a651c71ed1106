package grapple

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestConstantTimeProgress(t *testing.T) {
	cases := []struct {
		name                 string
		elapsed, timeToReach float64
		want                 float64
	}{
		{"start", 0, 2, 0},
		{"half", 1, 2, 0.5},
		{"arrived", 2, 2, 1},
		{"overshoot_clamps", 5, 2, 1},
		{"zero_duration", 0, 0, 1},
		{"negative_duration", 0.3, -1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ConstantTimeProgress(c.elapsed, c.timeToReach); got != c.want {
				t.Fatalf("progress = %v, want %v", got, c.want)
			}
		})
	}
}

func TestArcOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ArcHeight = 4
	if got := ArcOffset(cfg, 0.5); got != 0 {
		t.Fatalf("arcing disabled: offset = %v, want 0", got)
	}

	cfg.EnableArcing = true
	if got := ArcOffset(cfg, 0.5); got != 4 {
		t.Fatalf("midpoint offset = %v, want 4", got)
	}
	for _, p := range []float64{0, 1} {
		if got := ArcOffset(cfg, p); math.Abs(got) > 1e-12 {
			t.Fatalf("offset at %v = %v, want 0", p, got)
		}
	}
	if math.Abs(ArcOffset(cfg, 0.25)-ArcOffset(cfg, 0.75)) > 1e-12 {
		t.Fatalf("arc should be symmetric")
	}
}

func TestConstantTimePositionExactAtArrival(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeToReach = 1.5
	start := cp.Vector{X: -3, Y: 7}
	target := cp.Vector{X: 12.25, Y: -4.5}

	pos, progress := ConstantTimePosition(cfg, DefaultUp, start, target, 1.5)
	if progress != 1 || pos != target {
		t.Fatalf("pos=%v progress=%v, want %v at 1", pos, progress, target)
	}

	pos, _ = ConstantTimePosition(cfg, DefaultUp, start, target, 0)
	if pos != start {
		t.Fatalf("pos at 0 = %v, want %v", pos, start)
	}
}

func TestConstantTimePositionArcs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeToReach = 2
	cfg.EnableArcing = true
	cfg.ArcHeight = 2

	pos, _ := ConstantTimePosition(cfg, DefaultUp, cp.Vector{}, cp.Vector{X: 10}, 1)
	if !near(pos, cp.Vector{X: 5, Y: -2}) {
		t.Fatalf("midpoint = %v, want (5, -2)", pos)
	}
}

func TestConstantSpeedProgress(t *testing.T) {
	start := cp.Vector{X: 0, Y: 0}
	target := cp.Vector{X: 10, Y: 0}
	cases := []struct {
		name   string
		start  cp.Vector
		target cp.Vector
		pos    cp.Vector
		want   float64
	}{
		{"zero_path", target, target, target, 1},
		{"zero_path_elsewhere", start, start, cp.Vector{X: 5}, 1},
		{"at_start", start, target, start, 0},
		{"half", start, target, cp.Vector{X: 5}, 0.5},
		{"off_axis_projects", start, target, cp.Vector{X: 5, Y: 9}, 0.5},
		{"behind_clamps", start, target, cp.Vector{X: -4}, 0},
		{"beyond_clamps", start, target, cp.Vector{X: 14}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ConstantSpeedProgress(c.start, c.target, c.pos)
			if math.IsNaN(got) || math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("progress = %v, want %v", got, c.want)
			}
		})
	}
}

func TestConstantSpeedVelocity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 5
	cfg.VerticalErrorScale = 0.2
	cfg.ArcHeight = 2
	start := cp.Vector{}
	target := cp.Vector{X: 10}

	cases := []struct {
		name   string
		arcing bool
		pos    cp.Vector
		want   cp.Vector
	}{
		{"straight", false, cp.Vector{X: 5}, cp.Vector{X: 5}},
		{"straight_ignores_height", false, cp.Vector{X: 5, Y: -3}, cp.Vector{X: 5 * 5 / math.Hypot(5, 3), Y: 5 * 3 / math.Hypot(5, 3)}},
		{"arc_at_start", true, start, cp.Vector{X: 5}},
		{"arc_below_curve", true, cp.Vector{X: 5}, cp.Vector{X: 5, Y: -0.4}},
		{"arc_on_curve", true, cp.Vector{X: 5, Y: -2}, cp.Vector{X: 5 * 5 / math.Hypot(5, 2), Y: 5 * 2 / math.Hypot(5, 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg.EnableArcing = c.arcing
			got := ConstantSpeedVelocity(cfg, DefaultUp, start, target, c.pos)
			if d := got.Sub(c.want).Length(); d > 1e-9 {
				t.Fatalf("velocity = %v, want %v", got, c.want)
			}
		})
	}
}
