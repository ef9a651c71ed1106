package grapple

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/common"
)

// ArcOffset is the height above the straight path at progress: zero at both
// ends, ArcHeight at the midpoint.
func ArcOffset(cfg Config, progress float64) float64 {
	if !cfg.EnableArcing {
		return 0
	}
	return cfg.ArcHeight * math.Sin(math.Pi*progress)
}

// ConstantTimeProgress maps elapsed time to [0, 1]. A non-positive
// timeToReach counts as already arrived.
func ConstantTimeProgress(elapsed, timeToReach float64) float64 {
	if timeToReach <= 0 {
		return 1
	}
	return common.Clamp01(elapsed / timeToReach)
}

// ConstantTimePosition returns where the body should be after elapsed
// seconds, and the progress it represents.
func ConstantTimePosition(cfg Config, up, start, target cp.Vector, elapsed float64) (cp.Vector, float64) {
	progress := ConstantTimeProgress(elapsed, cfg.TimeToReach)
	pos := start.Lerp(target, progress).Add(up.Mult(ArcOffset(cfg, progress)))
	return pos, progress
}

// ConstantSpeedProgress projects the distance travelled from start onto the
// start->target line. A zero-length path counts as arrived.
func ConstantSpeedProgress(start, target, pos cp.Vector) float64 {
	path := target.Sub(start)
	length := path.Length()
	if length <= 0 {
		return 1
	}
	along := pos.Sub(start).Dot(path.Mult(1 / length))
	return common.Clamp01(along / length)
}

// ConstantSpeedVelocity heads straight for the target at cfg.Speed and adds
// a proportional vertical correction toward the ideal arc.
func ConstantSpeedVelocity(cfg Config, up, start, target, pos cp.Vector) cp.Vector {
	progress := ConstantSpeedProgress(start, target, pos)

	desired := ArcOffset(cfg, progress)
	current := 0.0
	if cfg.EnableArcing {
		base := start.Lerp(target, progress)
		current = pos.Sub(base).Dot(up)
	}
	vertical := (desired - current) * cfg.VerticalErrorScale

	return unit(target.Sub(pos)).Mult(cfg.Speed).Add(up.Mult(vertical))
}

func unit(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}
