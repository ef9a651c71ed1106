package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/common"
)

// RopeExtendTime is how long the line takes to shoot out to the target.
const RopeExtendTime = 0.12

// Rope is the visible grapple line.
type Rope struct {
	Active    bool
	Anchor    cp.Vector
	Extend    float64
	Extending bool
}

// Progress is how far the line has shot out, 0 to 1.
func (r Rope) Progress() float64 {
	return common.Clamp01(r.Extend / RopeExtendTime)
}

var RopeComponent = NewComponent[Rope]()
