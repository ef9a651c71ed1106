package component

import (
	"image/color"

	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/surface"
)

// Surface is one static box of level geometry. Tag is nil for untagged
// kinds (trigger, backdrop, untagged).
type Surface struct {
	Kind  string
	Rect  physics.Rect
	Tag   *surface.Surface
	Color color.RGBA
}

var SurfaceComponent = NewComponent[Surface]()
