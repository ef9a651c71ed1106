package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/physics"
)

// PlayerTag marks the entity the grapple tool is attached to.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Body is a dynamic physics body and where it respawns.
type Body struct {
	Body  *physics.Body
	Spawn cp.Vector
}

var BodyComponent = NewComponent[Body]()
