package component

import "github.com/milk9111/grapple/reticle"

// Reticle mirrors the grapple status of the entity holding it.
type Reticle struct {
	Reticle *reticle.Reticle
}

var ReticleComponent = NewComponent[Reticle]()
