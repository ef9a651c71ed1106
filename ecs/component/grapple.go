package component

import "github.com/milk9111/grapple/grapple"

// Grapple holds a grapple controller and the status its last input tick
// broadcast.
type Grapple struct {
	Controller *grapple.Controller
	Status     grapple.Status
}

var GrappleComponent = NewComponent[*Grapple]()
