package surface

import (
	"errors"
	"fmt"
)

var ErrUnknownBehaviour = errors.New("surface: unknown behaviour")

// Behaviour says how a surface reacts to the grapple.
type Behaviour int

const (
	CanGrapple Behaviour = iota
	TimedGrapple
	CannotGrapple
)

// DefaultTimeLimit is used by timed surfaces that do not set one.
const DefaultTimeLimit = 10.0

func (b Behaviour) String() string {
	switch b {
	case CanGrapple:
		return "can_grapple"
	case TimedGrapple:
		return "timed_grapple"
	case CannotGrapple:
		return "cannot_grapple"
	default:
		return fmt.Sprintf("behaviour(%d)", int(b))
	}
}

func ParseBehaviour(s string) (Behaviour, error) {
	switch s {
	case "", "can_grapple":
		return CanGrapple, nil
	case "timed_grapple":
		return TimedGrapple, nil
	case "cannot_grapple":
		return CannotGrapple, nil
	}
	return CanGrapple, fmt.Errorf("%w: %q", ErrUnknownBehaviour, s)
}

// Surface tags level geometry for the grapple tool.
type Surface struct {
	Behaviour Behaviour
	Limit     float64
	removed   bool
}

func New(b Behaviour, limit float64) *Surface {
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	return &Surface{Behaviour: b, Limit: limit}
}

func (s *Surface) CanGrapple() bool {
	return s != nil && s.Behaviour != CannotGrapple
}

func (s *Surface) HasTimeLimit() bool {
	return s != nil && s.Behaviour == TimedGrapple
}

func (s *Surface) TimeLimit() float64 {
	if s == nil {
		return 0
	}
	return s.Limit
}

// Remove marks the surface as gone. Holders of a reference see Alive() == false.
func (s *Surface) Remove() {
	if s == nil {
		return
	}
	s.removed = true
}

func (s *Surface) Alive() bool {
	return s != nil && !s.removed
}
