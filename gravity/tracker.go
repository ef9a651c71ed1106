package gravity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrUnknownUpdateMode = errors.New("gravity: unknown update mode")

// UpdateMode picks which loop phase recomputes a tracker's gravity.
type UpdateMode int

const (
	Update UpdateMode = iota
	FixedUpdate
	LateUpdate
)

func (m UpdateMode) String() string {
	switch m {
	case Update:
		return "update"
	case FixedUpdate:
		return "fixed_update"
	case LateUpdate:
		return "late_update"
	default:
		return fmt.Sprintf("update_mode(%d)", int(m))
	}
}

func ParseUpdateMode(s string) (UpdateMode, error) {
	switch s {
	case "update":
		return Update, nil
	case "", "fixed_update":
		return FixedUpdate, nil
	case "late_update":
		return LateUpdate, nil
	}
	return FixedUpdate, fmt.Errorf("%w: %q", ErrUnknownUpdateMode, s)
}

// Body receives the tracked gravity.
type Body interface {
	Position() cp.Vector
	ApplyAcceleration(a cp.Vector)
}

// Tracker sums every source at its body's position and derives the body's
// down and up directions from the result.
type Tracker struct {
	Mode         UpdateMode
	ApplyGravity bool

	manager *Manager
	body    Body

	gravity cp.Vector
	down    cp.Vector
	up      cp.Vector
}

// screenDown is +Y: ebiten's y axis grows downward.
var screenDown = cp.Vector{X: 0, Y: 1}

func NewTracker(m *Manager, body Body, mode UpdateMode, apply bool) *Tracker {
	return &Tracker{
		Mode:         mode,
		ApplyGravity: apply,
		manager:      m,
		body:         body,
		gravity:      screenDown,
		down:         screenDown,
		up:           screenDown.Neg(),
	}
}

// Tick runs the tracker for one loop phase. Gravity is applied to the body
// only in the fixed phase.
func (t *Tracker) Tick(phase UpdateMode) {
	if t == nil {
		return
	}
	if phase == t.Mode {
		t.recompute()
	}
	if phase == FixedUpdate && t.ApplyGravity && t.body != nil {
		t.body.ApplyAcceleration(t.gravity)
	}
}

func (t *Tracker) recompute() {
	if t.manager == nil || t.body == nil {
		return
	}
	pos := t.body.Position()
	sum := cp.Vector{}
	for _, s := range t.manager.sources {
		sum = sum.Add(s.GravityFor(pos))
	}
	t.gravity = sum

	// no pull: keep the last orientation
	l := sum.Length()
	if l == 0 {
		return
	}
	t.down = sum.Mult(1 / l)
	t.up = t.down.Neg()
}

// Manager is the source set the tracker sums.
func (t *Tracker) Manager() *Manager {
	if t == nil {
		return nil
	}
	return t.manager
}

func (t *Tracker) Gravity() cp.Vector { return t.gravity }
func (t *Tracker) Down() cp.Vector    { return t.down }
func (t *Tracker) Up() cp.Vector      { return t.up }
