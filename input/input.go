package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/grapple/grapple"
)

// Mouse samples the grapple button once per frame. The left mouse button
// and the right shoulder of the first gamepad both drive it.
type Mouse struct {
	Button        ebiten.MouseButton
	GamepadButton ebiten.StandardGamepadButton
}

func NewMouse() *Mouse {
	return &Mouse{
		Button:        ebiten.MouseButtonLeft,
		GamepadButton: ebiten.StandardGamepadButtonFrontBottomRight,
	}
}

func (m *Mouse) Poll() grapple.Input {
	in := grapple.Input{
		Pressed:  inpututil.IsMouseButtonJustPressed(m.Button),
		Released: inpututil.IsMouseButtonJustReleased(m.Button),
		Held:     ebiten.IsMouseButtonPressed(m.Button),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		in.Pressed = in.Pressed || inpututil.IsStandardGamepadButtonJustPressed(id, m.GamepadButton)
		in.Released = in.Released || inpututil.IsStandardGamepadButtonJustReleased(id, m.GamepadButton)
		in.Held = in.Held || ebiten.IsStandardGamepadButtonPressed(id, m.GamepadButton)
	}
	return in
}

// Positioner is anything with a world position, usually the player body.
type Positioner interface {
	Position() cp.Vector
}

// CursorAim aims from the player toward the cursor. Camera offset and zoom
// map screen pixels to world units.
type CursorAim struct {
	From Positioner
	CamX float64
	CamY float64
	Zoom float64

	// Cursor overrides ebiten.CursorPosition, for tests.
	Cursor func() (int, int)
}

func (a *CursorAim) CursorWorld() cp.Vector {
	cursor := ebiten.CursorPosition
	if a.Cursor != nil {
		cursor = a.Cursor
	}
	sx, sy := cursor()
	zoom := a.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return cp.Vector{X: a.CamX + float64(sx)/zoom, Y: a.CamY + float64(sy)/zoom}
}

func (a *CursorAim) AimRay() (cp.Vector, cp.Vector) {
	if a == nil || a.From == nil {
		return cp.Vector{}, cp.Vector{}
	}
	origin := a.From.Position()
	return origin, a.CursorWorld().Sub(origin)
}
