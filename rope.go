package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/grapple/camera"
	"github.com/milk9111/grapple/common"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/input"
	"golang.org/x/image/colornames"
)

// drawRope draws the grapple line from the body. It grows toward the anchor
// while extending and gets an end cap once it is fully out.
func drawRope(screen *ebiten.Image, r component.Rope, from input.Positioner, cam *camera.Camera) {
	if !r.Active || from == nil {
		return
	}
	pos := from.Position()
	px, py := cam.ToScreen(pos.X, pos.Y)
	tx, ty := cam.ToScreen(r.Anchor.X, r.Anchor.Y)

	t := r.Progress()
	ix := common.Lerp(px, tx, t)
	iy := common.Lerp(py, ty, t)
	vector.StrokeLine(screen, float32(px), float32(py), float32(ix), float32(iy), 3, colornames.Lightgrey, true)
	if !r.Extending {
		vector.DrawFilledCircle(screen, float32(tx), float32(ty), 3, colornames.Lightgrey, true)
	}
}
