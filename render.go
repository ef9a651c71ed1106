package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/grapple/camera"
	"github.com/milk9111/grapple/ecs"
	"github.com/milk9111/grapple/ecs/component"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/reticle"
	"golang.org/x/image/colornames"
)

// drawSurfaces renders every surface entity still in the world. Triggers are
// outlined, everything else filled.
func drawSurfaces(screen *ebiten.Image, w *ecs.World, cam *camera.Camera) {
	zoom := float32(cam.Zoom())
	ecs.ForEach(w, component.SurfaceComponent, func(_ ecs.Entity, sc component.Surface) {
		if sc.Tag != nil && !sc.Tag.Alive() {
			return
		}
		x, y := cam.ToScreen(sc.Rect.X, sc.Rect.Y)
		rw, rh := float32(sc.Rect.W)*zoom, float32(sc.Rect.H)*zoom
		if sc.Kind == "trigger" {
			vector.StrokeRect(screen, float32(x), float32(y), rw, rh, 1, sc.Color, false)
			return
		}
		vector.FillRect(screen, float32(x), float32(y), rw, rh, sc.Color, false)
	})
}

func drawBody(screen *ebiten.Image, b *physics.Body, cam *camera.Camera) {
	if b == nil {
		return
	}
	pos := b.Position()
	w, h := b.Size()
	x, y := cam.ToScreen(pos.X-w/2, pos.Y-h/2)
	zoom := cam.Zoom()
	vector.FillRect(screen, float32(x), float32(y), float32(w*zoom), float32(h*zoom), colornames.Whitesmoke, false)
}

// drawReticle renders the reticle's current style centred on screen x, y.
func drawReticle(screen *ebiten.Image, r *reticle.Reticle, x, y float64) {
	if r == nil || screen == nil {
		return
	}
	cx, cy := float32(x), float32(y)
	rad := float32(r.Radius)
	if rad <= 0 {
		rad = 8
	}
	style := r.Current()
	clr := style.Color

	switch style.Sprite {
	case reticle.SpriteGrappling:
		vector.DrawFilledCircle(screen, cx, cy, rad/2, clr, true)
	case reticle.SpriteCanGrapple:
		vector.StrokeCircle(screen, cx, cy, rad, 2, clr, true)
		vector.StrokeLine(screen, cx-rad*1.5, cy, cx-rad/2, cy, 2, clr, true)
		vector.StrokeLine(screen, cx+rad/2, cy, cx+rad*1.5, cy, 2, clr, true)
		vector.StrokeLine(screen, cx, cy-rad*1.5, cx, cy-rad/2, 2, clr, true)
		vector.StrokeLine(screen, cx, cy+rad/2, cx, cy+rad*1.5, 2, clr, true)
	default:
		vector.StrokeLine(screen, cx-rad, cy-rad, cx+rad, cy+rad, 2, clr, true)
		vector.StrokeLine(screen, cx-rad, cy+rad, cx+rad, cy-rad, 2, clr, true)
	}
}
