package reticle

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Sprite is the reticle glyph.
type Sprite int

const (
	SpriteCannotGrapple Sprite = iota // cross
	SpriteCanGrapple                  // ring with crosshair
	SpriteGrappling                   // filled dot
)

type Style struct {
	Sprite Sprite
	Color  color.RGBA
}

// Reticle mirrors the grapple status broadcast on screen.
type Reticle struct {
	Grappling     Style
	CanGrapple    Style
	CannotGrapple Style
	Radius        float64

	current    Style
	grappling  bool
	canGrapple bool
}

func New() *Reticle {
	r := &Reticle{
		Grappling:     Style{Sprite: SpriteGrappling, Color: colornames.Blue},
		CanGrapple:    Style{Sprite: SpriteCanGrapple, Color: colornames.Green},
		CannotGrapple: Style{Sprite: SpriteCannotGrapple, Color: colornames.Red},
		Radius:        8,
	}
	r.OnStatus(false, false)
	return r
}

// OnStatus matches the grapple controller's status listener signature.
func (r *Reticle) OnStatus(isGrappling, canGrapple bool) {
	if r == nil {
		return
	}
	r.grappling, r.canGrapple = isGrappling, canGrapple
	switch {
	case isGrappling:
		r.current = r.Grappling
	case canGrapple:
		r.current = r.CanGrapple
	default:
		r.current = r.CannotGrapple
	}
}

func (r *Reticle) Current() Style {
	if r == nil {
		return Style{}
	}
	return r.current
}

// Restyle takes the styles and radius of from and keeps showing the last
// status received.
func (r *Reticle) Restyle(from *Reticle) {
	if r == nil || from == nil {
		return
	}
	r.Grappling = from.Grappling
	r.CanGrapple = from.CanGrapple
	r.CannotGrapple = from.CannotGrapple
	r.Radius = from.Radius
	r.OnStatus(r.grappling, r.canGrapple)
}
