// Package camera follows the player through a level larger than the screen.
package camera

import "math"

// Camera centres the view on a world coordinate and supports zoom.
type Camera struct {
	PosX float64
	PosY float64

	screenW float64
	screenH float64
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// New creates a camera with the given logical screen size and initial zoom.
func New(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	c := &Camera{screenW: float64(screenW), screenH: float64(screenH), zoom: zoom, smooth: 0.15}
	c.PosX = c.screenW / 2.0
	c.PosY = c.screenH / 2.0
	return c
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.screenW/c.zoom/2.0, c.PosY - c.screenH/c.zoom/2.0
}

// ToScreen maps a world point into screen pixels.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	left, top := c.ViewTopLeft()
	return (x - left) * c.zoom, (y - top) * c.zoom
}

// Update moves the camera toward the target world coordinate. Call once per
// tick so smoothing stays frame-rate independent of rendering.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.constrain()
}

// SnapTo places the camera without smoothing, e.g. after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.constrain()
}

func (c *Camera) constrain() {
	// snap to the 1/zoom grid so texels land on whole screen pixels
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom

	c.PosX = clampAxis(c.PosX, c.screenW/c.zoom/2.0, c.worldW)
	c.PosY = clampAxis(c.PosY, c.screenH/c.zoom/2.0, c.worldH)
}

// clampAxis keeps a half-view of size half inside [0, world]. A world
// smaller than the view is centred.
func clampAxis(v, half, world float64) float64 {
	if world <= 0 {
		return v
	}
	lo, hi := half, world-half
	if hi < lo {
		return world / 2.0
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
