// Package camera provides a side-scrolling 2D camera.
package camera

import (
	"github.com/Faultbox/stockscape/pkg/math"
)

// Camera looks at a rectangle of the world. X and Y are the top-left
// corner of the view in world units.
type Camera struct {
	X, Y float64

	// View size in screen pixels.
	ScreenWidth  float64
	ScreenHeight float64

	// Zoom is screen pixels per world unit.
	Zoom    float64
	MinZoom float64
	MaxZoom float64

	// ScrollSpeed is world units per second at zoom 1.
	ScrollSpeed float64

	// Limits, if set, keeps the view inside these world bounds.
	Limits *math.Bounds
}

// New creates a camera for a screen of the given size.
func New(screenWidth, screenHeight float64) *Camera {
	return &Camera{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Zoom:         1.0,
		MinZoom:      0.1,
		MaxZoom:      4.0,
		ScrollSpeed:  800.0,
	}
}

// WorldView returns the visible world rectangle.
func (c *Camera) WorldView() math.Rect {
	return math.Rect{
		X:      c.X,
		Y:      c.Y,
		Width:  c.ScreenWidth / c.Zoom,
		Height: c.ScreenHeight / c.Zoom,
	}
}

// Resize updates the screen size, keeping the view centre in place.
func (c *Camera) Resize(screenWidth, screenHeight float64) {
	centre := c.Centre()
	c.ScreenWidth = screenWidth
	c.ScreenHeight = screenHeight
	c.CentreOn(centre)
}

// Centre returns the world point at the middle of the view.
func (c *Camera) Centre() math.Vec2 {
	v := c.WorldView()
	return math.Vec2{X: v.X + v.Width/2, Y: v.Y + v.Height/2}
}

// CentreOn moves the view so p is in its middle.
func (c *Camera) CentreOn(p math.Vec2) {
	v := c.WorldView()
	c.X = p.X - v.Width/2
	c.Y = p.Y - v.Height/2
	c.Clamp()
}

// HandleMovement scrolls by direction (-1..1 per axis) over dt seconds.
// Speed is constant in screen space, so it scales with 1/zoom.
func (c *Camera) HandleMovement(right, down, dt float64) {
	speed := c.ScrollSpeed / c.Zoom
	c.X += right * speed * dt
	c.Y += down * speed * dt
	c.Clamp()
}

// HandleZoom scales the zoom by (1 + delta) around the view centre.
func (c *Camera) HandleZoom(delta float64) {
	centre := c.Centre()
	c.Zoom *= 1 + delta
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
	c.CentreOn(centre)
}

// FitToBounds sets the limits and zooms so the bounds' height fills the
// screen, then shows its left edge.
func (c *Camera) FitToBounds(b math.Bounds) {
	c.Limits = &b
	if h := b.Height(); h > 0 {
		c.Zoom = c.ScreenHeight / h
	}
	c.X = b.X.Low
	c.Y = b.Y.Low
	c.Clamp()
}

// WorldToScreen converts a world point to screen pixels.
func (c *Camera) WorldToScreen(p math.Vec2) math.Vec2 {
	return math.Vec2{X: (p.X - c.X) * c.Zoom, Y: (p.Y - c.Y) * c.Zoom}
}

// Clamp keeps the view inside Limits. An axis whose limits are smaller
// than the view is centred instead.
func (c *Camera) Clamp() {
	if c.Limits == nil {
		return
	}
	v := c.WorldView()
	c.X = clampAxis(c.X, v.Width, c.Limits.X)
	c.Y = clampAxis(c.Y, v.Height, c.Limits.Y)
}

func clampAxis(pos, size float64, r math.Range) float64 {
	if r.Span() <= size {
		return r.Low + (r.Span()-size)/2
	}
	if pos < r.Low {
		return r.Low
	}
	if pos+size > r.High {
		return r.High - size
	}
	return pos
}
