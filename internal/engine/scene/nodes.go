package scene

import (
	gomath "math"

	"github.com/Faultbox/stockscape/pkg/math"
)

// Kind identifies the concrete type of a node.
type Kind int

const (
	KindGraphics Kind = iota
	KindTileSprite
	KindImage
	KindSprite
)

func (k Kind) String() string {
	switch k {
	case KindGraphics:
		return "graphics"
	case KindTileSprite:
		return "tilesprite"
	case KindImage:
		return "image"
	case KindSprite:
		return "sprite"
	default:
		return "unknown"
	}
}

// Node is a renderable handle owned by a Scene.
type Node interface {
	Kind() Kind
	Visible() bool
	SetVisible(v bool)
}

// base holds state shared by all nodes.
type base struct {
	kind    Kind
	visible bool
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Visible() bool { return b.visible }
func (b *base) SetVisible(v bool) { b.visible = v }

// Graphics is a filled or stroked polyline drawn relative to Origin.
type Graphics struct {
	base

	Origin math.Vec2
	Points []math.Vec2

	Filled    bool
	FillColor uint32

	LineWidth   float64
	StrokeColor uint32
}

// WorldPoints returns Points translated by Origin.
func (g *Graphics) WorldPoints() []math.Vec2 {
	out := make([]math.Vec2, len(g.Points))
	for i, p := range g.Points {
		out[i] = p.Add(g.Origin)
	}
	return out
}

// TileSprite repeats a texture frame over a rectangle. Width and Height
// are in texture space; the drawn size is multiplied by Scale.
type TileSprite struct {
	base

	X, Y          float64
	Width, Height float64
	Scale         float64
	Frame         string
	Mask          *GeometryMask
}

// Rect returns the world-space rectangle covered by the sprite.
func (t *TileSprite) Rect() math.Rect {
	return math.Rect{X: t.X, Y: t.Y, Width: t.Width * t.Scale, Height: t.Height * t.Scale}
}

// Image is a single texture frame centred on X, Y.
type Image struct {
	base

	X, Y  float64
	Frame string
}

// Sprite is an image cycling through frames at FPS.
type Sprite struct {
	base

	X, Y    float64
	Frames  []string
	FPS     float64
	elapsed float64
}

// Frame returns the frame to draw now.
func (s *Sprite) Frame() string {
	if len(s.Frames) == 0 {
		return ""
	}
	if s.FPS <= 0 {
		return s.Frames[0]
	}
	i := int(gomath.Floor(s.elapsed*s.FPS)) % len(s.Frames)
	return s.Frames[i]
}

func (s *Sprite) advance(dt float64) {
	s.elapsed += dt
}

// GeometryMask clips drawing to the silhouette of a filled shape.
type GeometryMask struct {
	// Polygon is the mask outline in world coordinates.
	Polygon []math.Vec2
}

// Contains reports whether p is inside the mask.
func (m *GeometryMask) Contains(p math.Vec2) bool {
	return math.Contains(m.Polygon, p)
}

// XRange returns the horizontal extent of the mask.
func (m *GeometryMask) XRange() math.Range {
	b, _ := math.BoundsOf(m.Polygon)
	return b.X
}
