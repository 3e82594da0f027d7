// Package scene is a retained 2D scene graph. Nodes are added by game
// code and drawn in insertion order by a renderer; the scene itself does
// no drawing.
package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stockscape/pkg/math"
)

var (
	// ErrTooFewPoints is returned for polygons with fewer than 3 points
	// or polylines with fewer than 2.
	ErrTooFewPoints = errors.New("scene: too few points")
	// ErrForeignNode is returned when a node does not belong to the scene
	// or has the wrong kind for the operation.
	ErrForeignNode = errors.New("scene: foreign node")
)

// Scene owns every node added to it.
type Scene struct {
	nodes []Node
	owned map[Node]struct{}
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{owned: make(map[Node]struct{})}
}

func (s *Scene) add(n Node) Node {
	s.nodes = append(s.nodes, n)
	s.owned[n] = struct{}{}
	return n
}

// Nodes returns all nodes in draw order.
func (s *Scene) Nodes() []Node {
	return s.nodes
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// VisibleCount returns the number of visible nodes.
func (s *Scene) VisibleCount() int {
	n := 0
	for _, node := range s.nodes {
		if node.Visible() {
			n++
		}
	}
	return n
}

// FillPolygon adds a filled polygon drawn at origin.
func (s *Scene) FillPolygon(origin math.Vec2, pts []math.Vec2, color uint32) (Node, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("fill polygon: %w (%d)", ErrTooFewPoints, len(pts))
	}
	g := &Graphics{
		base:      base{kind: KindGraphics, visible: true},
		Origin:    origin,
		Points:    clonePoints(pts),
		Filled:    true,
		FillColor: color,
	}
	return s.add(g), nil
}

// StrokePolyline adds an open polyline drawn at origin.
func (s *Scene) StrokePolyline(origin math.Vec2, pts []math.Vec2, width float64, color uint32) (Node, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("stroke polyline: %w (%d)", ErrTooFewPoints, len(pts))
	}
	g := &Graphics{
		base:        base{kind: KindGraphics, visible: true},
		Origin:      origin,
		Points:      clonePoints(pts),
		LineWidth:   width,
		StrokeColor: color,
	}
	return s.add(g), nil
}

// GeometryMask derives a clipping mask from a filled Graphics node of
// this scene.
func (s *Scene) GeometryMask(n Node) (*GeometryMask, error) {
	if _, ok := s.owned[n]; !ok {
		return nil, ErrForeignNode
	}
	g, ok := n.(*Graphics)
	if !ok || !g.Filled {
		return nil, fmt.Errorf("%w: mask source must be filled graphics, got %s", ErrForeignNode, n.Kind())
	}
	return &GeometryMask{Polygon: g.WorldPoints()}, nil
}

// TileSprite adds a repeating texture with its top-left corner at x, y.
// A nil mask draws unclipped.
func (s *Scene) TileSprite(x, y, width, height, scale float64, frame string, mask *GeometryMask) (Node, error) {
	if scale <= 0 {
		scale = 1
	}
	t := &TileSprite{
		base:   base{kind: KindTileSprite, visible: true},
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Scale:  scale,
		Frame:  frame,
		Mask:   mask,
	}
	return s.add(t), nil
}

// Image adds a static image centred at x, y.
func (s *Scene) Image(x, y float64, frame string) (Node, error) {
	img := &Image{
		base:  base{kind: KindImage, visible: true},
		X:     x,
		Y:     y,
		Frame: frame,
	}
	return s.add(img), nil
}

// Sprite adds an animated image centred at x, y.
func (s *Scene) Sprite(x, y float64, frames []string, fps float64) (Node, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite: no frames")
	}
	sp := &Sprite{
		base:   base{kind: KindSprite, visible: true},
		X:      x,
		Y:      y,
		Frames: append([]string(nil), frames...),
		FPS:    fps,
	}
	return s.add(sp), nil
}

// Update advances sprite animations by dt seconds.
func (s *Scene) Update(dt float64) {
	for _, n := range s.nodes {
		if sp, ok := n.(*Sprite); ok {
			sp.advance(dt)
		}
	}
}

func clonePoints(pts []math.Vec2) []math.Vec2 {
	return append([]math.Vec2(nil), pts...)
}
