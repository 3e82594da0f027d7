package terrain

import (
	"errors"

	"github.com/Faultbox/stockscape/internal/engine/physics"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/pkg/math"
)

var errEngine = errors.New("engine failure")

type fakeNode struct {
	kind    scene.Kind
	visible bool
	writes  int
}

func (n *fakeNode) Kind() scene.Kind { return n.kind }
func (n *fakeNode) Visible() bool { return n.visible }
func (n *fakeNode) SetVisible(v bool) {
	n.visible = v
	n.writes++
}

type tileCall struct {
	x, y, w, h, scale float64
	frame             string
	mask              *scene.GeometryMask
}

type fakeRenderer struct {
	fills   [][]math.Vec2
	strokes [][]math.Vec2
	origins []math.Vec2
	tiles   []tileCall
	images  []math.Vec2
	sprites []math.Vec2
	mask    *scene.GeometryMask

	failTiles bool
}

func (r *fakeRenderer) FillPolygon(origin math.Vec2, pts []math.Vec2, color uint32) (scene.Node, error) {
	r.fills = append(r.fills, pts)
	r.origins = append(r.origins, origin)
	return &fakeNode{kind: scene.KindGraphics, visible: true}, nil
}

func (r *fakeRenderer) StrokePolyline(origin math.Vec2, pts []math.Vec2, width float64, color uint32) (scene.Node, error) {
	r.strokes = append(r.strokes, pts)
	r.origins = append(r.origins, origin)
	return &fakeNode{kind: scene.KindGraphics, visible: true}, nil
}

func (r *fakeRenderer) GeometryMask(n scene.Node) (*scene.GeometryMask, error) {
	r.mask = &scene.GeometryMask{}
	return r.mask, nil
}

func (r *fakeRenderer) TileSprite(x, y, w, h, scale float64, frame string, mask *scene.GeometryMask) (scene.Node, error) {
	if r.failTiles {
		return nil, errEngine
	}
	r.tiles = append(r.tiles, tileCall{x, y, w, h, scale, frame, mask})
	return &fakeNode{kind: scene.KindTileSprite, visible: true}, nil
}

func (r *fakeRenderer) Image(x, y float64, frame string) (scene.Node, error) {
	r.images = append(r.images, math.Vec2{X: x, Y: y})
	return &fakeNode{kind: scene.KindImage, visible: true}, nil
}

func (r *fakeRenderer) Sprite(x, y float64, frames []string, fps float64) (scene.Node, error) {
	r.sprites = append(r.sprites, math.Vec2{X: x, Y: y})
	return &fakeNode{kind: scene.KindSprite, visible: true}, nil
}

// fakeBody mimics an engine that centres a body on a centre of mass
// offset from the loop origin by com.
type fakeBody struct {
	label string
	pos   math.Vec2
	com   math.Vec2
	size  math.Vec2
}

func (b *fakeBody) Label() string { return b.label }
func (b *fakeBody) Position() math.Vec2 { return b.pos }
func (b *fakeBody) SetPosition(p math.Vec2) { b.pos = p }
func (b *fakeBody) Bounds() math.Bounds {
	lo := b.pos.Sub(b.com)
	return math.Bounds{
		X: math.Range{Low: lo.X, High: lo.X + b.size.X},
		Y: math.Range{Low: lo.Y, High: lo.Y + b.size.Y},
	}
}

type fakePhysics struct {
	com    math.Vec2
	calls  int
	pos    math.Vec2
	opts   physics.BodyOptions
	loops  [][]math.Vec2
	body   *fakeBody
	failed bool
}

func (p *fakePhysics) StaticFromVertices(pos math.Vec2, loops [][]math.Vec2, opts physics.BodyOptions) (physics.Body, error) {
	p.calls++
	if p.failed {
		return nil, errEngine
	}
	p.pos, p.opts, p.loops = pos, opts, loops
	b, _ := math.BoundsOf(loops...)
	p.body = &fakeBody{label: opts.Label, pos: pos, com: p.com, size: math.Vec2{X: b.Width(), Y: b.Height()}}
	return p.body, nil
}

type fixedView math.Rect

func (v fixedView) WorldView() math.Rect { return math.Rect(v) }
