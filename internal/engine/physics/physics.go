// Package physics wraps a Chipmunk2D space for static terrain bodies.
package physics

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/pkg/math"
)

// ErrNoGeometry is returned when no loop survives cleanup.
var ErrNoGeometry = errors.New("physics: no usable geometry")

// CollisionTerrain is the collision type given to terrain shapes.
const CollisionTerrain cp.CollisionType = 1

// BodyOptions controls how vertex loops become a static body.
type BodyOptions struct {
	Label    string
	Friction float64
	Sensor   bool

	// FlagInternal records the neighbours of every segment so contacts
	// do not catch on the joints between them.
	FlagInternal bool
	// RemoveCollinear is the angle in radians below which a vertex is
	// dropped as collinear. Zero keeps every vertex.
	RemoveCollinear float64
	// MinimumArea drops loops with a smaller area.
	MinimumArea float64
}

// Body is a rigid body handle.
type Body interface {
	Label() string
	Position() math.Vec2
	Bounds() math.Bounds
	SetPosition(p math.Vec2)
}

// World owns the physics space.
type World struct {
	space  *cp.Space
	bodies []*StaticBody
	joints map[*cp.Shape]joint
	log    *zap.Logger
}

// jointTolerance is how close a contact must be to a segment end to be
// treated as touching the joint.
const jointTolerance = 0.5

// minJointDot is the smallest |cos| between a contact normal and a face
// normal for the contact to count as hitting that face.
const minJointDot = 0.5

// joint holds the unit normals around one terrain segment.
type joint struct {
	normal, prev, next math.Vec2
}

// catches reports whether a contact at p with unit normal n sits on a
// joint between a and b at an angle that neither adjoining face allows.
func (j joint) catches(a, b, p, n math.Vec2) bool {
	var other math.Vec2
	switch {
	case p.Distance(a) <= jointTolerance:
		other = j.prev
	case p.Distance(b) <= jointTolerance:
		other = j.next
	default:
		return false
	}
	return gomath.Abs(n.Dot(j.normal)) < minJointDot && gomath.Abs(n.Dot(other)) < minJointDot
}

func segmentNormal(a, b math.Vec2) math.Vec2 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return math.Vec2{}
	}
	return math.Vec2{X: -d.Y / l, Y: d.X / l}
}

// NewWorld creates a space with the given gravity.
func NewWorld(gravity math.Vec2, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	space := cp.NewSpace()
	space.SetGravity(toVector(gravity))
	w := &World{space: space, joints: make(map[*cp.Shape]joint), log: log}
	handler := space.NewWildcardCollisionHandler(CollisionTerrain)
	handler.PreSolveFunc = w.preSolve
	return w
}

// preSolve drops contacts that land on an internal joint of a terrain
// body flagged with FlagInternal.
func (w *World) preSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	set := arb.ContactPointSet()
	n := fromVector(set.Normal)
	for i := 0; i < set.Count; i++ {
		if w.catches(a, fromVector(set.Points[i].PointA), n) || w.catches(b, fromVector(set.Points[i].PointB), n) {
			return false
		}
	}
	return true
}

func (w *World) catches(s *cp.Shape, p, n math.Vec2) bool {
	j, ok := w.joints[s]
	if !ok {
		return false
	}
	seg := s.Class.(*cp.Segment)
	return j.catches(fromVector(seg.TransformA()), fromVector(seg.TransformB()), p, n)
}

// Bodies returns every body created by the world.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = b
	}
	return out
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// StaticFromVertices builds one static body from vertex loops. The loop
// vertices are re-centred on their combined area centroid, which is
// placed at pos.
func (w *World) StaticFromVertices(pos math.Vec2, loops [][]math.Vec2, opts BodyOptions) (Body, error) {
	var (
		kept      [][]math.Vec2
		areaSum   float64
		weighted  math.Vec2
		dropped   int
		collinear int
	)
	for _, loop := range loops {
		clean := RemoveCollinear(loop, opts.RemoveCollinear)
		collinear += len(loop) - len(clean)
		area := math.Area(clean)
		if len(clean) < 3 || area < opts.MinimumArea {
			dropped++
			continue
		}
		kept = append(kept, clean)
		areaSum += area
		weighted = weighted.Add(math.Centroid(clean).Scale(area))
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %d loops dropped", ErrNoGeometry, dropped)
	}
	centroid := weighted.Scale(1 / areaSum)

	body := cp.NewStaticBody()
	body.UserData = opts.Label
	body.SetPosition(toVector(pos))
	w.space.AddBody(body)

	sb := &StaticBody{world: w, body: body, label: opts.Label}
	for _, loop := range kept {
		n := len(loop)
		for i := range loop {
			a, b := loop[i], loop[(i+1)%n]
			shape := cp.NewSegment(body, toVector(a.Sub(centroid)), toVector(b.Sub(centroid)), 0)
			if opts.FlagInternal {
				w.joints[shape] = joint{
					normal: segmentNormal(a, b),
					prev:   segmentNormal(loop[(i+n-1)%n], a),
					next:   segmentNormal(b, loop[(i+2)%n]),
				}
			}
			shape.SetFriction(opts.Friction)
			shape.SetSensor(opts.Sensor)
			shape.SetCollisionType(CollisionTerrain)
			w.space.AddShape(shape)
			sb.shapes = append(sb.shapes, shape)
		}
	}
	w.bodies = append(w.bodies, sb)

	w.log.Debug("static body created",
		zap.String("label", opts.Label),
		zap.Int("loops", len(kept)),
		zap.Int("segments", len(sb.shapes)),
		zap.Int("collinear_removed", collinear),
		zap.Int("loops_dropped", dropped),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
	)
	return sb, nil
}

// StaticBody is a static body made of segment shapes.
type StaticBody struct {
	world  *World
	body   *cp.Body
	shapes []*cp.Shape
	label  string
}

// Label returns the label given at creation.
func (b *StaticBody) Label() string {
	return b.label
}

// Position returns the body origin (its centre of mass).
func (b *StaticBody) Position() math.Vec2 {
	return fromVector(b.body.Position())
}

// SetPosition moves the body and reindexes its shapes. Static shapes are
// only reindexed when re-added to the space.
func (b *StaticBody) SetPosition(p math.Vec2) {
	b.body.SetPosition(toVector(p))
	for _, s := range b.shapes {
		b.world.space.RemoveShape(s)
		b.world.space.AddShape(s)
	}
}

// Bounds returns the world bounding box of all shapes.
func (b *StaticBody) Bounds() math.Bounds {
	var out math.Bounds
	for i, s := range b.shapes {
		bb := s.CacheBB()
		sb := math.Bounds{X: math.Range{Low: bb.L, High: bb.R}, Y: math.Range{Low: bb.B, High: bb.T}}
		if i == 0 {
			out = sb
			continue
		}
		out = out.Union(sb)
	}
	return out
}

// Shapes returns the segment shapes of the body.
func (b *StaticBody) Shapes() []*cp.Shape {
	return b.shapes
}

func toVector(v math.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromVector(v cp.Vector) math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}
