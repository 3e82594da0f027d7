package physics

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/Faultbox/stockscape/pkg/math"
)

func approx(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-6
}

// terrainLoop is a normalized slab with a sloped top edge.
func terrainLoop() []math.Vec2 {
	return []math.Vec2{
		{X: 0, Y: 300}, {X: 50, Y: 150}, {X: 100, Y: 0}, {X: 200, Y: 200},
		{X: 200, Y: 500}, {X: 100, Y: 500}, {X: 0, Y: 500},
	}
}

func TestStaticFromVertices(t *testing.T) {
	w := NewWorld(math.Vec2{Y: 1}, nil)
	pos := math.Vec2{X: 100 + 40, Y: 250 + 60}

	body, err := w.StaticFromVertices(pos, [][]math.Vec2{terrainLoop()}, BodyOptions{
		Label:           "terrain",
		Friction:        0.7,
		FlagInternal:    true,
		RemoveCollinear: 0.01,
		MinimumArea:     1,
	})
	if err != nil {
		t.Fatalf("StaticFromVertices() error = %v", err)
	}

	if body.Label() != "terrain" {
		t.Errorf("Label() = %q, want terrain", body.Label())
	}
	if got := body.Position(); got != pos {
		t.Errorf("Position() = %v, want %v", got, pos)
	}

	sb := body.(*StaticBody)
	// (50,150) and (100,500) are collinear and removed.
	if len(sb.Shapes()) != 5 {
		t.Errorf("got %d segments, want 5", len(sb.Shapes()))
	}
	for _, s := range sb.Shapes() {
		if s.Friction() != 0.7 {
			t.Errorf("segment friction = %v, want 0.7", s.Friction())
		}
	}

	// The body is centred on the loop centroid, so its bounds are the loop
	// bounds shifted by pos - centroid.
	centroid := math.Centroid(RemoveCollinear(terrainLoop(), 0.01))
	b := body.Bounds()
	wantMin := pos.Sub(centroid)
	if !approx(b.X.Low, wantMin.X) || !approx(b.Y.Low, wantMin.Y) {
		t.Errorf("Bounds().Min = %v, want %v", b.Min(), wantMin)
	}
	if !approx(b.Width(), 200) || !approx(b.Height(), 500) {
		t.Errorf("Bounds() size = %vx%v, want 200x500", b.Width(), b.Height())
	}
}

func TestSetPositionMovesBounds(t *testing.T) {
	w := NewWorld(math.Vec2{}, nil)
	body, err := w.StaticFromVertices(math.Vec2{}, [][]math.Vec2{terrainLoop()}, BodyOptions{MinimumArea: 1})
	if err != nil {
		t.Fatalf("StaticFromVertices() error = %v", err)
	}

	before := body.Bounds()
	body.SetPosition(math.Vec2{X: 30, Y: -10})
	after := body.Bounds()

	if !approx(after.X.Low-before.X.Low, 30) || !approx(after.Y.Low-before.Y.Low, -10) {
		t.Errorf("bounds moved by (%v, %v), want (30, -10)",
			after.X.Low-before.X.Low, after.Y.Low-before.Y.Low)
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Bodies() = %d, want 1", len(w.Bodies()))
	}
}

func TestSetPositionReindexes(t *testing.T) {
	w := NewWorld(math.Vec2{}, nil)
	body, err := w.StaticFromVertices(math.Vec2{}, [][]math.Vec2{terrainLoop()}, BodyOptions{MinimumArea: 1})
	if err != nil {
		t.Fatalf("StaticFromVertices() error = %v", err)
	}
	before := body.Bounds()
	body.SetPosition(math.Vec2{X: 5000, Y: 250})
	after := body.Bounds()

	// The bottom-left vertex of the slab, before and after the move.
	oldCorner := cp.Vector{X: before.X.Low, Y: before.Y.High}
	newCorner := cp.Vector{X: after.X.Low, Y: after.Y.High}

	hit := w.space.PointQueryNearest(newCorner, 1, cp.SHAPE_FILTER_ALL)
	if hit == nil || hit.Shape == nil || hit.Shape.Body() != body.(*StaticBody).body {
		t.Errorf("no terrain shape found at moved corner %v", newCorner)
	}
	if miss := w.space.PointQueryNearest(oldCorner, 1, cp.SHAPE_FILTER_ALL); miss != nil && miss.Shape != nil {
		t.Errorf("shape still found at old corner %v", oldCorner)
	}
}

func TestFlagInternalRecordsJoints(t *testing.T) {
	tests := []struct {
		name string
		flag bool
		want int
	}{
		{"flagged", true, 5},
		{"unflagged", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(math.Vec2{}, nil)
			body, err := w.StaticFromVertices(math.Vec2{}, [][]math.Vec2{terrainLoop()}, BodyOptions{
				FlagInternal:    tt.flag,
				RemoveCollinear: 0.01,
				MinimumArea:     1,
			})
			if err != nil {
				t.Fatalf("StaticFromVertices() error = %v", err)
			}
			if len(w.joints) != tt.want {
				t.Errorf("got %d joints, want %d", len(w.joints), tt.want)
			}
			for _, s := range body.(*StaticBody).Shapes() {
				if j, ok := w.joints[s]; ok && !approx(j.normal.Length(), 1) {
					t.Errorf("joint normal %v is not unit length", j.normal)
				}
			}
		})
	}
}

func TestJointCatches(t *testing.T) {
	// A flat segment from (0,0) to (10,0) followed by a gentle rise to (20,-5).
	a, b := math.Vec2{X: 0, Y: 0}, math.Vec2{X: 10, Y: 0}
	j := joint{
		normal: segmentNormal(a, b),
		prev:   segmentNormal(math.Vec2{X: -10, Y: 0}, a),
		next:   segmentNormal(b, math.Vec2{X: 20, Y: -5}),
	}

	tests := []struct {
		name string
		p, n math.Vec2
		want bool
	}{
		{"face contact mid segment", math.Vec2{X: 5}, math.Vec2{Y: -1}, false},
		{"sideways mid segment", math.Vec2{X: 5}, math.Vec2{X: 1}, false},
		{"face normal at joint", b, math.Vec2{Y: -1}, false},
		{"neighbour normal at joint", b, j.next, false},
		{"sideways at joint", b, math.Vec2{X: 1}, true},
		{"sideways at start joint", a, math.Vec2{X: -1}, true},
		{"near joint", math.Vec2{X: 9.8}, math.Vec2{X: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := j.catches(a, b, tt.p, tt.n); got != tt.want {
				t.Errorf("catches(%v, %v) = %v, want %v", tt.p, tt.n, got, tt.want)
			}
		})
	}
}

func TestStaticFromVerticesNoGeometry(t *testing.T) {
	w := NewWorld(math.Vec2{}, nil)
	tiny := []math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	tests := []struct {
		name  string
		loops [][]math.Vec2
	}{
		{"no loops", nil},
		{"below minimum area", [][]math.Vec2{tiny}},
		{"line", [][]math.Vec2{{{X: 0, Y: 0}, {X: 10, Y: 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.StaticFromVertices(math.Vec2{}, tt.loops, BodyOptions{MinimumArea: 1})
			if !errors.Is(err, ErrNoGeometry) {
				t.Errorf("error = %v, want ErrNoGeometry", err)
			}
		})
	}
}

func TestRemoveCollinear(t *testing.T) {
	loop := []math.Vec2{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}

	got := RemoveCollinear(loop, 0.01)
	want := []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if len(got) != len(want) {
		t.Fatalf("RemoveCollinear() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Zero threshold only removes duplicates.
	if got := RemoveCollinear(loop, 0); len(got) != 5 {
		t.Errorf("RemoveCollinear(0) kept %d points, want 5", len(got))
	}
	if len(loop) != 7 {
		t.Error("input loop was modified")
	}
}
