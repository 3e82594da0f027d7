package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/stockscape/pkg/math"
)

var square = []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

func TestFillPolygon(t *testing.T) {
	s := New()
	n, err := s.FillPolygon(math.Vec2{X: 100, Y: 50}, square, 0x685339)
	if err != nil {
		t.Fatalf("FillPolygon() error = %v", err)
	}
	if n.Kind() != KindGraphics || !n.Visible() {
		t.Errorf("node kind=%s visible=%v, want visible graphics", n.Kind(), n.Visible())
	}

	g := n.(*Graphics)
	if !g.Filled || g.FillColor != 0x685339 {
		t.Errorf("graphics filled=%v color=%06x", g.Filled, g.FillColor)
	}
	if got := g.WorldPoints()[2]; got != (math.Vec2{X: 110, Y: 60}) {
		t.Errorf("WorldPoints()[2] = %v, want (110, 60)", got)
	}

	if _, err := s.FillPolygon(math.Vec2{}, square[:2], 0); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("FillPolygon() with 2 points error = %v, want ErrTooFewPoints", err)
	}
}

func TestGeometryMask(t *testing.T) {
	s := New()
	fill, _ := s.FillPolygon(math.Vec2{X: 100}, square, 0)
	mask, err := s.GeometryMask(fill)
	if err != nil {
		t.Fatalf("GeometryMask() error = %v", err)
	}
	if !mask.Contains(math.Vec2{X: 105, Y: 5}) {
		t.Error("mask should contain (105, 5)")
	}
	if mask.Contains(math.Vec2{X: 5, Y: 5}) {
		t.Error("mask should not contain (5, 5)")
	}
	if r := mask.XRange(); r != (math.Range{Low: 100, High: 110}) {
		t.Errorf("XRange() = %+v", r)
	}
}

func TestGeometryMaskRejects(t *testing.T) {
	s := New()
	other := New()
	foreign, _ := other.FillPolygon(math.Vec2{}, square, 0)
	stroke, _ := s.StrokePolyline(math.Vec2{}, square, 25, 0xadea53)

	tests := []struct {
		name string
		node Node
	}{
		{"node from other scene", foreign},
		{"stroke only", stroke},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.GeometryMask(tt.node); !errors.Is(err, ErrForeignNode) {
				t.Errorf("GeometryMask() error = %v, want ErrForeignNode", err)
			}
		})
	}
}

func TestTileSpriteRect(t *testing.T) {
	s := New()
	n, _ := s.TileSprite(1024, 0, 512, 300, 2, "wholes-small", nil)
	ts := n.(*TileSprite)
	want := math.Rect{X: 1024, Y: 0, Width: 1024, Height: 600}
	if ts.Rect() != want {
		t.Errorf("Rect() = %+v, want %+v", ts.Rect(), want)
	}
}

func TestSpriteAnimation(t *testing.T) {
	s := New()
	n, err := s.Sprite(0, 0, []string{"a", "b", "c"}, 2)
	if err != nil {
		t.Fatalf("Sprite() error = %v", err)
	}
	sp := n.(*Sprite)

	steps := []struct {
		dt   float64
		want string
	}{
		{0, "a"},
		{0.5, "b"},
		{0.5, "c"},
		{0.5, "a"},
	}
	for i, st := range steps {
		s.Update(st.dt)
		if got := sp.Frame(); got != st.want {
			t.Errorf("step %d: Frame() = %s, want %s", i, got, st.want)
		}
	}

	if _, err := s.Sprite(0, 0, nil, 1); err == nil {
		t.Error("expected error for sprite without frames")
	}
}

func TestVisibleCount(t *testing.T) {
	s := New()
	a, _ := s.Image(0, 0, "grass")
	s.Image(10, 0, "grass")
	s.Image(20, 0, "grass")
	a.SetVisible(false)

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if got := s.VisibleCount(); got != 2 {
		t.Errorf("VisibleCount() = %d, want 2", got)
	}
}
