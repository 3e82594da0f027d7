package path

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/stockscape/pkg/math"
)

func TestPathString(t *testing.T) {
	p := Path{}.MoveTo(0, 600).LineTo(100, -300).LineTo(100, 800).Close()
	want := "M 0,600 L 100,-300 L 100,800 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := Path{}.MoveTo(0, 600).LineTo(100, 150.5).QuadTo(150, 0, 200, 100).
		CubicTo(210, 0, 290, 0, 300, 100).Close()

	got, err := Parse(src.String())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got.String() != src.String() {
		t.Errorf("round trip = %q, want %q", got.String(), src.String())
	}
}

func TestParseRelativeAndShorthand(t *testing.T) {
	p, err := Parse("m 10 10 20 0 v 5 h -20 z M 1e1,-2.5E0")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []math.Vec2{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 15}, {X: 10, Y: 15}, {X: 10, Y: -2.5}}
	got := p.Points()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
	if p[4].Op != Close {
		t.Errorf("command 4 = %v, want Z", p[4].Op)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"10 20",
		"M 10",
		"M 0 0 A 1 1 0 0 0 5 5",
		"M 0 0 L 5 #",
		"M 0 0 Z 5 5",
	}
	for _, d := range tests {
		if _, err := Parse(d); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", d, err)
		}
	}
}

func TestSampleSubdividesLongEdges(t *testing.T) {
	p := Path{}.MoveTo(0, 0).LineTo(100, 0).LineTo(100, 45).LineTo(0, 45).Close()
	loops := Sample(p, 30)
	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}

	loop := loops[0]
	// 100/30 -> 4 pieces, 45/30 -> 2 pieces, twice each.
	if len(loop) != 12 {
		t.Errorf("got %d points, want 12: %v", len(loop), loop)
	}
	for i := range loop {
		a, b := loop[i], loop[(i+1)%len(loop)]
		if d := a.Distance(b); d > 30+1e-9 {
			t.Errorf("edge %d length %v exceeds step", i, d)
		}
	}
	if loop[0] != (math.Vec2{}) {
		t.Errorf("loop starts at %v, want origin", loop[0])
	}
}

func TestSampleKeepsCommandPoints(t *testing.T) {
	p := Path{}.MoveTo(0, 600).LineTo(100, 300).LineTo(200, 450).LineTo(200, 800).LineTo(0, 800).Close()
	loop := Sample(p, 30)[0]

	for _, want := range p.Points() {
		found := false
		for _, got := range loop {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sampled loop is missing command point %v", want)
		}
	}
}

func TestSampleMultipleLoops(t *testing.T) {
	p := Path{}.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Close().
		MoveTo(50, 50).LineTo(60, 50).LineTo(60, 60).Close()
	loops := Sample(p, 0)
	if len(loops) != 2 {
		t.Fatalf("got %d loops, want 2", len(loops))
	}
	for i, l := range loops {
		if len(l) != 3 {
			t.Errorf("loop %d has %d points, want 3", i, len(l))
		}
	}
}

func TestSampleCurve(t *testing.T) {
	p := Path{}.MoveTo(0, 0).QuadTo(50, 100, 100, 0)
	loop := Sample(p, 10)[0]
	if got := loop[len(loop)-1]; got != (math.Vec2{X: 100}) {
		t.Errorf("curve ends at %v, want (100, 0)", got)
	}
	mid := loop[len(loop)/2]
	if gomath.Abs(mid.Y-50) > 5 {
		t.Errorf("curve midpoint %v, want y near 50", mid)
	}
}

func TestSampleEmpty(t *testing.T) {
	if loops := Sample(nil, 30); len(loops) != 0 {
		t.Errorf("Sample(nil) = %v, want no loops", loops)
	}
	if loops := Sample(Path{}.Close(), 30); len(loops) != 0 {
		t.Errorf("Sample(Z) = %v, want no loops", loops)
	}
}
