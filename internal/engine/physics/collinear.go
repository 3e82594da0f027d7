package physics

import (
	gomath "math"

	"github.com/Faultbox/stockscape/pkg/math"
)

// RemoveCollinear drops vertices of a closed loop where the direction
// changes by less than threshold radians. Repeated vertices are always
// dropped. The input is not modified.
func RemoveCollinear(loop []math.Vec2, threshold float64) []math.Vec2 {
	pts := make([]math.Vec2, 0, len(loop))
	for i, p := range loop {
		if i > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if threshold <= 0 {
		return pts
	}

	for changed := true; changed && len(pts) > 3; {
		changed = false
		for i := 0; i < len(pts) && len(pts) > 3; i++ {
			prev := pts[(i+len(pts)-1)%len(pts)]
			next := pts[(i+1)%len(pts)]
			if turnAngle(prev, pts[i], next) < threshold {
				pts = append(pts[:i], pts[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return pts
}

// turnAngle is the angle between segments a-b and b-c.
func turnAngle(a, b, c math.Vec2) float64 {
	ab := b.Sub(a)
	bc := c.Sub(b)
	den := ab.Length() * bc.Length()
	if den == 0 {
		return 0
	}
	cos := ab.Dot(bc) / den
	return gomath.Acos(gomath.Max(-1, gomath.Min(1, cos)))
}
