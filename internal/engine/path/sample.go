package path

import (
	gomath "math"

	"github.com/Faultbox/stockscape/pkg/math"
)

// Sample converts p into vertex loops, one per MoveTo. Straight segments
// longer than step are split evenly so no edge exceeds step. Curves are
// flattened into ceil(L/step) pieces, L being the length of their control
// polygon. Close joins back to the loop start without repeating it.
// A step <= 0 disables subdivision.
func Sample(p Path, step float64) [][]math.Vec2 {
	var (
		loops [][]math.Vec2
		cur   []math.Vec2
		pen   math.Vec2
		start math.Vec2
	)

	flush := func() {
		if len(cur) > 0 {
			loops = append(loops, cur)
		}
		cur = nil
	}
	begin := func() {
		if cur == nil {
			cur = []math.Vec2{pen}
			start = pen
		}
	}

	for _, c := range p {
		switch c.Op {
		case MoveTo:
			end, ok := c.End()
			if !ok {
				continue
			}
			flush()
			pen, start = end, end
			cur = []math.Vec2{pen}
		case LineTo:
			end, ok := c.End()
			if !ok {
				continue
			}
			begin()
			cur = appendLine(cur, pen, end, step)
			pen = end
		case QuadTo:
			if len(c.Points) != 2 {
				continue
			}
			begin()
			ctrl := []math.Vec2{pen, c.Points[0], c.Points[1]}
			cur = appendCurve(cur, ctrl, step, quadAt)
			pen = c.Points[1]
		case CubicTo:
			if len(c.Points) != 3 {
				continue
			}
			begin()
			ctrl := []math.Vec2{pen, c.Points[0], c.Points[1], c.Points[2]}
			cur = appendCurve(cur, ctrl, step, cubicAt)
			pen = c.Points[2]
		case Close:
			if len(cur) == 0 {
				continue
			}
			cur = appendLine(cur, pen, start, step)
			if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
				cur = cur[:len(cur)-1]
			}
			pen = start
			flush()
		}
	}
	flush()
	return loops
}

func pieces(length, step float64) int {
	if step <= 0 || length <= step {
		return 1
	}
	return int(gomath.Ceil(length / step))
}

func appendPoint(pts []math.Vec2, p math.Vec2) []math.Vec2 {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}

func appendLine(pts []math.Vec2, a, b math.Vec2, step float64) []math.Vec2 {
	n := pieces(a.Distance(b), step)
	for i := 1; i < n; i++ {
		pts = appendPoint(pts, a.Lerp(b, float64(i)/float64(n)))
	}
	return appendPoint(pts, b)
}

func appendCurve(pts []math.Vec2, ctrl []math.Vec2, step float64, at func([]math.Vec2, float64) math.Vec2) []math.Vec2 {
	var length float64
	for i := 1; i < len(ctrl); i++ {
		length += ctrl[i-1].Distance(ctrl[i])
	}
	n := pieces(length, step)
	for i := 1; i < n; i++ {
		pts = appendPoint(pts, at(ctrl, float64(i)/float64(n)))
	}
	return appendPoint(pts, ctrl[len(ctrl)-1])
}

func quadAt(c []math.Vec2, t float64) math.Vec2 {
	a := c[0].Lerp(c[1], t)
	b := c[1].Lerp(c[2], t)
	return a.Lerp(b, t)
}

func cubicAt(c []math.Vec2, t float64) math.Vec2 {
	a := c[0].Lerp(c[1], t)
	b := c[1].Lerp(c[2], t)
	d := c[2].Lerp(c[3], t)
	return quadAt([]math.Vec2{a, b, d}, t)
}
