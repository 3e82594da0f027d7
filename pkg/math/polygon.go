package math

import "math"

// SignedArea returns the shoelace area of a closed polygon. The sign
// depends on winding order.
func SignedArea(poly []Vec2) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].Cross(poly[j])
	}
	return a / 2
}

// Area returns the absolute area of a closed polygon.
func Area(poly []Vec2) float64 {
	return math.Abs(SignedArea(poly))
}

// Centroid returns the area centroid of a closed polygon. Degenerate
// polygons fall back to the vertex average.
func Centroid(poly []Vec2) Vec2 {
	a := SignedArea(poly)
	if a == 0 {
		var sum Vec2
		for _, p := range poly {
			sum = sum.Add(p)
		}
		if len(poly) == 0 {
			return sum
		}
		return sum.Scale(1 / float64(len(poly)))
	}

	var c Vec2
	for i := range poly {
		j := (i + 1) % len(poly)
		f := poly[i].Cross(poly[j])
		c.X += (poly[i].X + poly[j].X) * f
		c.Y += (poly[i].Y + poly[j].Y) * f
	}
	return c.Scale(1 / (6 * a))
}

// Contains reports whether p lies inside poly (even-odd rule).
func Contains(poly []Vec2, p Vec2) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}
