package math

// ClipPolygon clips a closed polygon to r using successive half-plane
// passes. Concave input may come back with zero-width bridges along the
// rectangle edges, which fill and texture the same as the real polygon.
// Returns nil when nothing is left.
func ClipPolygon(poly []Vec2, r Rect) []Vec2 {
	out := poly
	out = clipEdge(out, func(p Vec2) bool { return p.X >= r.X }, func(a, b Vec2) Vec2 { return atX(a, b, r.X) })
	out = clipEdge(out, func(p Vec2) bool { return p.X <= r.Right() }, func(a, b Vec2) Vec2 { return atX(a, b, r.Right()) })
	out = clipEdge(out, func(p Vec2) bool { return p.Y >= r.Y }, func(a, b Vec2) Vec2 { return atY(a, b, r.Y) })
	out = clipEdge(out, func(p Vec2) bool { return p.Y <= r.Bottom() }, func(a, b Vec2) Vec2 { return atY(a, b, r.Bottom()) })
	if len(out) < 3 {
		return nil
	}
	return out
}

func clipEdge(poly []Vec2, inside func(Vec2) bool, cross func(a, b Vec2) Vec2) []Vec2 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Vec2, 0, len(poly)+4)
	prev := poly[len(poly)-1]
	for _, cur := range poly {
		switch in, prevIn := inside(cur), inside(prev); {
		case in && prevIn:
			out = append(out, cur)
		case in:
			out = append(out, cross(prev, cur), cur)
		case prevIn:
			out = append(out, cross(prev, cur))
		}
		prev = cur
	}
	return out
}

func atX(a, b Vec2, x float64) Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Vec2, y float64) Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return Vec2{X: a.X + t*(b.X-a.X), Y: y}
}
