package math

import "math"

// Range is a closed interval [Low, High].
type Range struct {
	Low, High float64
}

// Span returns High - Low.
func (r Range) Span() float64 {
	return r.High - r.Low
}

// Extend grows the range to include v.
func (r Range) Extend(v float64) Range {
	if v < r.Low {
		r.Low = v
	}
	if v > r.High {
		r.High = v
	}
	return r
}

// Bounds is an axis-aligned bounding box, one range per axis.
type Bounds struct {
	X, Y Range
}

// BoundsOf computes the bounds of every point in loops.
// Returns false if there are no points.
func BoundsOf(loops ...[]Vec2) (Bounds, bool) {
	var b Bounds
	found := false
	for _, loop := range loops {
		for _, p := range loop {
			if !found {
				b = Bounds{X: Range{p.X, p.X}, Y: Range{p.Y, p.Y}}
				found = true
				continue
			}
			b.X = b.X.Extend(p.X)
			b.Y = b.Y.Extend(p.Y)
		}
	}
	return b, found
}

// Min returns the low corner.
func (b Bounds) Min() Vec2 {
	return Vec2{b.X.Low, b.Y.Low}
}

// Max returns the high corner.
func (b Bounds) Max() Vec2 {
	return Vec2{b.X.High, b.Y.High}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.X.Span()
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Y.Span()
}

// Union returns the smallest bounds containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		X: b.X.Extend(o.X.Low).Extend(o.X.High),
		Y: b.Y.Extend(o.Y.Low).Extend(o.Y.High),
	}
}

// Rect is a rectangle given by its top-left corner and size.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns X + Width.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns Y + Height.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// OverlapsSegment reports whether the bounding box of segment ab touches r.
func (r Rect) OverlapsSegment(a, b Vec2) bool {
	return math.Max(a.X, b.X) >= r.X && math.Min(a.X, b.X) <= r.Right() &&
		math.Max(a.Y, b.Y) >= r.Y && math.Min(a.Y, b.Y) <= r.Bottom()
}
