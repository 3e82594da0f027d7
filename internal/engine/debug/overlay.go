package debug

import (
	"fmt"

	"github.com/Faultbox/stockscape/pkg/math"
)

// BoundsOutline returns the corners of b grown by padding, clockwise from
// the top-left, for drawing as a closed outline.
func BoundsOutline(b math.Bounds, padding float64) []math.Vec2 {
	lo := b.Min().Sub(math.Vec2{X: padding, Y: padding})
	hi := b.Max().Add(math.Vec2{X: padding, Y: padding})
	return []math.Vec2{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}
}

// Stats is the per-frame overlay shown with --debug.
type Stats struct {
	FPS         int
	Terrains    int
	Decorations int
	Visible     int
	Bodies      int
	View        math.Rect
}

func (s Stats) String() string {
	return fmt.Sprintf("fps %d | terrains %d | decorations %d/%d visible | bodies %d | view x %.0f..%.0f",
		s.FPS, s.Terrains, s.Visible, s.Decorations, s.Bodies, s.View.X, s.View.Right())
}
