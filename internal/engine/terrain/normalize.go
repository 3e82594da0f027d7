package terrain

import (
	"errors"

	"github.com/Faultbox/stockscape/internal/engine/path"
	"github.com/Faultbox/stockscape/pkg/math"
)

// ErrEmptyGeometry is returned when sampling yields no vertices.
var ErrEmptyGeometry = errors.New("terrain: empty geometry")

// Geometry is a set of vertex loops translated so their minimum corner
// is the origin.
type Geometry struct {
	Loops [][]math.Vec2
	// Source is the bounds of the loops before translation.
	Source math.Bounds
}

// Width returns the horizontal extent of the loops.
func (g Geometry) Width() float64 {
	return g.Source.Width()
}

// Height returns the vertical extent of the loops.
func (g Geometry) Height() float64 {
	return g.Source.Height()
}

// Normalize samples p at step and moves the result to the origin.
func Normalize(p path.Path, step float64) (Geometry, error) {
	loops := path.Sample(p, step)
	b, ok := math.BoundsOf(loops...)
	if !ok {
		return Geometry{}, ErrEmptyGeometry
	}

	shift := b.Min()
	out := make([][]math.Vec2, len(loops))
	for i, loop := range loops {
		out[i] = make([]math.Vec2, len(loop))
		for j, v := range loop {
			out[i][j] = v.Sub(shift)
		}
	}
	return Geometry{Loops: out, Source: b}, nil
}
