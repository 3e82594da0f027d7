// Package path describes 2D boundary contours as drawing commands and
// samples them into vertex loops.
package path

import (
	"strconv"
	"strings"

	"github.com/Faultbox/stockscape/pkg/math"
)

// Op is a path drawing operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo  // Points: control, end
	CubicTo // Points: control1, control2, end
	Close
)

var opLetters = [...]string{"M", "L", "Q", "C", "Z"}

// String returns the SVG command letter.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opLetters) {
		return "?"
	}
	return opLetters[o]
}

// Command is one drawing command. The last point is the pen position
// after the command; Close carries no points.
type Command struct {
	Op     Op
	Points []math.Vec2
}

// End returns the pen position after the command.
func (c Command) End() (math.Vec2, bool) {
	if len(c.Points) == 0 {
		return math.Vec2{}, false
	}
	return c.Points[len(c.Points)-1], true
}

// Path is an ordered list of drawing commands.
type Path []Command

// MoveTo appends a move command.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, Command{Op: MoveTo, Points: []math.Vec2{{X: x, Y: y}}})
}

// LineTo appends a straight segment.
func (p Path) LineTo(x, y float64) Path {
	return append(p, Command{Op: LineTo, Points: []math.Vec2{{X: x, Y: y}}})
}

// QuadTo appends a quadratic Bezier segment.
func (p Path) QuadTo(cx, cy, x, y float64) Path {
	return append(p, Command{Op: QuadTo, Points: []math.Vec2{{X: cx, Y: cy}, {X: x, Y: y}}})
}

// CubicTo appends a cubic Bezier segment.
func (p Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, Command{Op: CubicTo, Points: []math.Vec2{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

// Close appends a close command.
func (p Path) Close() Path {
	return append(p, Command{Op: Close})
}

// Points returns the end point of every command that has one.
func (p Path) Points() []math.Vec2 {
	out := make([]math.Vec2, 0, len(p))
	for _, c := range p {
		if pt, ok := c.End(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// String renders the path as SVG path data using absolute commands.
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.Op.String())
		for _, pt := range c.Points {
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(pt.X))
			sb.WriteByte(',')
			sb.WriteString(formatFloat(pt.Y))
		}
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
