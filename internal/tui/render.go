package tui

import (
	"strings"

	"github.com/Faultbox/stockscape/internal/engine/camera"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/pkg/math"
)

// renderScene draws the visible scene nodes into a w x h cell canvas.
func renderScene(sc *scene.Scene, cam *camera.Camera, w, h int) *brailleBuf {
	buf := newBrailleBuf(w, h)
	view := cam.WorldView()

	for _, n := range sc.Nodes() {
		if !n.Visible() {
			continue
		}
		switch n := n.(type) {
		case *scene.Graphics:
			if n.Filled {
				buf.fill(clipped(n.WorldPoints(), view, cam), layerFill, nil)
				continue
			}
			strokeLines(buf, n.WorldPoints(), view, cam)
		case *scene.TileSprite:
			if n.Mask == nil {
				continue
			}
			band := math.ClipPolygon(n.Mask.Polygon, n.Rect())
			if band == nil {
				continue
			}
			buf.fill(clipped(band, view, cam), layerHole, holePattern)
		case *scene.Image:
			tuft(buf, cam.WorldToScreen(math.Vec2{X: n.X, Y: n.Y}), 0, layerGrass)
		case *scene.Sprite:
			sway := 0
			if len(n.Frames) > 1 && n.Frame() != n.Frames[0] {
				sway = 1
			}
			tuft(buf, cam.WorldToScreen(math.Vec2{X: n.X, Y: n.Y}), sway, layerSprite)
		}
	}
	return buf
}

// strokeLines draws the segments of pts that touch view.
func strokeLines(buf *brailleBuf, pts []math.Vec2, view math.Rect, cam *camera.Camera) int {
	drawn := 0
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !view.OverlapsSegment(a, b) {
			continue
		}
		sa, sb := cam.WorldToScreen(a), cam.WorldToScreen(b)
		buf.line(int(sa.X), int(sa.Y), int(sb.X), int(sb.Y), layerGrass)
		drawn++
	}
	return drawn
}

// holePattern speckles hole bands so they read as burrows.
func holePattern(x, y int) bool {
	return (x*7+y*13)%11 < 3
}

func tuft(buf *brailleBuf, p math.Vec2, sway int, l layer) {
	x, y := int(p.X), int(p.Y)
	buf.line(x, y, x+sway, y-2, l)
	buf.set(x-1, y-1, l)
	buf.set(x+1, y-1, l)
}

func project(pts []math.Vec2, cam *camera.Camera) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		s := cam.WorldToScreen(p)
		out[i] = [2]float64{s.X, s.Y}
	}
	return out
}

func clipped(poly []math.Vec2, view math.Rect, cam *camera.Camera) [][2]float64 {
	c := math.ClipPolygon(poly, view)
	if c == nil {
		return nil
	}
	return project(c, cam)
}

// lines turns the buffer into styled rows, one style run per layer.
func (b *brailleBuf) lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		cur := layerNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if st, ok := layerStyles[cur]; ok {
				sb.WriteString(st.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, l := b.cell(x, y)
			if l != cur {
				flush()
				cur = l
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
