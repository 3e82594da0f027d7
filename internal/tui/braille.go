package tui

import "sort"

// layer is what a braille cell shows; higher layers win the cell colour.
type layer uint8

const (
	layerNone layer = iota
	layerFill
	layerHole
	layerGrass
	layerSprite
)

// dotBits maps a micro pixel (column, row) inside a 2x4 cell to its
// braille dot.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

type brailleBuf struct {
	w, h   int // in cells
	mask   [][]uint8
	layers [][]layer
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h, mask: make([][]uint8, h), layers: make([][]layer, h)}
	for i := range b.mask {
		b.mask[i] = make([]uint8, w)
		b.layers[i] = make([]layer, w)
	}
	return b
}

// microSize returns the buffer size in micro pixels.
func (b *brailleBuf) microSize() (int, int) {
	return b.w * 2, b.h * 4
}

func (b *brailleBuf) set(mx, my int, l layer) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.mask[cy][cx] |= dotBits[mx%2][my%4]
	if l > b.layers[cy][cx] {
		b.layers[cy][cx] = l
	}
}

// line draws with Bresenham on the micro grid.
func (b *brailleBuf) line(x0, y0, x1, y1 int, l layer) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.set(x0, y0, l)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fill scans a polygon with the even-odd rule. pattern decides which
// covered micro pixels are set, so layers can be told apart.
func (b *brailleBuf) fill(poly [][2]float64, l layer, pattern func(x, y int) bool) {
	if len(poly) < 3 {
		return
	}
	wMic, hMic := b.microSize()
	for y := 0; y < hMic; y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range poly {
			a, c := poly[i], poly[(i+1)%len(poly)]
			if (a[1] <= fy) == (c[1] <= fy) {
				continue
			}
			xs = append(xs, a[0]+(fy-a[1])*(c[0]-a[0])/(c[1]-a[1]))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := max(0, int(xs[i]+0.5))
			to := min(wMic-1, int(xs[i+1]-0.5))
			for x := from; x <= to; x++ {
				if pattern == nil || pattern(x, y) {
					b.set(x, y, l)
				}
			}
		}
	}
}

func (b *brailleBuf) cell(x, y int) (rune, layer) {
	m := b.mask[y][x]
	if m == 0 {
		return ' ', layerNone
	}
	return rune(0x2800 + int(m)), b.layers[y][x]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
