// Package sprite generates the procedural textures used to dress terrain.
package sprite

import (
	"math/rand/v2"
	"sort"
)

// Frame is an RGBA image, four bytes per pixel, rows top to bottom.
type Frame struct {
	Pixels []byte
	Width  int
	Height int
}

func newFrame(width, height int) Frame {
	return Frame{Pixels: make([]byte, width*height*4), Width: width, Height: height}
}

func (f Frame) set(x, y int, r, g, b, a byte) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pixels[i+0] = r
	f.Pixels[i+1] = g
	f.Pixels[i+2] = b
	f.Pixels[i+3] = a
}

// At returns the RGBA bytes at x, y.
func (f Frame) At(x, y int) (r, g, b, a byte) {
	i := (y*f.Width + x) * 4
	return f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2], f.Pixels[i+3]
}

// Scaled returns f enlarged by an integer factor with nearest sampling.
func (f Frame) Scaled(factor int) Frame {
	if factor <= 1 {
		return f
	}
	out := newFrame(f.Width*factor, f.Height*factor)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, b, a := f.At(x/factor, y/factor)
			out.set(x, y, r, g, b, a)
		}
	}
	return out
}

// GenerateHoles draws a tileable soil texture: a base close to the
// terrain fill with darker burrows scattered over it.
func GenerateHoles(width, height int, seed uint64) Frame {
	f := newFrame(width, height)
	rng := rand.New(rand.NewPCG(seed, seed+1))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := byte(rng.IntN(12))
			f.set(x, y, 0x68+n, 0x53+n, 0x39+n/2, 255)
		}
	}

	holes := width * height / 2048
	for i := 0; i < holes; i++ {
		cx, cy := rng.IntN(width), rng.IntN(height)
		rad := 3 + rng.IntN(6)
		for dy := -rad; dy <= rad; dy++ {
			for dx := -rad; dx <= rad; dx++ {
				if dx*dx+dy*dy > rad*rad {
					continue
				}
				// Wrap so the texture tiles.
				x := (cx + dx + width) % width
				y := (cy + dy + height) % height
				shade := byte(0x20 + 0x08*(dx*dx+dy*dy)/(rad*rad))
				f.set(x, y, shade+0x10, shade+0x08, shade, 255)
			}
		}
	}
	return f
}

// GenerateGrass draws a tuft of blades. sway shifts blade tips
// horizontally, in pixels, for animation frames.
func GenerateGrass(width, height, sway int) Frame {
	f := newFrame(width, height)
	blades := width / 4
	for i := 0; i < blades; i++ {
		base := 2 + i*(width-4)/blades
		tall := height - (i%3)*height/5
		for y := 0; y < tall; y++ {
			// Blades bend toward the tip.
			off := sway * y * y / (tall * tall)
			x := base + off
			g := byte(0xea - 0x40*y/tall)
			f.set(x, height-1-y, 0xad-byte(0x30*y/tall), g, 0x53, 255)
			if y < tall/2 {
				f.set(x+1, height-1-y, 0x8c, g-0x10, 0x40, 255)
			}
		}
	}
	return f
}

// Atlas maps frame names to textures.
type Atlas map[string]Frame

// DefaultAtlas returns the frames referenced by the default terrain
// config plus a three-frame grass animation.
func DefaultAtlas() Atlas {
	return Atlas{
		"wholes-small": GenerateHoles(512, 256, 1),
		"grass":        GenerateGrass(32, 24, 0),
		"grass-0":      GenerateGrass(32, 24, -2),
		"grass-1":      GenerateGrass(32, 24, 0),
		"grass-2":      GenerateGrass(32, 24, 2),
	}
}

// Names returns the frame names in sorted order.
func (a Atlas) Names() []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
