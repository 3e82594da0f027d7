// Package renderer draws a scene through a camera with SDL2 and SDL2_gfx.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/engine/camera"
	"github.com/Faultbox/stockscape/internal/engine/debug"
	"github.com/Faultbox/stockscape/internal/engine/physics"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/internal/engine/sprite"
	"github.com/Faultbox/stockscape/pkg/math"
)

// margin keeps clipped outlines and thick strokes from showing their
// cut edges at the screen border.
const margin = 64

// Config holds renderer configuration.
type Config struct {
	Background uint32
	BodyColor  uint32
	TextColor  uint32
}

// DefaultConfig returns a sky background with white debug text.
func DefaultConfig() Config {
	return Config{
		Background: 0x8ec5e8,
		BodyColor:  0xff3030,
		TextColor:  0xffffff,
	}
}

type tileKey struct {
	frame  string
	factor int
}

// Renderer draws scene nodes. Textures are built lazily from the atlas.
type Renderer struct {
	config   Config
	sdl      *sdl.Renderer
	atlas    sprite.Atlas
	textures map[string]*sdl.Texture
	tiles    map[tileKey]*sdl.Surface
	missing  map[string]bool
	log      *zap.Logger
}

// New creates a renderer on r. The atlas supplies every frame name the
// scene refers to.
func New(r *sdl.Renderer, atlas sprite.Atlas, cfg Config, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		config:   cfg,
		sdl:      r,
		atlas:    atlas,
		textures: make(map[string]*sdl.Texture),
		tiles:    make(map[tileKey]*sdl.Surface),
		missing:  make(map[string]bool),
		log:      log,
	}
}

// Begin clears the frame.
func (r *Renderer) Begin() error {
	c := color(r.config.Background, 255)
	if err := r.sdl.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return r.sdl.Clear()
}

// DrawScene draws every visible node in insertion order and returns how
// many were drawn.
func (r *Renderer) DrawScene(sc *scene.Scene, cam *camera.Camera) int {
	view := cam.WorldView()
	clip := math.Rect{
		X:      view.X - margin/cam.Zoom,
		Y:      view.Y - margin/cam.Zoom,
		Width:  view.Width + 2*margin/cam.Zoom,
		Height: view.Height + 2*margin/cam.Zoom,
	}

	drawn := 0
	for _, n := range sc.Nodes() {
		if !n.Visible() {
			continue
		}
		var ok bool
		switch n := n.(type) {
		case *scene.Graphics:
			if n.Filled {
				ok = r.fill(n, cam, clip)
			} else {
				ok = r.stroke(n, cam, clip)
			}
		case *scene.TileSprite:
			ok = r.tile(n, cam, clip)
		case *scene.Image:
			ok = r.image(n.Frame, n.X, n.Y, cam)
		case *scene.Sprite:
			ok = r.image(n.Frame(), n.X, n.Y, cam)
		}
		if ok {
			drawn++
		}
	}
	return drawn
}

func (r *Renderer) fill(g *scene.Graphics, cam *camera.Camera, clip math.Rect) bool {
	poly := math.ClipPolygon(g.WorldPoints(), clip)
	if poly == nil {
		return false
	}
	vx, vy := project(poly, cam)
	return gfx.FilledPolygonColor(r.sdl, vx, vy, color(g.FillColor, 255))
}

func (r *Renderer) stroke(g *scene.Graphics, cam *camera.Camera, clip math.Rect) bool {
	pts := g.WorldPoints()
	width := int32(gomath.Max(1, gomath.Round(g.LineWidth*cam.Zoom)))
	c := color(g.StrokeColor, 255)
	drawn := false
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !clip.OverlapsSegment(a, b) {
			continue
		}
		sa, sb := cam.WorldToScreen(a), cam.WorldToScreen(b)
		gfx.ThickLineColor(r.sdl, int32(sa.X), int32(sa.Y), int32(sb.X), int32(sb.Y), width, c)
		drawn = true
	}
	return drawn
}

func (r *Renderer) tile(t *scene.TileSprite, cam *camera.Camera, clip math.Rect) bool {
	area := t.Rect()
	poly := []math.Vec2{
		{X: area.X, Y: area.Y}, {X: area.Right(), Y: area.Y},
		{X: area.Right(), Y: area.Bottom()}, {X: area.X, Y: area.Bottom()},
	}
	if t.Mask != nil {
		// The mask outline clipped to the band is the band's visible shape.
		poly = t.Mask.Polygon
	}
	poly = math.ClipPolygon(poly, area)
	if poly != nil {
		poly = math.ClipPolygon(poly, clip)
	}
	if poly == nil {
		return false
	}

	factor := int(gomath.Max(1, gomath.Round(t.Scale*cam.Zoom)))
	surf, err := r.tileSurface(t.Frame, factor)
	if err != nil {
		r.warnMissing(t.Frame, err)
		return false
	}

	origin := cam.WorldToScreen(math.Vec2{X: t.X, Y: t.Y})
	dx := wrap(int(origin.X), int(surf.W))
	dy := wrap(-int(origin.Y), int(surf.H))
	vx, vy := project(poly, cam)
	return gfx.TexturedPolygon(r.sdl, vx, vy, surf, dx, dy)
}

func (r *Renderer) image(frame string, x, y float64, cam *camera.Camera) bool {
	tex, err := r.texture(frame)
	if err != nil {
		r.warnMissing(frame, err)
		return false
	}
	f := r.atlas[frame]
	w, h := float32(float64(f.Width)*cam.Zoom), float32(float64(f.Height)*cam.Zoom)
	p := cam.WorldToScreen(math.Vec2{X: x, Y: y})
	dst := sdl.FRect{X: float32(p.X) - w/2, Y: float32(p.Y) - h/2, W: w, H: h}
	if dst.X > float32(cam.ScreenWidth) || dst.X+w < 0 {
		return false
	}
	return r.sdl.CopyF(tex, nil, &dst) == nil
}

// DrawBodies outlines the bounds of each body.
func (r *Renderer) DrawBodies(bodies []physics.Body, cam *camera.Camera) {
	c := color(r.config.BodyColor, 200)
	for _, b := range bodies {
		vx, vy := project(debug.BoundsOutline(b.Bounds(), 2), cam)
		gfx.PolygonColor(r.sdl, vx, vy, c)
	}
}

// DrawText draws s with the built-in 8x8 font at screen position x, y.
func (r *Renderer) DrawText(x, y int32, s string) {
	gfx.StringColor(r.sdl, x, y, s, color(r.config.TextColor, 255))
}

// Capture reads back the current frame as top-down RGBA rows.
func (r *Renderer) Capture() (pixels []byte, width, height, pitch int, err error) {
	w, h, err := r.sdl.GetOutputSize()
	if err != nil {
		return nil, 0, 0, 0, err
	}
	width, height, pitch = int(w), int(h), int(w)*4
	pixels = make([]byte, pitch*height)
	if err := r.sdl.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return nil, 0, 0, 0, fmt.Errorf("reading pixels: %w", err)
	}
	return pixels, width, height, pitch, nil
}

// Close frees every texture and surface.
func (r *Renderer) Close() {
	for _, t := range r.textures {
		_ = t.Destroy()
	}
	for _, s := range r.tiles {
		s.Free()
	}
	r.textures = map[string]*sdl.Texture{}
	r.tiles = map[tileKey]*sdl.Surface{}
}

func (r *Renderer) texture(frame string) (*sdl.Texture, error) {
	if t, ok := r.textures[frame]; ok {
		return t, nil
	}
	f, ok := r.atlas[frame]
	if !ok {
		return nil, fmt.Errorf("no frame %q", frame)
	}
	s, err := surfaceFrom(f)
	if err != nil {
		return nil, err
	}
	defer s.Free()
	t, err := r.sdl.CreateTextureFromSurface(s)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", frame, err)
	}
	r.textures[frame] = t
	return t, nil
}

func (r *Renderer) tileSurface(frame string, factor int) (*sdl.Surface, error) {
	key := tileKey{frame, factor}
	if s, ok := r.tiles[key]; ok {
		return s, nil
	}
	f, ok := r.atlas[frame]
	if !ok {
		return nil, fmt.Errorf("no frame %q", frame)
	}
	s, err := surfaceFrom(f.Scaled(factor))
	if err != nil {
		return nil, err
	}
	r.tiles[key] = s
	return s, nil
}

func (r *Renderer) warnMissing(frame string, err error) {
	if r.missing[frame] {
		return
	}
	r.missing[frame] = true
	r.log.Warn("cannot draw frame", zap.String("frame", frame), zap.Error(err))
}

func surfaceFrom(f sprite.Frame) (*sdl.Surface, error) {
	s, err := sdl.CreateRGBSurfaceWithFormat(0, int32(f.Width), int32(f.Height), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("creating surface: %w", err)
	}
	pix := s.Pixels()
	row := f.Width * 4
	for y := 0; y < f.Height; y++ {
		copy(pix[y*int(s.Pitch):], f.Pixels[y*row:(y+1)*row])
	}
	return s, nil
}

func project(pts []math.Vec2, cam *camera.Camera) (vx, vy []int16) {
	vx = make([]int16, len(pts))
	vy = make([]int16, len(pts))
	for i, p := range pts {
		s := cam.WorldToScreen(p)
		vx[i] = clamp16(s.X)
		vy[i] = clamp16(s.Y)
	}
	return vx, vy
}

func clamp16(v float64) int16 {
	return int16(gomath.Max(gomath.MinInt16, gomath.Min(gomath.MaxInt16, gomath.Round(v))))
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

func color(c uint32, a uint8) sdl.Color {
	return sdl.Color{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: a}
}
