package terrain

import (
	"fmt"
	gomath "math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/engine/path"
	"github.com/Faultbox/stockscape/internal/engine/physics"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/internal/series"
	"github.com/Faultbox/stockscape/pkg/math"
)

// Terrain is one built terrain slab. It owns its decorations and keeps
// their visibility in step with the camera.
type Terrain struct {
	index int
	pos   math.Vec2

	outline  path.Path
	geometry Geometry

	fill  scene.Node
	grass scene.Node
	mask  *scene.GeometryMask
	body  physics.Body

	decorations []Decoration

	camera Viewport
	log    *zap.Logger
}

type options struct {
	cfg    Config
	index  int
	rng    *rand.Rand
	log    *zap.Logger
	camera Viewport
}

// Option configures Build.
type Option func(*options)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithIndex sets the terrain index used in logs and the body label.
func WithIndex(i int) Option {
	return func(o *options) { o.index = i }
}

// WithRand sets the random source for grass placement.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed seeds a PCG random source for grass placement.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithCamera sets the viewport read by Update.
func WithCamera(v Viewport) Option {
	return func(o *options) { o.camera = v }
}

// Build generates the terrain outline for s and adds its layers to r and
// its static body to w, anchored at pos. A failing renderer or physics
// call aborts the build; nodes already added to r are left in place.
func Build(r Renderer, w Physics, s series.Series, pos math.Vec2, opts ...Option) (*Terrain, error) {
	o := options{cfg: DefaultConfig(), index: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	cfg := o.cfg
	log := o.log.With(zap.Int("terrain", o.index))

	log.Debug("building terrain", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))

	shape, stats, err := outline(s, cfg)
	if err != nil {
		return nil, fmt.Errorf("generating path: %w", err)
	}
	log.Debug("series scaled",
		zap.Int("entries", len(s)),
		zap.String("first", s[0].Key),
		zap.String("last", s[len(s)-1].Key),
		zap.Float64("min", stats.lo),
		zap.Float64("max", stats.hi),
		zap.Int("commands", len(shape)),
	)

	geom, err := Normalize(shape, cfg.SampleStep)
	if err != nil {
		return nil, err
	}

	t := &Terrain{
		index:    o.index,
		pos:      pos,
		outline:  shape,
		geometry: geom,
		camera:   o.camera,
		log:      log,
	}
	width, height := geom.Width(), geom.Height()
	loop := geom.Loops[0]
	rounded := roundPoints(loop)

	t.fill, err = r.FillPolygon(pos, rounded, cfg.FillColor)
	if err != nil {
		return nil, fmt.Errorf("filling terrain: %w", err)
	}

	t.mask, err = r.GeometryMask(t.fill)
	if err != nil {
		return nil, fmt.Errorf("creating terrain mask: %w", err)
	}

	bands := int(gomath.Ceil(width / cfg.HoleBand))
	for i := 0; i < bands; i++ {
		x := pos.X + float64(i)*cfg.HoleBand
		n, err := r.TileSprite(x, pos.Y, cfg.HoleTileWidth, height, cfg.HoleScale, cfg.HoleFrame, t.mask)
		if err != nil {
			return nil, fmt.Errorf("adding hole band %d: %w", i, err)
		}
		t.decorations = append(t.decorations, Decoration{X1: x, X2: x + cfg.HoleBand, Kind: scene.KindTileSprite, Node: n})
	}

	t.grass, err = r.StrokePolyline(pos, rounded, cfg.LineWidth, cfg.GrassColor)
	if err != nil {
		return nil, fmt.Errorf("stroking grass: %w", err)
	}

	for _, l := range geom.Loops {
		for _, v := range l {
			if o.rng.Float64() >= cfg.GrassChance {
				continue
			}
			d, err := t.plantGrass(r, cfg, v.X+pos.X, v.Y+pos.Y-cfg.GrassLift)
			if err != nil {
				return nil, err
			}
			t.decorations = append(t.decorations, d)
		}
	}

	label := BodyLabel
	if o.index >= 0 {
		label = fmt.Sprintf("%s-%d", BodyLabel, o.index)
	}
	centre := math.Vec2{X: width/2 + pos.X, Y: height/2 + pos.Y}
	t.body, err = w.StaticFromVertices(centre, geom.Loops, physics.BodyOptions{
		Label:           label,
		Friction:        cfg.Friction,
		Sensor:          false,
		FlagInternal:    true,
		RemoveCollinear: cfg.RemoveCollinear,
		MinimumArea:     cfg.MinimumArea,
	})
	if err != nil {
		return nil, fmt.Errorf("creating terrain body: %w", err)
	}

	// The engine centres the body on its centre of mass; shift it so the
	// body's bounds start at pos like the drawn polygon.
	offset := t.body.Position().Sub(t.body.Bounds().Min())
	t.body.SetPosition(pos.Add(offset))

	log.Debug("terrain built",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("vertices", len(loop)),
		zap.Int("hole_bands", bands),
		zap.Int("decorations", len(t.decorations)),
		zap.Float64("body_x", t.body.Position().X),
		zap.Float64("body_y", t.body.Position().Y),
	)
	return t, nil
}

func (t *Terrain) plantGrass(r Renderer, cfg Config, x, y float64) (Decoration, error) {
	var (
		n    scene.Node
		kind scene.Kind
		err  error
	)
	switch len(cfg.GrassFrames) {
	case 0:
		n, err = r.Image(x, y, "grass")
		kind = scene.KindImage
	case 1:
		n, err = r.Image(x, y, cfg.GrassFrames[0])
		kind = scene.KindImage
	default:
		n, err = r.Sprite(x, y, cfg.GrassFrames, cfg.GrassFPS)
		kind = scene.KindSprite
	}
	if err != nil {
		return Decoration{}, fmt.Errorf("planting grass at %.0f: %w", x, err)
	}
	return Decoration{X1: x, X2: x, Kind: kind, Node: n}, nil
}

// BuildRow builds count terrains from the same series side by side,
// starting at origin, with indexes 0..count-1.
func BuildRow(r Renderer, w Physics, s series.Series, origin math.Vec2, count int, opts ...Option) ([]*Terrain, error) {
	var row []*Terrain
	pos := origin
	for i := 0; i < count; i++ {
		t, err := Build(r, w, s, pos, append(opts, WithIndex(i))...)
		if err != nil {
			return row, fmt.Errorf("terrain %d: %w", i, err)
		}
		row = append(row, t)
		pos.X += t.Width()
	}
	return row, nil
}

// Index returns the terrain index, or -1 if none was given.
func (t *Terrain) Index() int { return t.index }

// Position returns the world anchor of the terrain.
func (t *Terrain) Position() math.Vec2 { return t.pos }

// Width returns the terrain width in world units.
func (t *Terrain) Width() float64 { return t.geometry.Width() }

// Height returns the terrain height in world units.
func (t *Terrain) Height() float64 { return t.geometry.Height() }

// Bounds returns the world-space bounds of the terrain.
func (t *Terrain) Bounds() math.Bounds {
	return math.Bounds{
		X: math.Range{Low: t.pos.X, High: t.pos.X + t.Width()},
		Y: math.Range{Low: t.pos.Y, High: t.pos.Y + t.Height()},
	}
}

// Outline returns the generated boundary path.
func (t *Terrain) Outline() path.Path { return t.outline }

// Loops returns the normalized vertex loops.
func (t *Terrain) Loops() [][]math.Vec2 { return t.geometry.Loops }

// Body returns the static physics body.
func (t *Terrain) Body() physics.Body { return t.body }

// Fill returns the filled terrain node.
func (t *Terrain) Fill() scene.Node { return t.fill }

// Decorations returns the culled decorations.
func (t *Terrain) Decorations() []Decoration { return t.decorations }

func roundPoints(pts []math.Vec2) []math.Vec2 {
	out := make([]math.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Round()
	}
	return out
}
