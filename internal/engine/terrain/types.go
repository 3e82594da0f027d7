// Package terrain builds 2D terrain slabs from numeric series: the
// boundary path, its normalized vertex loops, the rendered layers, the
// static physics body, and per-frame culling of decorations.
package terrain

import (
	"github.com/Faultbox/stockscape/internal/engine/physics"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/pkg/math"
)

// Config holds the constants used to shape and dress a terrain.
type Config struct {
	// Series scaling.
	ScaleX      float64 `yaml:"scale_x"`
	BaseY       float64 `yaml:"base_y"`
	HeightScale float64 `yaml:"height_scale"`
	Depth       float64 `yaml:"depth"`

	// SampleStep is the longest edge allowed in the vertex loop.
	SampleStep float64 `yaml:"sample_step"`

	FillColor uint32 `yaml:"fill_color"`

	// Hole texture bands.
	HoleBand      float64 `yaml:"hole_band"`
	HoleTileWidth float64 `yaml:"hole_tile_width"`
	HoleScale     float64 `yaml:"hole_scale"`
	HoleFrame     string  `yaml:"hole_frame"`

	// Grass outline and sprites.
	LineWidth   float64  `yaml:"line_width"`
	GrassColor  uint32   `yaml:"grass_color"`
	GrassChance float64  `yaml:"grass_chance"`
	GrassLift   float64  `yaml:"grass_lift"`
	GrassFrames []string `yaml:"grass_frames"`
	GrassFPS    float64  `yaml:"grass_fps"`

	// Physics body.
	Friction        float64 `yaml:"friction"`
	RemoveCollinear float64 `yaml:"remove_collinear"`
	MinimumArea     float64 `yaml:"minimum_area"`
}

// DefaultConfig returns the standard terrain look.
func DefaultConfig() Config {
	return Config{
		ScaleX:      100,
		BaseY:       600,
		HeightScale: 900,
		Depth:       200,
		SampleStep:  30,
		FillColor:   0x685339,

		HoleBand:      1024,
		HoleTileWidth: 512,
		HoleScale:     2,
		HoleFrame:     "wholes-small",

		LineWidth:   25,
		GrassColor:  0xadea53,
		GrassChance: 0.15,
		GrassLift:   15,
		GrassFrames: []string{"grass"},

		Friction:        0.7,
		RemoveCollinear: 0.01,
		MinimumArea:     1,
	}
}

// BodyLabel tags terrain bodies in the physics world.
const BodyLabel = "terrain"

// Decoration is a renderable whose visibility follows the camera.
// X1 and X2 are the world-space horizontal span; X1 == X2 for point
// sprites.
type Decoration struct {
	X1, X2 float64
	Kind   scene.Kind
	Node   scene.Node
}

// Renderer is the drawing surface a terrain is built into.
type Renderer interface {
	FillPolygon(origin math.Vec2, pts []math.Vec2, color uint32) (scene.Node, error)
	StrokePolyline(origin math.Vec2, pts []math.Vec2, width float64, color uint32) (scene.Node, error)
	GeometryMask(n scene.Node) (*scene.GeometryMask, error)
	TileSprite(x, y, width, height, scale float64, frame string, mask *scene.GeometryMask) (scene.Node, error)
	Image(x, y float64, frame string) (scene.Node, error)
	Sprite(x, y float64, frames []string, fps float64) (scene.Node, error)
}

// Physics creates collision bodies.
type Physics interface {
	StaticFromVertices(pos math.Vec2, loops [][]math.Vec2, opts physics.BodyOptions) (physics.Body, error)
}

// Viewport reports the visible world rectangle.
type Viewport interface {
	WorldView() math.Rect
}
