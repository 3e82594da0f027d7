// Package world assembles the terrains, their scene, physics and camera
// for one viewer session. It has no window dependency so both the desktop
// client and the terminal preview drive it.
package world

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/config"
	"github.com/Faultbox/stockscape/internal/engine/camera"
	"github.com/Faultbox/stockscape/internal/engine/debug"
	"github.com/Faultbox/stockscape/internal/engine/physics"
	"github.com/Faultbox/stockscape/internal/engine/scene"
	"github.com/Faultbox/stockscape/internal/engine/terrain"
	"github.com/Faultbox/stockscape/internal/series"
	"github.com/Faultbox/stockscape/pkg/math"
)

// Gravity points down the screen, in world units per second squared.
var Gravity = math.Vec2{Y: 980}

// World is the built terrain row and everything that observes it.
type World struct {
	Scene    *scene.Scene
	Physics  *physics.World
	Camera   *camera.Camera
	Terrains []*terrain.Terrain

	seed    uint64
	visible int
	log     *zap.Logger
}

// New builds cfg.Terrain.Count terrains from s side by side and fits a
// camera of the given screen size to them.
func New(cfg *config.Config, s series.Series, screenWidth, screenHeight float64, log *zap.Logger) (*World, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Scene:   scene.New(),
		Physics: physics.NewWorld(Gravity, log.Named("physics")),
		Camera:  camera.New(screenWidth, screenHeight),
		seed:    cfg.Terrain.Seed,
		log:     log,
	}
	if cfg.Camera.ScrollSpeed > 0 {
		w.Camera.ScrollSpeed = cfg.Camera.ScrollSpeed
	}
	if w.seed == 0 {
		w.seed = uint64(time.Now().UnixNano())
	}

	var err error
	w.Terrains, err = terrain.BuildRow(w.Scene, w.Physics, s, math.Vec2{}, cfg.Terrain.Count,
		terrain.WithConfig(cfg.Terrain.Config),
		terrain.WithRand(rand.New(rand.NewPCG(w.seed, w.seed))),
		terrain.WithLogger(log.Named("terrain")),
		terrain.WithCamera(w.Camera),
	)
	if err != nil {
		return nil, fmt.Errorf("building terrain: %w", err)
	}

	w.Camera.FitToBounds(w.Bounds())
	w.Cull()

	log.Info("world ready",
		zap.Int("terrains", len(w.Terrains)),
		zap.Int("entries", len(s)),
		zap.Uint64("seed", w.seed),
		zap.Int("nodes", w.Scene.Len()),
	)
	return w, nil
}

// Seed returns the grass seed in use, so a session can be reproduced.
func (w *World) Seed() uint64 {
	return w.seed
}

// Bounds returns the union of all terrain bounds.
func (w *World) Bounds() math.Bounds {
	b := w.Terrains[0].Bounds()
	for _, t := range w.Terrains[1:] {
		b = b.Union(t.Bounds())
	}
	return b
}

// Update advances physics and animations by dt and culls decorations.
func (w *World) Update(dt float64) {
	w.Physics.Step(dt)
	w.Scene.Update(dt)
	w.Cull()
}

// Cull refreshes decoration visibility against the camera and returns
// the number visible.
func (w *World) Cull() int {
	w.visible = 0
	for _, t := range w.Terrains {
		// Terrains without a camera report -1 and are not culled.
		if n := t.Update(); n > 0 {
			w.visible += n
		}
	}
	return w.visible
}

// Pan scrolls the camera horizontally; direction is -1..1.
func (w *World) Pan(direction, dt float64) {
	w.Camera.HandleMovement(direction, 0, dt)
}

// Zoom scales the camera around the view centre.
func (w *World) Zoom(delta float64) {
	w.Camera.HandleZoom(delta)
}

// Stats returns the debug overlay numbers.
func (w *World) Stats(fps int) debug.Stats {
	decorations := 0
	for _, t := range w.Terrains {
		decorations += len(t.Decorations())
	}
	return debug.Stats{
		FPS:         fps,
		Terrains:    len(w.Terrains),
		Decorations: decorations,
		Visible:     w.visible,
		Bodies:      len(w.Physics.Bodies()),
		View:        w.Camera.WorldView(),
	}
}
