// Package game runs the desktop viewer: window, input, world update and
// drawing.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/config"
	"github.com/Faultbox/stockscape/internal/engine/debug"
	"github.com/Faultbox/stockscape/internal/engine/input"
	"github.com/Faultbox/stockscape/internal/engine/renderer"
	"github.com/Faultbox/stockscape/internal/engine/sprite"
	"github.com/Faultbox/stockscape/internal/engine/window"
	"github.com/Faultbox/stockscape/internal/game/world"
	"github.com/Faultbox/stockscape/internal/logger"
	"github.com/Faultbox/stockscape/internal/series"
)

var (
	keysLeft  = []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_A}
	keysRight = []sdl.Scancode{sdl.SCANCODE_RIGHT, sdl.SCANCODE_D}
)

// Game is the desktop viewer.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	world    *world.World
	shots    *debug.Screenshots
	log      *zap.Logger

	showStats  bool
	showBodies bool
	fps        int
}

// New opens the window and builds the world from s.
func New(cfg *config.Config, s series.Series) (*Game, error) {
	g := &Game{
		config:    cfg,
		log:       logger.Named("game"),
		showStats: cfg.Window.ShowStats,
		shots:     debug.NewScreenshots("screenshots", "stockscape"),
	}
	g.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("terrains", cfg.Terrain.Count),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	g.world, err = world.New(cfg, s, float64(width), float64(height), logger.Log)
	if err != nil {
		g.window.Close()
		return nil, err
	}

	g.renderer = renderer.New(g.window.Renderer(), sprite.DefaultAtlas(), renderer.DefaultConfig(), logger.Named("renderer"))
	g.input = input.New()
	return g, nil
}

// Run drives the loop until the window closes or Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frames := 0
	fpsTimer := time.Now()
	var limit time.Duration
	if g.config.Window.FPSLimit > 0 {
		limit = time.Second / time.Duration(g.config.Window.FPSLimit)
	}

	g.log.Info("starting loop", zap.Uint64("seed", g.world.Seed()))
	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			break
		}
		g.handleEvents()
		g.update(dt)

		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.window.Present()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frames
			g.log.Debug("frame stats", zap.Stringer("stats", g.world.Stats(g.fps)))
			frames = 0
			fpsTimer = time.Now()
		}
		if limit > 0 {
			if spare := limit - time.Since(now); spare > 0 {
				sdl.Delay(uint32(spare.Milliseconds()))
			}
		}
	}
	return nil
}

func (g *Game) handleEvents() {
	for _, e := range g.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			g.world.Camera.Resize(float64(e.Width), float64(e.Height))
			g.world.Camera.FitToBounds(g.world.Bounds())
		case input.EventKeyDown:
			switch e.Key {
			case sdl.SCANCODE_ESCAPE:
				g.running = false
			case sdl.SCANCODE_F1:
				g.showStats = !g.showStats
			case sdl.SCANCODE_F2:
				g.showBodies = !g.showBodies
			case sdl.SCANCODE_F12:
				g.screenshot()
			case sdl.SCANCODE_HOME:
				g.world.Camera.FitToBounds(g.world.Bounds())
			}
		}
	}
	if wheel := g.input.Wheel(); wheel != 0 {
		g.world.Zoom(float64(wheel) * g.config.Camera.ZoomStep)
	}
}

func (g *Game) update(dt float64) {
	if dir := g.input.Axis(keysLeft, keysRight); dir != 0 {
		g.world.Pan(dir, dt)
	}
	g.world.Update(dt)
}

func (g *Game) render() error {
	if err := g.renderer.Begin(); err != nil {
		return err
	}
	g.renderer.DrawScene(g.world.Scene, g.world.Camera)
	if g.showBodies {
		g.renderer.DrawBodies(g.world.Physics.Bodies(), g.world.Camera)
	}
	if g.showStats {
		g.renderer.DrawText(8, 8, g.world.Stats(g.fps).String())
	}
	return nil
}

func (g *Game) screenshot() {
	pixels, w, h, pitch, err := g.renderer.Capture()
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	name, err := g.shots.Save(pixels, w, h, pitch)
	if err != nil {
		g.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases the renderer and window.
func (g *Game) Close() {
	g.log.Info("closing viewer")
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
