// Package config loads stockscape settings.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/stockscape/internal/engine/terrain"
	"github.com/Faultbox/stockscape/internal/logger"
	"github.com/Faultbox/stockscape/internal/series"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the desktop client.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FPSLimit   int    `yaml:"fps_limit"`
	ShowStats  bool   `yaml:"show_stats"`
}

// TerrainConfig holds the terrain look plus how many to build.
type TerrainConfig struct {
	terrain.Config `yaml:",inline"`

	// Seed for grass placement. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	// Count terrains are tiled left to right.
	Count int `yaml:"count"`
}

// CameraConfig holds camera movement settings.
type CameraConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
	ZoomStep    float64 `yaml:"zoom_step"`
}

// DataConfig selects the input series.
type DataConfig struct {
	// Series is a YAML or JSON file; empty uses the embedded sample.
	Series string `yaml:"series"`
	Field  string `yaml:"field"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// FileConfig returns rotation settings for LogFile, or none if unset.
func (l LoggingConfig) FileConfig() logger.FileConfig {
	if l.LogFile == "" {
		return logger.FileConfig{}
	}
	return logger.DefaultFileConfig(l.LogFile)
}

// Default returns a Config with the standard settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Stockscape",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			Config: terrain.DefaultConfig(),
			Count:  1,
		},
		Camera: CameraConfig{
			ScrollSpeed: 800,
			ZoomStep:    0.1,
		},
		Data: DataConfig{
			Field: series.DefaultField,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that cannot produce a terrain or a window.
func (c *Config) Validate() error {
	t := c.Terrain
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case t.Count < 1:
		return fmt.Errorf("%w: terrain count %d", ErrInvalid, t.Count)
	case t.ScaleX <= 0:
		return fmt.Errorf("%w: terrain scale_x %v", ErrInvalid, t.ScaleX)
	case t.HoleBand <= 0:
		return fmt.Errorf("%w: terrain hole_band %v", ErrInvalid, t.HoleBand)
	case t.GrassChance < 0 || t.GrassChance > 1:
		return fmt.Errorf("%w: terrain grass_chance %v", ErrInvalid, t.GrassChance)
	}
	return nil
}

// LoadSeries reads the configured series, or the embedded sample.
func (d DataConfig) LoadSeries() (series.Series, error) {
	if d.Series == "" {
		return series.Sample(), nil
	}
	return series.Load(d.Series, d.Field)
}
