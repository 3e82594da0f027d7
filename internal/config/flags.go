package config

import (
	"flag"
	"io"
)

// Flags are the command-line overrides shared by the commands.
type Flags struct {
	Config     string
	Debug      bool
	Series     string
	Seed       uint64
	Width      int
	Height     int
	Windowed   bool
	Fullscreen bool

	seedSet bool
}

// ParseFlags parses args (without the program name).
func ParseFlags(name string, args []string, output io.Writer) (*Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and stats")
	fs.StringVar(&f.Series, "series", "", "Series file (YAML or JSON)")
	fs.Uint64Var(&f.Seed, "seed", 0, "Grass placement seed")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			f.seedSet = true
		}
	})
	return &f, nil
}

func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowStats = true
	}
	if f.Series != "" {
		cfg.Data.Series = f.Series
	}
	if f.seedSet {
		cfg.Terrain.Seed = f.Seed
	}
	if f.Windowed {
		cfg.Window.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Window.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
}
