// Command stockscape shows terrain generated from a price series in an
// SDL2 window. Arrow keys pan, the wheel zooms, F1 toggles stats, F2 body
// bounds, F12 saves a screenshot.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/config"
	"github.com/Faultbox/stockscape/internal/game"
	"github.com/Faultbox/stockscape/internal/logger"
)

func main() {
	flags, err := config.ParseFlags("stockscape", os.Args[1:], nil)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.FileConfig(),
		Console: os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Stockscape ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := cfg.Data.LoadSeries()
	if err != nil {
		logger.Error("failed to load series", zap.Error(err))
		os.Exit(1)
	}

	g, err := game.New(cfg, s)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}
