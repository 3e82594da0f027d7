// Command stockscape-tui previews the generated terrain in a terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Faultbox/stockscape/internal/config"
	"github.com/Faultbox/stockscape/internal/game/world"
	"github.com/Faultbox/stockscape/internal/logger"
	"github.com/Faultbox/stockscape/internal/tui"
)

func main() {
	flags, err := config.ParseFlags("stockscape-tui", os.Args[1:], nil)
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so only file logging is possible.
	if err := logger.Init(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.FileConfig()}); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	s, err := cfg.Data.LoadSeries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Series error: %v\n", err)
		os.Exit(1)
	}

	// Sized for an 80x24 terminal until the first resize.
	w, err := world.New(cfg, s, 160, 88, logger.Log)
	if err != nil {
		logger.Error("failed to build world", zap.Error(err))
		fmt.Fprintf(os.Stderr, "World error: %v\n", err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(tui.New(w, cfg), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("preview error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Preview error: %v\n", err)
		os.Exit(1)
	}
}
