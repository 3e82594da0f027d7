// Package tui is a terminal preview of the terrain row, drawn in braille
// and culled against the same camera logic as the desktop viewer.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Faultbox/stockscape/internal/config"
	"github.com/Faultbox/stockscape/internal/game/world"
)

// frameRate is how often physics, animations and culling advance.
const frameRate = 20

// panStep is the seconds of camera scroll applied per key press.
const panStep = 0.25

type tickMsg time.Time

// Model is the bubbletea model of the preview.
type Model struct {
	world *world.World
	cfg   *config.Config

	width  int
	height int

	keys      keyMap
	help      help.Model
	showStats bool
	status    string
	last      time.Time
}

// New wraps a built world. The camera is resized to the terminal once
// its size is known.
func New(w *world.World, cfg *config.Config) Model {
	return Model{
		world:     w,
		cfg:       cfg,
		keys:      defaultKeys(),
		help:      help.New(),
		showStats: cfg.Window.ShowStats,
		status:    "stockscape ready",
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// mapSize is the terrain canvas in cells: everything but header and footer.
func (m Model) mapSize() (int, int) {
	return max(8, m.width), max(4, m.height-2)
}
