package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := m.mapSize()
		m.world.Camera.Resize(float64(w*2), float64(h*4))
		m.world.Camera.FitToBounds(m.world.Bounds())
		m.world.Cull()

	case tickMsg:
		now := time.Time(msg)
		dt := 1.0 / frameRate
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last).Seconds(), 0.25)
		}
		m.last = now
		m.world.Update(dt)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.world.Pan(-1, panStep)
		case key.Matches(msg, m.keys.Right):
			m.world.Pan(1, panStep)
		case key.Matches(msg, m.keys.ZoomIn):
			m.world.Zoom(2 * m.cfg.Camera.ZoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.world.Zoom(-2 * m.cfg.Camera.ZoomStep)
		case key.Matches(msg, m.keys.Fit):
			m.world.Camera.FitToBounds(m.world.Bounds())
		case key.Matches(msg, m.keys.Stats):
			m.showStats = !m.showStats
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		default:
			return m, nil
		}
		visible := m.world.Cull()
		v := m.world.Camera.WorldView()
		m.status = fmt.Sprintf("x %.0f..%.0f  zoom %.2f  %d visible", v.X, v.Right(), m.world.Camera.Zoom, visible)
	}
	return m, nil
}
