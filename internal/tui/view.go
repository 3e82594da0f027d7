package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.mapSize()

	header := titleStyle.Render(" stockscape ")
	if m.showStats {
		header += dimStyle.Render(" " + m.world.Stats(frameRate).String())
	}
	header = lipgloss.NewStyle().Width(w).MaxHeight(1).Render(header)

	canvas := strings.Join(renderScene(m.world.Scene, m.world.Camera, w, h).lines(), "\n")

	var footer string
	if m.help.ShowAll {
		overlay := boxStyle.Render(m.help.View(m.keys))
		canvas = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, overlay)
		footer = dimStyle.Render(" " + m.status)
	} else {
		footer = lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+m.status+"  "), m.help.View(m.keys))
	}
	footer = lipgloss.NewStyle().Width(w).MaxHeight(1).Render(footer)

	return appStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer))
}
