package tui

import "github.com/charmbracelet/lipgloss"

var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#ADEA53")

	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)

	layerStyles = map[layer]lipgloss.Style{
		layerFill:   lipgloss.NewStyle().Foreground(lipgloss.Color("#685339")),
		layerHole:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3A2C1E")),
		layerGrass:  lipgloss.NewStyle().Foreground(accentFg),
		layerSprite: lipgloss.NewStyle().Foreground(lipgloss.Color("#7CC242")),
	}
)
