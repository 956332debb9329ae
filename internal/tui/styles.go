package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Flag colors
var (
	colorAdvisory   = lipgloss.Color("#FF0000")
	colorDeprecated = lipgloss.Color("#FF8800")
	colorStale      = lipgloss.Color("#FFFF00")
	colorClean      = lipgloss.Color("#00FF00")
	colorMuted      = lipgloss.Color("#888888")
	colorAccent     = lipgloss.Color("#7B68EE")
	colorBorder     = lipgloss.Color("#444444")
)

// Panel styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleDetailPanel = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// noteFlag classifies a notes string by its most severe line.
func noteFlag(notes string) string {
	switch {
	case strings.Contains(notes, "Unresolved "):
		return "advisory"
	case strings.Contains(notes, "Deprecated"):
		return "deprecated"
	case strings.Contains(notes, "Unmaintained"):
		return "stale"
	case notes != "":
		return "noted"
	default:
		return ""
	}
}

// flagStyle returns the lipgloss style for a note flag.
func flagStyle(flag string) lipgloss.Style {
	switch flag {
	case "advisory":
		return lipgloss.NewStyle().Foreground(colorAdvisory).Bold(true)
	case "deprecated":
		return lipgloss.NewStyle().Foreground(colorDeprecated).Bold(true)
	case "stale":
		return lipgloss.NewStyle().Foreground(colorStale)
	case "noted":
		return lipgloss.NewStyle().Foreground(colorClean)
	default:
		return lipgloss.NewStyle()
	}
}
