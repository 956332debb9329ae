package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/plugintriage/internal/models"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 4

// renderHeader produces the header string from report statistics.
func renderHeader(stats models.ReportStats, width int) string {
	var b strings.Builder

	// Line 1: title and plugin count
	b.WriteString(fmt.Sprintf("plugintriage  Plugins: %d", stats.TotalPlugins))
	b.WriteString("\n")

	// Line 2: source coverage and finding totals
	b.WriteString(fmt.Sprintf("Issues: %d plugins / %d unresolved  Scanner: %d plugins / %d findings",
		stats.PluginsWithIssues, stats.TotalIssues,
		stats.PluginsWithScanner, stats.TotalScanner))
	b.WriteString("\n")

	// Line 3: noted plugins
	noted := fmt.Sprintf("Noted: %d", stats.PluginsWithNotes)
	if stats.PluginsWithNotes > 0 {
		noted = flagStyle("stale").Render(noted)
	}
	b.WriteString(noted)

	return styleHeader.Width(width).Render(b.String())
}
