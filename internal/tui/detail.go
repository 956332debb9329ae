package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/plugintriage/internal/models"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 6

// renderDetail produces the detail view for a selected report entry.
func renderDetail(entry *models.ReportEntry, width int) string {
	if entry == nil {
		return styleDetailPanel.Width(width).Render("No plugin selected")
	}

	var b strings.Builder

	name := entry.DisplayName
	if name == "" {
		name = entry.ID
	}
	if flag := noteFlag(entry.Notes); flag != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", flagStyle(flag).Render(strings.ToUpper(flag)), name))
	} else {
		b.WriteString(name + "\n")
	}

	if entry.SCM != "" {
		b.WriteString(fmt.Sprintf("SCM: %s\n", entry.SCM))
	}

	if entry.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes: %s\n", strings.ReplaceAll(entry.Notes, "\n", " | ")))
	}

	parts := make([]string, 0, 2)
	for _, d := range entry.IssueDetails {
		parts = append(parts, d.Issue)
	}
	for _, d := range entry.ScannerDetails {
		parts = append(parts, fmt.Sprintf("%s (%s)", d.URL, d.Type))
	}
	if len(parts) > 0 {
		b.WriteString("Findings: " + strings.Join(parts, "  "))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}
