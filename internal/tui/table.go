package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/plugintriage/internal/models"
)

var tableColumns = []table.Column{
	{Title: "Plugin", Width: 26},
	{Title: "Popularity", Width: 10},
	{Title: "Issues", Width: 7},
	{Title: "Scanner", Width: 8},
	{Title: "Notes", Width: 34},
}

// buildRows converts report entries to table rows. Absent counts render
// as "-" to keep them distinct from zero.
func buildRows(entries []models.ReportEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			truncate(e.ID, tableColumns[0].Width),
			fmt.Sprintf("%d", e.Popularity),
			countLabel(e.Issues),
			countLabel(e.Scanner),
			truncate(firstLine(e.Notes), tableColumns[4].Width),
		})
	}
	return rows
}

func countLabel(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}
