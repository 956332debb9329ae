package reporter

import (
	"fmt"
	"io"

	"github.com/ppiankov/plugintriage/internal/models"
)

// TextReporter prints the human-readable statistics block shown after a
// report is written.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate prints the summary statistics for a finished run.
func (r *TextReporter) Generate(stats models.ReportStats) error {
	r.printf("\nStatistics:\n")
	r.printf("--------------------------------------------------\n")
	r.printf("  Total plugins: %d\n", stats.TotalPlugins)
	r.printf("  Plugins in issues file: %d\n", stats.PluginsWithIssues)
	r.printf("  Plugins in scanner file: %d\n", stats.PluginsWithScanner)
	r.printf("  Total unresolved issues: %d\n", stats.TotalIssues)
	r.printf("  Total scanner findings: %d\n", stats.TotalScanner)
	r.printf("  Plugins with notes: %d\n", stats.PluginsWithNotes)
	return nil
}

// printf is a helper to write formatted output
func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
