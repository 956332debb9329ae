package reporter

import (
	"encoding/json"
	"io"

	"github.com/ppiankov/plugintriage/internal/models"
)

// JSONReporter writes the report entry array as JSON. HTML escaping is
// disabled so URLs and non-ASCII display names stay literal in the
// output file.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// Generate serializes the entries, followed by a trailing newline.
func (r *JSONReporter) Generate(entries []models.ReportEntry) error {
	enc := json.NewEncoder(r.writer)
	enc.SetEscapeHTML(false)
	if r.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(entries)
}
