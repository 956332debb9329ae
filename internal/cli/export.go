package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ppiankov/plugintriage/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportInput  string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a generated report as CSV",
	Long: `Export converts a generated report JSON file into CSV for
spreadsheets and downstream tooling. One row per plugin; note lines are
joined with "; " and absent counts stay empty rather than zero.

Example:
  plugintriage export -o report.csv
  plugintriage export --input /tmp/report.json -o -`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "",
		"report JSON to read (default: configured output_file)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"write CSV to file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportInput == "" {
		exportInput = cfg.OutputFile
	}

	entries, err := readReport(exportInput)
	if err != nil {
		logError("Failed to read report: %v", err)
		return err
	}

	out := os.Stdout
	if exportOutput != "" && exportOutput != "-" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	w := csv.NewWriter(out)
	header := []string{"id", "displayName", "popularity", "date", "issues", "scanner", "notes", "scm"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.DisplayName,
			strconv.Itoa(e.Popularity),
			dateString(e.Date),
			countString(e.Issues),
			countString(e.Scanner),
			strings.ReplaceAll(e.Notes, "\n", "; "),
			e.SCM,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	logVerbose("Exported %d entries from %s", len(entries), exportInput)
	return nil
}

// readReport loads a previously generated report entry list.
func readReport(path string) ([]models.ReportEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var entries []models.ReportEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}

	return entries, nil
}

// countString renders an optional count, keeping absence distinct from zero.
func countString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// dateString renders the date field, which is a string or a number
// depending on what the snapshot carried.
func dateString(date interface{}) string {
	switch v := date.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}
