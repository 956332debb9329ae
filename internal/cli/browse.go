package cli

import (
	"github.com/ppiankov/plugintriage/internal/tui"
	"github.com/spf13/cobra"
)

var browseInput string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a generated report interactively",
	Long: `Browse opens a terminal UI over a generated report: a sortable,
searchable table of plugins with a detail panel showing notes and
finding URLs.

Example:
  plugintriage browse
  plugintriage browse --input /tmp/report.json`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseInput, "input", "i", "",
		"report JSON to read (default: configured output_file)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if browseInput == "" {
		browseInput = cfg.OutputFile
	}

	entries, err := readReport(browseInput)
	if err != nil {
		logError("Failed to read report: %v", err)
		return err
	}

	logVerbose("Browsing %d entries from %s", len(entries), browseInput)
	return tui.Run(entries)
}
