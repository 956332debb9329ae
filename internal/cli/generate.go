package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Generate command flags
	generateOutput  string
	generateIssues  string
	generateScanner string
	generateNotes   string
	generateURL     string
	generateNow     string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the plugin security and maintenance report",
	Long: `Generate fetches the update center snapshot, joins it with the local
issues, scanner, and note-override files, and writes one JSON report.

The command will:
1. Load the three local YAML input files
2. Download the update center snapshot
3. Resolve repository names from SCM URLs
4. Count unresolved findings per plugin and extract details
5. Synthesize notes (deprecation, adoption, advisories, staleness)
6. Write the report sorted by popularity and print statistics

Example:
  plugintriage generate
  plugintriage generate -o /tmp/report.json
  plugintriage generate --issues ./issues.yaml --now 2026-01-01T00:00:00Z`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"report output path (default from config)")
	generateCmd.Flags().StringVar(&generateIssues, "issues", "",
		"issues file path (default from config)")
	generateCmd.Flags().StringVar(&generateScanner, "scanner", "",
		"scanner findings file path (default from config)")
	generateCmd.Flags().StringVar(&generateNotes, "notes", "",
		"note overrides file path (default from config)")
	generateCmd.Flags().StringVar(&generateURL, "update-center-url", "",
		"update center snapshot URL (default from config)")
	generateCmd.Flags().StringVar(&generateNow, "now", "",
		"reference time as RFC3339, for reproducible staleness (default: wall clock)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Apply config defaults if flags not set
	if generateOutput == "" {
		generateOutput = cfg.OutputFile
	}
	if generateIssues == "" {
		generateIssues = cfg.IssuesFile
	}
	if generateScanner == "" {
		generateScanner = cfg.ScannerFile
	}
	if generateNotes == "" {
		generateNotes = cfg.NotesFile
	}
	if generateURL == "" {
		generateURL = cfg.UpdateCenterURL
	}

	now := time.Now().UTC()
	if generateNow != "" {
		parsed, err := time.Parse(time.RFC3339, generateNow)
		if err != nil {
			return &ValidationError{Message: fmt.Sprintf("invalid --now value %q: %v", generateNow, err)}
		}
		now = parsed.UTC()
	}

	logVerbose("Generating report from: %s", generateURL)
	logDebug("Config: issues=%s, scanner=%s, notes=%s, output=%s",
		generateIssues, generateScanner, generateNotes, generateOutput)

	return RunPipeline(PipelineConfig{
		UpdateCenterURL: generateURL,
		IssuesFile:      generateIssues,
		ScannerFile:     generateScanner,
		NotesFile:       generateNotes,
		OutputFile:      generateOutput,
		StaleYears:      cfg.StaleYears,
		HTTPTimeout:     time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		Now:             now,
	})
}
