package cli

import (
	"fmt"
	"sort"

	"github.com/ppiankov/plugintriage/internal/loader"
	"github.com/ppiankov/plugintriage/internal/models"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the local input files without generating a report",
	Long: `Validate parses the issues, scanner, and note-override files and
reports shape problems the pipeline would otherwise hide: duplicate
keys, findings without any issue or url value, and empty custom notes.

Nothing is fetched and no report is written.

Example:
  plugintriage validate
  plugintriage validate --config ./plugintriage.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	issues, err := loader.LoadIssues(cfg.IssuesFile)
	if err != nil {
		logError("Failed to load issues: %v", err)
		return err
	}
	scanner, err := loader.LoadScanner(cfg.ScannerFile)
	if err != nil {
		logError("Failed to load scanner findings: %v", err)
		return err
	}
	overrides, err := loader.LoadNoteOverrides(cfg.NotesFile)
	if err != nil {
		logError("Failed to load note overrides: %v", err)
		return err
	}

	problems := validateInputs(issues, scanner, overrides)
	if len(problems) == 0 {
		fmt.Printf("OK: %d issue entries, %d scanner entries, %d note overrides\n",
			len(issues), len(scanner), len(overrides))
		return nil
	}

	for _, p := range problems {
		logError("%s", p)
	}
	return &ValidationError{Message: fmt.Sprintf("%d problem(s) found in input files", len(problems))}
}

// validateInputs collects shape problems across the three input files.
func validateInputs(issues []models.IssuesEntry, scanner []models.ScannerEntry, overrides map[string]string) []string {
	var problems []string

	seenIDs := make(map[string]bool)
	for i, e := range issues {
		if e.ID == "" {
			problems = append(problems, fmt.Sprintf("issues entry %d has no id", i))
			continue
		}
		if seenIDs[e.ID] {
			problems = append(problems, fmt.Sprintf("issues file has duplicate id %q", e.ID))
		}
		seenIDs[e.ID] = true

		for j, f := range e.Findings {
			if f.Issue == "" && f.URL == "" {
				problems = append(problems, fmt.Sprintf("issues entry %q finding %d has neither issue nor url", e.ID, j))
			}
		}
	}

	seenRepos := make(map[string]bool)
	for i, e := range scanner {
		if e.Repo == "" {
			problems = append(problems, fmt.Sprintf("scanner entry %d has no repo", i))
			continue
		}
		if seenRepos[e.Repo] {
			problems = append(problems, fmt.Sprintf("scanner file has duplicate repo %q", e.Repo))
		}
		seenRepos[e.Repo] = true

		for j, f := range e.Findings {
			if f.URL == "" {
				problems = append(problems, fmt.Sprintf("scanner entry %q finding %d has no url", e.Repo, j))
			}
		}
	}

	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if overrides[id] == "" {
			problems = append(problems, fmt.Sprintf("note override for %q is empty", id))
		}
	}

	return problems
}
