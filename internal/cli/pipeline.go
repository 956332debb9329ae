package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ppiankov/plugintriage/internal/aggregator"
	"github.com/ppiankov/plugintriage/internal/loader"
	"github.com/ppiankov/plugintriage/internal/models"
	"github.com/ppiankov/plugintriage/internal/notes"
	"github.com/ppiankov/plugintriage/internal/reporter"
	"github.com/ppiankov/plugintriage/internal/resolver"
	"github.com/ppiankov/plugintriage/internal/updatecenter"
)

// PipelineConfig holds options for one report generation run.
type PipelineConfig struct {
	UpdateCenterURL string
	IssuesFile      string
	ScannerFile     string
	NotesFile       string
	OutputFile      string
	StaleYears      int
	HTTPTimeout     time.Duration
	Now             time.Time
}

// RunPipeline executes the report generation pipeline:
// load inputs → fetch snapshot → resolve repos → aggregate → notes →
// sort → write → statistics. Every failure is terminal; no partial
// report is written.
func RunPipeline(pcfg PipelineConfig) error {
	fmt.Println("Loading input files...")

	issues, err := loader.LoadIssues(pcfg.IssuesFile)
	if err != nil {
		logError("Failed to load issues: %v", err)
		return err
	}
	scanner, err := loader.LoadScanner(pcfg.ScannerFile)
	if err != nil {
		logError("Failed to load scanner findings: %v", err)
		return err
	}
	overrides, err := loader.LoadNoteOverrides(pcfg.NotesFile)
	if err != nil {
		logError("Failed to load note overrides: %v", err)
		return err
	}

	fmt.Fprintln(os.Stderr, "Downloading update center data...")
	client := updatecenter.New(pcfg.UpdateCenterURL, pcfg.HTTPTimeout)
	uc, err := client.Fetch(context.Background())
	if err != nil {
		logError("Failed to fetch update center: %v", err)
		return err
	}
	fmt.Fprintln(os.Stderr, "Downloaded successfully.")

	fmt.Printf("Loaded %d entries from %s\n", len(issues), pcfg.IssuesFile)
	fmt.Printf("Loaded %d entries from %s\n", len(scanner), pcfg.ScannerFile)
	fmt.Printf("Found %d plugins in update center\n", len(uc.Plugins))

	entries := buildEntries(uc, issues, scanner, overrides, pcfg.Now, pcfg.StaleYears)

	if err := writeReport(pcfg.OutputFile, entries); err != nil {
		logError("Failed to write report: %v", err)
		return err
	}

	fmt.Printf("\nGenerated %s with %d entries\n", pcfg.OutputFile, len(entries))

	text := reporter.NewTextReporter(os.Stdout)
	return text.Generate(models.ComputeStats(entries))
}

// buildEntries assembles and sorts the full report entry list. The
// registry is walked in plugin-id order so ties in the popularity sort
// come out identical across runs.
func buildEntries(uc *models.UpdateCenter, issues []models.IssuesEntry, scanner []models.ScannerEntry, overrides map[string]string, now time.Time, staleYears int) []models.ReportEntry {
	ids := resolver.SortedPluginIDs(uc.Plugins)

	repoIndex := resolver.BuildRepoIndex(uc.Plugins, ids)
	fmt.Printf("Built mapping for %d repositories\n", len(repoIndex))

	agg := aggregator.New(issues, scanner)
	staleBefore := now.Add(-time.Duration(staleYears) * 365 * 24 * time.Hour)

	entries := make([]models.ReportEntry, 0, len(ids))
	for _, id := range ids {
		info := uc.Plugins[id]

		date := info.ReleaseTimestamp
		if date == nil {
			date = ""
		}

		entry := models.ReportEntry{
			ID:          id,
			DisplayName: info.Title,
			Popularity:  info.Popularity,
			Date:        date,
			Notes:       notes.Synthesize(id, info, uc.Deprecations, uc.Warnings, overrides, staleBefore),
			SCM:         info.SCM,
		}

		if is := agg.IssueStats(id); is != nil {
			count := is.Count
			entry.Issues = &count
			entry.IssueDetails = is.Details
		}
		if ss := agg.ScannerStats(info.SCM); ss != nil {
			count := ss.Count
			entry.Scanner = &count
			entry.ScannerDetails = ss.Details
		}

		entries = append(entries, entry)
	}

	// Popularity descending; the stable sort keeps id order for ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Popularity > entries[j].Popularity
	})

	return entries
}

// writeReport serializes the entries to the output path, creating the
// parent directory if needed.
func writeReport(path string, entries []models.ReportEntry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return reporter.NewJSONReporter(f, true).Generate(entries)
}
