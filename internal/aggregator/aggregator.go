package aggregator

import (
	"github.com/ppiankov/plugintriage/internal/models"
	"github.com/ppiankov/plugintriage/internal/resolver"
)

// Aggregator joins findings from the issues and scanner files onto
// plugins. Both source lists are indexed by their natural key up front;
// the first entry wins on duplicate keys, matching a linear first-match
// scan over the source order.
type Aggregator struct {
	issuesByID    map[string]models.IssuesEntry
	scannerByRepo map[string]models.ScannerEntry
}

// New builds an aggregator over the loaded source lists.
func New(issues []models.IssuesEntry, scanner []models.ScannerEntry) *Aggregator {
	a := &Aggregator{
		issuesByID:    make(map[string]models.IssuesEntry, len(issues)),
		scannerByRepo: make(map[string]models.ScannerEntry, len(scanner)),
	}
	for _, e := range issues {
		if _, ok := a.issuesByID[e.ID]; !ok {
			a.issuesByID[e.ID] = e
		}
	}
	for _, e := range scanner {
		if _, ok := a.scannerByRepo[e.Repo]; !ok {
			a.scannerByRepo[e.Repo] = e
		}
	}
	return a
}

// IssueStats holds the unresolved-issue count and details for one
// plugin. Details stays nil when no unresolved finding carries an
// issue or url value; the count is still reported, including zero.
type IssueStats struct {
	Count   int
	Details []models.IssueDetail
}

// ScannerStats holds the unresolved scanner-finding count and details
// for one plugin's repository.
type ScannerStats struct {
	Count   int
	Details []models.ScannerDetail
}

// IssueStats returns the stats for a plugin, or nil when the plugin does
// not appear in the issues file at all. Findings with a release are
// resolved and excluded from both count and details.
func (a *Aggregator) IssueStats(pluginID string) *IssueStats {
	entry, ok := a.issuesByID[pluginID]
	if !ok {
		return nil
	}

	stats := &IssueStats{}
	for _, f := range entry.Findings {
		if f.HasRelease {
			continue
		}
		stats.Count++

		issue := f.Issue
		if issue == "" {
			issue = f.URL
		}
		if issue == "" {
			continue
		}
		stats.Details = append(stats.Details, models.IssueDetail{
			Issue: issue,
			Fix:   f.Fix,
		})
	}

	return stats
}

// ScannerStats returns the stats for the repository behind a plugin's
// SCM URL, or nil when the plugin has no resolvable repository or the
// repository does not appear in the scanner file. Findings assessed as
// false positives are excluded from both count and details.
func (a *Aggregator) ScannerStats(scmURL string) *ScannerStats {
	repo := resolver.RepoName(scmURL)
	if repo == "" {
		return nil
	}
	entry, ok := a.scannerByRepo[repo]
	if !ok {
		return nil
	}

	stats := &ScannerStats{}
	for _, f := range entry.Findings {
		if f.Assessment == models.FalsePositive {
			continue
		}
		stats.Count++

		if f.URL == "" {
			continue
		}
		typ := f.Type
		if typ == "" {
			typ = "Unknown"
		}
		stats.Details = append(stats.Details, models.ScannerDetail{
			URL:  f.URL,
			Type: typ,
		})
	}

	return stats
}
