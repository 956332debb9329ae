package models

// ReportEntry is one plugin's row in the generated report. Issues and
// Scanner are pointers because absence of the key is meaningful: a
// plugin that never appears in a source file has no count at all, which
// is distinct from a count of zero.
type ReportEntry struct {
	ID             string          `json:"id"`
	DisplayName    string          `json:"displayName"`
	Popularity     int             `json:"popularity"`
	Date           interface{}     `json:"date"`
	Notes          string          `json:"notes"`
	SCM            string          `json:"scm"`
	Issues         *int            `json:"issues,omitempty"`
	Scanner        *int            `json:"scanner,omitempty"`
	IssueDetails   []IssueDetail   `json:"issueDetails,omitempty"`
	ScannerDetails []ScannerDetail `json:"scannerDetails,omitempty"`
}

// IssueDetail describes one unresolved issue-file finding.
type IssueDetail struct {
	Issue string `json:"issue"`
	Fix   string `json:"fix,omitempty"`
}

// ScannerDetail describes one unresolved scanner finding.
type ScannerDetail struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ReportStats is the summary block printed after the report is written.
type ReportStats struct {
	TotalPlugins       int `json:"total_plugins"`
	PluginsWithIssues  int `json:"plugins_with_issues"`
	PluginsWithScanner int `json:"plugins_with_scanner"`
	TotalIssues        int `json:"total_issues"`
	TotalScanner       int `json:"total_scanner"`
	PluginsWithNotes   int `json:"plugins_with_notes"`
}

// ComputeStats derives summary statistics from a finished entry list.
func ComputeStats(entries []ReportEntry) ReportStats {
	stats := ReportStats{TotalPlugins: len(entries)}
	for _, e := range entries {
		if e.Issues != nil {
			stats.PluginsWithIssues++
			stats.TotalIssues += *e.Issues
		}
		if e.Scanner != nil {
			stats.PluginsWithScanner++
			stats.TotalScanner += *e.Scanner
		}
		if e.Notes != "" {
			stats.PluginsWithNotes++
		}
	}
	return stats
}
