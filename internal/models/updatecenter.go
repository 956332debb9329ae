package models

import "gopkg.in/yaml.v3"

// UpdateCenter is the remote registry snapshot fetched once per run.
type UpdateCenter struct {
	Plugins      map[string]PluginInfo  `json:"plugins"`
	Deprecations map[string]Deprecation `json:"deprecations"`
	Warnings     []SecurityWarning      `json:"warnings"`
}

// PluginInfo holds the metadata we extract for a single plugin.
// ReleaseTimestamp is either an ISO-8601 string or a Unix-milliseconds
// number depending on the snapshot, so it stays untyped until the notes
// synthesizer interprets it.
type PluginInfo struct {
	Popularity       int         `json:"popularity"`
	ReleaseTimestamp interface{} `json:"releaseTimestamp"`
	SCM              string      `json:"scm"`
	Title            string      `json:"title"`
	Version          string      `json:"version"`
	Labels           []string    `json:"labels"`
}

// HasLabel reports whether the plugin carries the given label.
func (p PluginInfo) HasLabel(label string) bool {
	for _, l := range p.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Deprecation is one entry of the update center deprecations map.
type Deprecation struct {
	URL string `json:"url"`
}

// SecurityWarning is an advisory from the update center. It applies to a
// plugin when Name matches the plugin id and one of the version patterns
// matches the plugin's current version string in full.
type SecurityWarning struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Versions []WarningVersion `json:"versions"`
}

// WarningVersion holds a single version regex pattern.
type WarningVersion struct {
	Pattern string `json:"pattern"`
}

// IssuesEntry is one record of the issues file, keyed by plugin id.
type IssuesEntry struct {
	ID       string         `yaml:"id"`
	Findings []IssueFinding `yaml:"findings"`
}

// IssueFinding is a single reported issue for a plugin. A finding is
// unresolved unless the source record carried a release key; the key's
// presence matters, not its value, so decoding tracks it explicitly.
type IssueFinding struct {
	Issue      string
	URL        string
	Fix        string
	HasRelease bool
}

// UnmarshalYAML decodes the known fields and records whether a release
// key was present at all.
func (f *IssueFinding) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Issue string `yaml:"issue"`
		URL   string `yaml:"url"`
		Fix   string `yaml:"fix"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	f.Issue = aux.Issue
	f.URL = aux.URL
	f.Fix = aux.Fix
	f.HasRelease = false
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "release" {
			f.HasRelease = true
			break
		}
	}
	return nil
}

// ScannerEntry is one record of the scanner file, keyed by repository
// name rather than plugin id. A findings value of explicit null decodes
// to an empty list.
type ScannerEntry struct {
	Repo     string        `yaml:"repo"`
	Findings []ScanFinding `yaml:"findings"`
}

// ScanFinding is a single static-analysis finding. It counts as
// unresolved unless the assessment dismisses it as a false positive.
type ScanFinding struct {
	Assessment string `yaml:"assessment"`
	URL        string `yaml:"url"`
	Type       string `yaml:"type"`
}

// FalsePositive is the assessment value that excludes a scanner finding.
const FalsePositive = "False Positive"
