package loader

import (
	"fmt"
	"os"

	"github.com/ppiankov/plugintriage/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadIssues reads the issues file: a list of entries keyed by plugin id.
func LoadIssues(path string) ([]models.IssuesEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read issues file: %w", err)
	}

	var entries []models.IssuesEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse issues file %s: %w", path, err)
	}

	return entries, nil
}

// LoadScanner reads the scanner file: a list of entries keyed by
// repository name. An explicit null findings value decodes to an empty
// list rather than failing.
func LoadScanner(path string) ([]models.ScannerEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scanner file: %w", err)
	}

	var entries []models.ScannerEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse scanner file %s: %w", path, err)
	}

	return entries, nil
}

// LoadNoteOverrides reads the custom notes file: a plugin id to
// free-text note mapping.
func LoadNoteOverrides(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse notes file %s: %w", path, err)
	}
	if overrides == nil {
		overrides = map[string]string{}
	}

	return overrides, nil
}
