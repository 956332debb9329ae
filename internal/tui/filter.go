package tui

import (
	"sort"
	"strings"

	"github.com/ppiankov/plugintriage/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	NotedOnly  bool
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortByPopularity sortField = iota
	sortByID
	sortByIssues
	sortByScanner
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 4

// applyFilters returns entries matching all active filters.
func applyFilters(entries []models.ReportEntry, f filterState) []models.ReportEntry {
	result := make([]models.ReportEntry, 0, len(entries))
	searchLower := strings.ToLower(f.SearchText)

	for _, e := range entries {
		if f.NotedOnly && e.Notes == "" {
			continue
		}
		if searchLower != "" && !matchesSearch(e, searchLower) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func matchesSearch(e models.ReportEntry, searchLower string) bool {
	return strings.Contains(strings.ToLower(e.ID), searchLower) ||
		strings.Contains(strings.ToLower(e.DisplayName), searchLower) ||
		strings.Contains(strings.ToLower(e.Notes), searchLower) ||
		strings.Contains(strings.ToLower(e.SCM), searchLower)
}

// sortEntries sorts a slice of entries in place by the given field.
// Counts sort descending with absent values last; plugin id breaks ties.
func sortEntries(entries []models.ReportEntry, field sortField) {
	sort.SliceStable(entries, func(i, j int) bool {
		switch field {
		case sortByPopularity:
			if entries[i].Popularity != entries[j].Popularity {
				return entries[i].Popularity > entries[j].Popularity
			}
			return entries[i].ID < entries[j].ID
		case sortByID:
			return entries[i].ID < entries[j].ID
		case sortByIssues:
			return countLess(entries[i].Issues, entries[j].Issues, entries[i].ID, entries[j].ID)
		case sortByScanner:
			return countLess(entries[i].Scanner, entries[j].Scanner, entries[i].ID, entries[j].ID)
		default:
			return false
		}
	})
}

func countLess(a, b *int, aID, bID string) bool {
	av, bv := -1, -1
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	if av != bv {
		return av > bv
	}
	return aID < bID
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortByPopularity:
		return "popularity"
	case sortByID:
		return "plugin"
	case sortByIssues:
		return "issues"
	case sortByScanner:
		return "scanner"
	default:
		return "unknown"
	}
}
