package resolver

import (
	"sort"
	"strings"

	"github.com/ppiankov/plugintriage/internal/models"
)

// RepoName derives the canonical repository name from an SCM URL: strip
// a trailing slash, strip a trailing .git suffix, take the last path
// segment. Returns "" when no repository name can be derived (empty URL
// or no path separator), which excludes the plugin from repo-keyed joins.
func RepoName(scmURL string) string {
	s := strings.TrimSuffix(scmURL, "/")
	s = strings.TrimSuffix(s, ".git")
	i := strings.LastIndex(s, "/")
	if i < 0 {
		return ""
	}
	return s[i+1:]
}

// SortedPluginIDs returns the plugin ids in ascending order. Map
// iteration order is randomized in Go, so every pass over the registry
// uses this ordering to keep runs deterministic.
func SortedPluginIDs(plugins map[string]models.PluginInfo) []string {
	ids := make([]string, 0, len(plugins))
	for id := range plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BuildRepoIndex maps repository name to the plugin ids hosted there.
// Several plugins can share one repository (monorepo), so values are
// ordered lists, appended in id order.
func BuildRepoIndex(plugins map[string]models.PluginInfo, ids []string) map[string][]string {
	index := make(map[string][]string)
	for _, id := range ids {
		repo := RepoName(plugins[id].SCM)
		if repo == "" {
			continue
		}
		index[repo] = append(index[repo], id)
	}
	return index
}
