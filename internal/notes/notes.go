package notes

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ppiankov/plugintriage/internal/models"
)

const (
	noteDeprecated = "Deprecated"
	noteAdoption   = "Looking for maintainers"

	labelDeprecated = "deprecated"
	labelAdoption   = "adopt-this-plugin"
)

// Synthesize computes the newline-joined notes string for one plugin.
// Lines are appended in a fixed order: custom note, deprecation,
// maintainer search, unresolved security warnings, staleness. Plugins
// with nothing to report get an empty string. staleBefore is the cutoff
// a release date must stay after to avoid the unmaintained line; it is
// passed in rather than derived from the wall clock so tests can pin it.
func Synthesize(pluginID string, info models.PluginInfo, deprecations map[string]models.Deprecation, warnings []models.SecurityWarning, overrides map[string]string, staleBefore time.Time) string {
	var lines []string

	if note := overrides[pluginID]; note != "" {
		lines = append(lines, note)
	}

	if isDeprecated(pluginID, info, deprecations) {
		lines = append(lines, noteDeprecated)
	}

	if info.HasLabel(labelAdoption) {
		lines = append(lines, noteAdoption)
	}

	for _, id := range activeWarnings(pluginID, info.Version, warnings) {
		lines = append(lines, "Unresolved "+id)
	}

	if status := unmaintainedStatus(info.ReleaseTimestamp, staleBefore); status != "" {
		lines = append(lines, status)
	}

	return strings.Join(lines, "\n")
}

// isDeprecated checks both the deprecations map and the plugin labels.
// Either source alone marks the plugin deprecated; both together still
// produce a single line.
func isDeprecated(pluginID string, info models.PluginInfo, deprecations map[string]models.Deprecation) bool {
	if info.HasLabel(labelDeprecated) {
		return true
	}
	_, ok := deprecations[pluginID]
	return ok
}

// activeWarnings returns the ids of security warnings whose version
// pattern matches the plugin's current version in full, deduplicated in
// first-encountered order. Invalid patterns are skipped, not fatal.
func activeWarnings(pluginID, version string, warnings []models.SecurityWarning) []string {
	var ids []string
	seen := make(map[string]bool)

	for _, w := range warnings {
		if w.Name != pluginID {
			continue
		}
		for _, v := range w.Versions {
			if v.Pattern == "" {
				continue
			}
			re, err := regexp.Compile(`\A(?:` + v.Pattern + `)\z`)
			if err != nil {
				continue
			}
			if !re.MatchString(version) {
				continue
			}
			id := w.ID
			if id == "" {
				id = "UNKNOWN"
			}
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids
}

// unmaintainedStatus derives the staleness line, or "" when the plugin
// released recently enough. Timestamps arrive as ISO-8601 strings or
// Unix-milliseconds numbers; a missing or empty value means the release
// predates timestamp tracking entirely.
func unmaintainedStatus(releaseTimestamp interface{}, staleBefore time.Time) string {
	if releaseTimestamp == nil {
		return "Unmaintained (no release date)"
	}

	var released time.Time
	switch v := releaseTimestamp.(type) {
	case string:
		if v == "" {
			return "Unmaintained (no release date)"
		}
		t, err := parseReleaseDate(v)
		if err != nil {
			return "Unmaintained (invalid release date)"
		}
		released = t
	case float64:
		if v == 0 {
			return "Unmaintained (no release date)"
		}
		released = time.UnixMilli(int64(v)).UTC()
	case int:
		if v == 0 {
			return "Unmaintained (no release date)"
		}
		released = time.UnixMilli(int64(v)).UTC()
	case int64:
		if v == 0 {
			return "Unmaintained (no release date)"
		}
		released = time.UnixMilli(v).UTC()
	default:
		return "Unmaintained (invalid release date)"
	}

	if released.Before(staleBefore) {
		return fmt.Sprintf("Unmaintained (last release %s)", released.Format("2006-01"))
	}
	return ""
}

// parseReleaseDate handles ISO-8601 with or without fractional seconds.
// A trailing Z is stripped first; time.Parse accepts an optional
// fractional second even when the layout omits it.
func parseReleaseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", strings.TrimRight(s, "Z"))
}
