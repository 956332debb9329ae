package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ppiankov/plugintriage/internal/models"
)

func intPtr(n int) *int { return &n }

func testEntries() []models.ReportEntry {
	return []models.ReportEntry{
		{
			ID: "credentials", DisplayName: "Credentials Plugin", Popularity: 900,
			SCM: "https://github.com/org/credentials-plugin",
			Notes: "Unresolved SECURITY-123",
			Issues: intPtr(2), Scanner: intPtr(0),
			IssueDetails: []models.IssueDetail{{Issue: "https://issues.example/1"}},
		},
		{
			ID: "mailer", DisplayName: "Mailer", Popularity: 500,
			SCM:   "https://github.com/org/mailer-plugin",
			Notes: "Deprecated\nUnmaintained (last release 2015-03)",
		},
		{
			ID: "scripting", DisplayName: "Scripting", Popularity: 500,
			Scanner:        intPtr(3),
			ScannerDetails: []models.ScannerDetail{{URL: "https://scanner.example/a", Type: "CSP"}},
		},
		{
			ID: "workflow", DisplayName: "Workflow", Popularity: 1200,
		},
	}
}

// --- Filter tests ---

func TestApplyFiltersNoFilter(t *testing.T) {
	entries := testEntries()
	result := applyFilters(entries, filterState{})
	if len(result) != len(entries) {
		t.Errorf("expected %d entries, got %d", len(entries), len(result))
	}
}

func TestApplyFiltersNotedOnly(t *testing.T) {
	result := applyFilters(testEntries(), filterState{NotedOnly: true})
	if len(result) != 2 {
		t.Fatalf("expected 2 noted entries, got %d", len(result))
	}
	for _, r := range result {
		if r.Notes == "" {
			t.Errorf("expected only noted entries, got %s without notes", r.ID)
		}
	}
}

func TestApplyFiltersSearchText(t *testing.T) {
	result := applyFilters(testEntries(), filterState{SearchText: "mailer"})
	if len(result) != 1 {
		t.Fatalf("expected 1 entry matching 'mailer', got %d", len(result))
	}
	if result[0].ID != "mailer" {
		t.Errorf("expected mailer, got %s", result[0].ID)
	}
}

func TestApplyFiltersSearchMatchesNotes(t *testing.T) {
	result := applyFilters(testEntries(), filterState{SearchText: "security-123"})
	if len(result) != 1 || result[0].ID != "credentials" {
		t.Errorf("expected credentials via its notes, got %v", result)
	}
}

func TestApplyFiltersCombined(t *testing.T) {
	result := applyFilters(testEntries(), filterState{NotedOnly: true, SearchText: "deprecated"})
	if len(result) != 1 || result[0].ID != "mailer" {
		t.Errorf("expected only mailer, got %v", result)
	}
}

func TestApplyFiltersNoMatch(t *testing.T) {
	result := applyFilters(testEntries(), filterState{SearchText: "nonexistent"})
	if len(result) != 0 {
		t.Errorf("expected 0 entries, got %d", len(result))
	}
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	result := applyFilters(testEntries(), filterState{SearchText: "MAILER"})
	if len(result) != 1 {
		t.Errorf("expected 1 entry matching 'MAILER' case-insensitive, got %d", len(result))
	}
}

// --- Sort tests ---

func TestSortEntriesByPopularity(t *testing.T) {
	entries := testEntries()
	sortEntries(entries, sortByPopularity)
	if entries[0].ID != "workflow" {
		t.Errorf("expected workflow first, got %s", entries[0].ID)
	}
	// mailer and scripting tie on popularity; id breaks the tie
	if entries[2].ID != "mailer" || entries[3].ID != "scripting" {
		t.Errorf("expected id tie-break mailer before scripting, got %s, %s", entries[2].ID, entries[3].ID)
	}
}

func TestSortEntriesByID(t *testing.T) {
	entries := testEntries()
	sortEntries(entries, sortByID)
	if entries[0].ID != "credentials" {
		t.Errorf("expected credentials first (alphabetical), got %s", entries[0].ID)
	}
}

func TestSortEntriesByIssues(t *testing.T) {
	entries := testEntries()
	sortEntries(entries, sortByIssues)
	if entries[0].ID != "credentials" {
		t.Errorf("expected highest issue count first, got %s", entries[0].ID)
	}
	// Absent counts sort after present ones, including zero
	last := entries[len(entries)-1]
	if last.Issues != nil {
		t.Errorf("expected absent issue counts last, got %s with %d", last.ID, *last.Issues)
	}
}

func TestSortEntriesByScanner(t *testing.T) {
	entries := testEntries()
	sortEntries(entries, sortByScanner)
	if entries[0].ID != "scripting" {
		t.Errorf("expected scripting first (3 findings), got %s", entries[0].ID)
	}
	if entries[1].ID != "credentials" {
		t.Errorf("expected present zero before absent, got %s", entries[1].ID)
	}
}

// --- Row building tests ---

func TestBuildRows(t *testing.T) {
	entries := testEntries()
	rows := buildRows(entries)
	if len(rows) != len(entries) {
		t.Fatalf("expected %d rows, got %d", len(entries), len(rows))
	}
	if rows[0][0] != "credentials" {
		t.Errorf("expected credentials, got %s", rows[0][0])
	}
	if rows[0][2] != "2" {
		t.Errorf("expected issue count 2, got %s", rows[0][2])
	}
	// Absent counts render as "-", present zeros as "0"
	if rows[0][3] != "0" {
		t.Errorf("expected scanner count 0, got %s", rows[0][3])
	}
	if rows[3][2] != "-" || rows[3][3] != "-" {
		t.Errorf("expected absent counts as '-', got %s, %s", rows[3][2], rows[3][3])
	}
	// Only the first note line appears in the table
	if rows[1][4] != "Deprecated" {
		t.Errorf("expected first note line, got %s", rows[1][4])
	}
}

func TestBuildRowsEmpty(t *testing.T) {
	rows := buildRows(nil)
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestCountLabel(t *testing.T) {
	if got := countLabel(nil); got != "-" {
		t.Errorf("countLabel(nil) = %q, want -", got)
	}
	if got := countLabel(intPtr(0)); got != "0" {
		t.Errorf("countLabel(0) = %q, want 0", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine = %q, want one", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine = %q, want single", got)
	}
}

// --- Note flag tests ---

func TestNoteFlag(t *testing.T) {
	tests := []struct {
		notes, want string
	}{
		{"Unresolved SECURITY-123", "advisory"},
		{"Deprecated\nUnresolved SECURITY-9", "advisory"},
		{"Deprecated", "deprecated"},
		{"Unmaintained (no release date)", "stale"},
		{"Kept for legacy installs", "noted"},
		{"", ""},
	}
	for _, tt := range tests {
		got := noteFlag(tt.notes)
		if got != tt.want {
			t.Errorf("noteFlag(%q) = %q, want %q", tt.notes, got, tt.want)
		}
	}
}

func TestFlagStyle(t *testing.T) {
	for _, flag := range []string{"advisory", "deprecated", "stale", "noted", ""} {
		s := flagStyle(flag)
		_ = s.Render("test")
	}
}

// --- Sort field name tests ---

func TestSortFieldName(t *testing.T) {
	tests := []struct {
		field sortField
		want  string
	}{
		{sortByPopularity, "popularity"},
		{sortByID, "plugin"},
		{sortByIssues, "issues"},
		{sortByScanner, "scanner"},
		{sortField(99), "unknown"},
	}
	for _, tt := range tests {
		got := sortFieldName(tt.field)
		if got != tt.want {
			t.Errorf("sortFieldName(%d) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

// --- Header rendering tests ---

func TestRenderHeaderContainsCounts(t *testing.T) {
	stats := models.ComputeStats(testEntries())
	output := renderHeader(stats, 80)
	if !strings.Contains(output, "Plugins: 4") {
		t.Error("expected header to contain plugin count")
	}
	if !strings.Contains(output, "Noted: 2") {
		t.Error("expected header to contain noted count")
	}
}

// --- Detail rendering tests ---

func TestRenderDetailNil(t *testing.T) {
	output := renderDetail(nil, 80)
	if !strings.Contains(output, "No plugin selected") {
		t.Error("expected 'No plugin selected' for nil entry")
	}
}

func TestRenderDetailShowsFields(t *testing.T) {
	entries := testEntries()
	output := renderDetail(&entries[0], 120)
	if !strings.Contains(output, "Credentials Plugin") {
		t.Error("expected display name in detail")
	}
	if !strings.Contains(output, "github.com/org/credentials-plugin") {
		t.Error("expected scm in detail")
	}
	if !strings.Contains(output, "ADVISORY") {
		t.Error("expected advisory flag in detail")
	}
	if !strings.Contains(output, "issues.example/1") {
		t.Error("expected issue finding in detail")
	}
}

func TestRenderDetailJoinsNoteLines(t *testing.T) {
	entries := testEntries()
	output := renderDetail(&entries[1], 120)
	if !strings.Contains(output, "Deprecated | Unmaintained") {
		t.Error("expected note lines joined with ' | '")
	}
}

func TestRenderDetailFallsBackToID(t *testing.T) {
	entry := &models.ReportEntry{ID: "no-title"}
	output := renderDetail(entry, 80)
	if !strings.Contains(output, "no-title") {
		t.Error("expected id when display name is empty")
	}
}

// --- Model state tests ---

func TestModelInit(t *testing.T) {
	m := New(testEntries())
	cmd := m.Init()
	if cmd != nil {
		t.Error("Init should return nil cmd")
	}
}

func TestModelInitialSort(t *testing.T) {
	m := New(testEntries())
	if len(m.filteredEntries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(m.filteredEntries))
	}
	if m.filteredEntries[0].ID != "workflow" {
		t.Errorf("expected most popular first after initial sort, got %s", m.filteredEntries[0].ID)
	}
}

func TestModelWindowResize(t *testing.T) {
	m := New(testEntries())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)
	if model.width != 120 {
		t.Errorf("expected width 120, got %d", model.width)
	}
	if model.height != 40 {
		t.Errorf("expected height 40, got %d", model.height)
	}
}

func TestModelWindowResizeSmall(t *testing.T) {
	m := New(testEntries())
	// Very small terminal — table height clamps instead of going negative
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	model := updated.(Model)
	if model.width != 40 {
		t.Errorf("expected width 40, got %d", model.width)
	}
}

func TestModelQuit(t *testing.T) {
	m := New(testEntries())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command, got nil")
	}
}

func TestModelEnterSearch(t *testing.T) {
	m := New(testEntries())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model := updated.(Model)
	if model.mode != modeSearch {
		t.Errorf("expected modeSearch, got %d", model.mode)
	}
}

func TestModelSearchEnter(t *testing.T) {
	m := New(testEntries())
	m.mode = modeSearch
	m.searchInput.SetValue("mailer")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(Model)
	if model.mode != modeNormal {
		t.Errorf("expected modeNormal after enter, got %d", model.mode)
	}
	if model.filters.SearchText != "mailer" {
		t.Errorf("expected search text 'mailer', got %q", model.filters.SearchText)
	}
	if len(model.filteredEntries) != 1 {
		t.Errorf("expected 1 filtered entry, got %d", len(model.filteredEntries))
	}
}

func TestModelSearchEscape(t *testing.T) {
	m := New(testEntries())
	m.mode = modeSearch

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	if model.mode != modeNormal {
		t.Errorf("expected modeNormal after esc in search, got %d", model.mode)
	}
}

func TestModelNotedToggle(t *testing.T) {
	m := New(testEntries())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	model := updated.(Model)
	if !model.filters.NotedOnly {
		t.Fatal("expected noted-only filter enabled")
	}
	if len(model.filteredEntries) != 2 {
		t.Errorf("expected 2 noted entries, got %d", len(model.filteredEntries))
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	model = updated.(Model)
	if model.filters.NotedOnly {
		t.Error("expected noted-only filter disabled after second press")
	}
	if len(model.filteredEntries) != 4 {
		t.Errorf("expected all 4 entries after toggle off, got %d", len(model.filteredEntries))
	}
}

func TestModelCycleSort(t *testing.T) {
	m := New(testEntries())
	if m.sortBy != sortByPopularity {
		t.Fatalf("expected initial sort by popularity")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := updated.(Model)
	if model.sortBy != sortByID {
		t.Errorf("expected sort by id after one cycle, got %d", model.sortBy)
	}
	if !strings.Contains(model.statusMsg, "plugin") {
		t.Errorf("expected status to mention sort field, got %q", model.statusMsg)
	}
	if model.filteredEntries[0].ID != "credentials" {
		t.Errorf("expected re-sorted entries, got %s first", model.filteredEntries[0].ID)
	}
}

func TestModelSortCycleWrapsAround(t *testing.T) {
	m := New(testEntries())
	var model Model = m
	for i := 0; i < sortFieldCount; i++ {
		updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
		model = updated.(Model)
	}
	if model.sortBy != sortByPopularity {
		t.Errorf("expected sort to wrap back to popularity, got %d", model.sortBy)
	}
}

func TestModelClearFilter(t *testing.T) {
	m := New(testEntries())
	m.filters = filterState{NotedOnly: true}
	m.statusMsg = "Filter: noted only"
	m.rebuildTable()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	if model.filters.NotedOnly {
		t.Error("expected noted filter cleared")
	}
	if model.statusMsg != "" {
		t.Errorf("expected status cleared, got %q", model.statusMsg)
	}
	if len(model.filteredEntries) != 4 {
		t.Errorf("expected all 4 entries after clear, got %d", len(model.filteredEntries))
	}
}

func TestModelCopySelected(t *testing.T) {
	m := New(testEntries())

	m.copySelectedEntry()
	if m.statusMsg != "Copied!" {
		t.Fatalf("expected Copied!, got %q", m.statusMsg)
	}
	// Most popular entry is selected at cursor 0 after initial sort
	if !strings.Contains(m.clipboard, "workflow") {
		t.Errorf("expected clipboard to contain selected id, got %q", m.clipboard)
	}
	if !strings.Contains(m.clipboard, "popularity=1200") {
		t.Errorf("expected clipboard to contain popularity, got %q", m.clipboard)
	}
}

func TestModelCopyNoSelection(t *testing.T) {
	m := New(testEntries())
	m.filteredEntries = nil
	m.table.SetRows(nil)

	m.copySelectedEntry()
	if m.statusMsg != "Nothing to copy" {
		t.Errorf("expected 'Nothing to copy', got %q", m.statusMsg)
	}
}

func TestModelView(t *testing.T) {
	m := New(testEntries())
	m.width = 100
	m.height = 30
	output := m.View()

	if !strings.Contains(output, "plugintriage") {
		t.Error("expected plugintriage in view")
	}
	if !strings.Contains(output, "q:quit") {
		t.Error("expected keybinds in footer")
	}
	if !strings.Contains(output, "4/4 plugins") {
		t.Error("expected 4/4 plugins in footer")
	}
}

func TestModelViewSearchMode(t *testing.T) {
	m := New(testEntries())
	m.mode = modeSearch
	output := m.View()
	if !strings.Contains(output, "/") {
		t.Error("expected search prompt in view when in search mode")
	}
}

func TestModelDoesNotMutateOriginal(t *testing.T) {
	entries := testEntries()
	originalFirst := entries[0].ID
	m := New(entries)

	m.filters = filterState{NotedOnly: true}
	m.rebuildTable()

	if len(m.allEntries) != len(entries) {
		t.Errorf("allEntries mutated: expected %d, got %d", len(entries), len(m.allEntries))
	}
	if entries[0].ID != originalFirst {
		t.Errorf("caller slice reordered: expected %s first, got %s", originalFirst, entries[0].ID)
	}
}
