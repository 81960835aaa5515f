package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/mindwell/internal/errs"
	"github.com/runnerr0/mindwell/internal/journal"
)

func addEntry(t *testing.T, a *app, cmd *JournalAddCommand) journal.Entry {
	t.Helper()
	cmd.globals = &GlobalFlags{JSON: true}
	cmd.app = a
	output := captureOutput(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})
	var e journal.Entry
	require.NoError(t, json.Unmarshal([]byte(output), &e))
	return e
}

func TestJournalAdd_Defaults(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a, &JournalAddCommand{Content: "Walked by the river."})

	assert.NotEmpty(t, e.ID)
	assert.True(t, strings.HasPrefix(e.Title, "Journal Entry - "))
	assert.Equal(t, journal.DefaultMood, e.Mood)
	assert.Empty(t, e.Tags)
}

func TestJournalAdd_FromStdinWithTags(t *testing.T) {
	a := newTestApp(t)
	a.stdin = strings.NewReader("Line one\nLine two\n")
	e := addEntry(t, a, &JournalAddCommand{Title: "Evening", Mood: "happy", Tags: []string{"gratitude", " gratitude ", ""}})

	assert.Equal(t, "Line one\nLine two", e.Content)
	assert.Equal(t, "Evening", e.Title)
	assert.Equal(t, []string{"gratitude"}, e.Tags)
}

func TestJournalAdd_EmptyContent(t *testing.T) {
	a := newTestApp(t)
	cmd := &JournalAddCommand{Title: "Nothing", globals: &GlobalFlags{}, app: a}

	var verr *errs.ValidationError
	require.ErrorAs(t, cmd.Execute(nil), &verr)
	assert.Equal(t, "content", verr.Field)
}

func TestJournalEdit_ReplacesInPlace(t *testing.T) {
	a := newTestApp(t)
	first := addEntry(t, a, &JournalAddCommand{Content: "first", Tags: []string{"a", "b"}})
	second := addEntry(t, a, &JournalAddCommand{Content: "second"})

	edit := &JournalEditCommand{ID: first.ID, Content: "first, revised", Tags: []string{"c"}, RemoveTags: []string{"a"}, globals: &GlobalFlags{}, app: a}
	output := captureOutput(t, func() {
		require.NoError(t, edit.Execute(nil))
	})
	assert.Contains(t, output, "Updated")

	entries, err := a.journal().List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID, "position is kept")
	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, "first, revised", entries[1].Content)
	assert.Equal(t, first.Title, entries[1].Title)
	assert.Equal(t, []string{"b", "c"}, entries[1].Tags)
}

func TestJournalEdit_UnknownID(t *testing.T) {
	a := newTestApp(t)
	cmd := &JournalEditCommand{ID: "missing", Content: "x", globals: &GlobalFlags{}, app: a}

	var nf *errs.NotFoundError
	require.ErrorAs(t, cmd.Execute(nil), &nf)
}

func TestJournalList_FilterAndLimit(t *testing.T) {
	a := newTestApp(t)
	addEntry(t, a, &JournalAddCommand{Title: "One", Content: "1", Tags: []string{"work"}})
	addEntry(t, a, &JournalAddCommand{Title: "Two", Content: "2"})
	addEntry(t, a, &JournalAddCommand{Title: "Three", Content: "3", Tags: []string{"Work"}})

	output := captureOutput(t, func() {
		require.NoError(t, (&JournalListCommand{Tag: "work", Limit: 20, globals: &GlobalFlags{}, app: a}).Execute(nil))
	})
	assert.Contains(t, output, "Journal (2 of 3)")
	assert.Contains(t, output, "Three")
	assert.Contains(t, output, "One")
	assert.NotContains(t, output, "Two")
	assert.Less(t, strings.Index(output, "Three"), strings.Index(output, "One"), "newest first")

	output = captureOutput(t, func() {
		require.NoError(t, (&JournalListCommand{Limit: 1, globals: &GlobalFlags{JSON: true}, app: a}).Execute(nil))
	})
	var entries []journal.Entry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Three", entries[0].Title)
}

func TestJournalList_Empty(t *testing.T) {
	output := captureOutput(t, func() {
		require.NoError(t, (&JournalListCommand{globals: &GlobalFlags{}, app: newTestApp(t)}).Execute(nil))
	})
	assert.Contains(t, output, "No journal entries yet")
}

func TestJournalShowAndDelete(t *testing.T) {
	a := newTestApp(t)
	e := addEntry(t, a, &JournalAddCommand{Title: "Morning", Content: "Coffee and quiet.", Mood: "peaceful", Tags: []string{"calm"}})

	output := captureOutput(t, func() {
		require.NoError(t, (&JournalShowCommand{ID: e.ID, globals: &GlobalFlags{}, app: a}).Execute(nil))
	})
	assert.Contains(t, output, "Morning")
	assert.Contains(t, output, "Coffee and quiet.")
	assert.Contains(t, output, "mood: peaceful")
	assert.Contains(t, output, "tags: calm")

	captureOutput(t, func() {
		require.NoError(t, (&JournalDeleteCommand{ID: e.ID, globals: &GlobalFlags{}, app: a}).Execute(nil))
	})

	var nf *errs.NotFoundError
	require.ErrorAs(t, (&JournalShowCommand{ID: e.ID, globals: &GlobalFlags{}, app: a}).Execute(nil), &nf)
	require.ErrorAs(t, (&JournalDeleteCommand{ID: e.ID, globals: &GlobalFlags{}, app: a}).Execute(nil), &nf)
}
