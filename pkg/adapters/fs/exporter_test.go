package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/unmangle/pkg/adapters/fs"
	"github.com/aretw0/unmangle/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		entry core.Entry
		want  string
	}{
		{core.Entry{Index: 0, Title: "Hi"}, "0000-hi.md"},
		{core.Entry{Index: 12, Title: "Shopping List: Week #3!"}, "0012-shopping-list-week-3.md"},
		{core.Entry{Index: 7, Title: "  Crème brûlée  "}, "0007-crème-brûlée.md"},
		{core.Entry{Index: 1, Title: "!!!"}, "0001-note.md"},
		{core.Entry{Index: 2, Title: ""}, "0002-note.md"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fs.Filename(tc.entry), tc.entry.Title)
	}
}

func TestExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "vault", "notes")
	exporter := fs.NewExporter(dir, nil)

	entries := []core.Entry{
		{Index: 0, Title: "Hi", Text: "Bye", Created: "1970-01-01 00:00:00 UTC", Updated: "1970-01-01 00:00:00 UTC"},
		{Index: 4, Title: "Groceries", Text: "milk\neggs", Tags: []string{"home"}},
	}

	paths, err := exporter.Export(context.Background(), entries)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "0000-hi.md"),
		filepath.Join(dir, "0004-groceries.md"),
	}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)

	parsed, err := fs.NewMarkdownSerializer().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", parsed.Title)
	assert.Equal(t, "milk\neggs", parsed.Text)
	assert.Equal(t, []string{"home"}, parsed.Tags)
}

func TestExporter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := fs.NewExporter(t.TempDir(), nil).Export(ctx, []core.Entry{{Title: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, paths)
}

func TestExporter_ReexportSkipsUnchangedNotes(t *testing.T) {
	dir := t.TempDir()
	exporter := fs.NewExporter(dir, nil)
	ctx := context.Background()

	entries := []core.Entry{
		{Index: 0, Title: "Same", Text: "\nstarts with a blank line", Created: "c", Updated: "u", Tags: []string{}},
		{Index: 1, Title: "Edited", Text: "old", Created: "c", Updated: "u", Tags: []string{"a", "b"}},
	}
	paths, err := exporter.Export(ctx, entries)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	for _, p := range paths {
		require.NoError(t, os.Chtimes(p, past, past))
	}

	entries[1].Text = "new"
	again, err := exporter.Export(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, paths, again)

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "unchanged note must not be rewritten")

	info, err = os.Stat(paths[1])
	require.NoError(t, err)
	assert.False(t, info.ModTime().Equal(past), "changed note must be rewritten")

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	parsed, err := fs.NewMarkdownSerializer().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "new", parsed.Text)
}

func TestExporter_OverwritesForeignFile(t *testing.T) {
	dir := t.TempDir()
	entry := core.Entry{Index: 2, Title: "Hand written", Text: "body"}
	target := filepath.Join(dir, fs.Filename(entry))
	require.NoError(t, os.WriteFile(target, []byte("not an export"), 0644))

	_, err := fs.NewExporter(dir, nil).Export(context.Background(), []core.Entry{entry})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Hand written")
}
