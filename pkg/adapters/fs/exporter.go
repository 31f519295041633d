// Package fs exports decoded notes to a directory of Markdown files.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/aretw0/unmangle/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

const (
	// TempFilePrefix is the prefix of the temporary files used for atomic writes.
	TempFilePrefix = "unmangle-tmp-"

	maxSlugLen = 48
)

// Exporter writes entries into a vault directory, one file per note.
type Exporter struct {
	Path string
	// Perm is the mode of written note files.
	Perm os.FileMode

	logger     *slog.Logger
	serializer *MarkdownSerializer
}

// NewExporter creates an Exporter rooted at path. A nil logger falls back to slog.Default().
func NewExporter(path string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		Path:       path,
		Perm:       0644,
		logger:     logger,
		serializer: NewMarkdownSerializer(),
	}
}

// Export writes every entry and returns the note paths, in entry order.
// Notes whose file already holds the same content are left untouched, so
// exporting the same document twice rewrites nothing. Changed notes are
// replaced atomically.
func (e *Exporter) Export(ctx context.Context, entries []core.Entry) ([]string, error) {
	if err := e.prepare(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	written := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return paths, err
		}

		target := filepath.Join(e.Path, Filename(entry))
		changed, err := e.exportEntry(target, entry)
		if err != nil {
			return paths, errors.Wrapf(err, "note %d", entry.Index)
		}
		if changed {
			written++
		}
		paths = append(paths, target)
	}

	e.logger.Debug("vault exported", "path", e.Path, "notes", len(paths), "written", written)
	return paths, nil
}

// prepare creates the vault directory and removes temp files left behind by
// an interrupted export.
func (e *Exporter) prepare() error {
	if err := os.MkdirAll(e.Path, 0755); err != nil {
		return errors.Wrap(err, "failed to create vault directory")
	}

	stale, err := doublestar.Glob(os.DirFS(e.Path), TempFilePrefix+"*")
	if err != nil {
		return errors.Wrap(err, "failed to scan vault directory")
	}
	for _, name := range stale {
		if err := os.Remove(filepath.Join(e.Path, name)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to remove stale temp file %s", name)
		}
		e.logger.Debug("stale temp file removed", "path", name)
	}
	return nil
}

// exportEntry writes entry to target unless target already holds it.
func (e *Exporter) exportEntry(target string, entry core.Entry) (bool, error) {
	if e.upToDate(target, entry) {
		e.logger.Debug("note unchanged", "note", entry.Index, "path", target)
		return false, nil
	}

	data, err := e.serializer.Serialize(entry)
	if err != nil {
		return false, err
	}
	if err := e.writeFile(target, data); err != nil {
		return false, err
	}
	e.logger.Debug("note exported", "note", entry.Index, "path", target)
	return true, nil
}

// upToDate reports whether target is an exported note equal to entry.
// Unreadable or foreign files are treated as out of date and overwritten.
func (e *Exporter) upToDate(target string, entry core.Entry) bool {
	data, err := os.ReadFile(target)
	if err != nil {
		return false
	}
	existing, err := e.serializer.Parse(data)
	if err != nil {
		e.logger.Debug("existing file not recognized", "path", target, "error", err)
		return false
	}
	return existing.Title == entry.Title &&
		existing.Created == entry.Created &&
		existing.Updated == entry.Updated &&
		existing.Text == entry.Text &&
		slices.Equal(existing.Tags, entry.Tags)
}

// writeFile writes data to a temp file in the vault and renames it over target.
func (e *Exporter) writeFile(target string, data []byte) error {
	tmpFile, err := os.CreateTemp(e.Path, TempFilePrefix+"*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return errors.Wrap(err, "failed to write temp file")
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return errors.Wrap(err, "failed to sync temp file")
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, e.Perm); err != nil {
		return errors.Wrap(err, "failed to chmod temp file")
	}
	if err := os.Rename(tmpName, target); err != nil {
		return errors.Wrapf(err, "failed to rename temp file to %s", target)
	}
	return nil
}

// Filename names the file of an entry: its document index plus a slug of its title.
func Filename(entry core.Entry) string {
	return fmt.Sprintf("%04d-%s.md", entry.Index, slugify(entry.Title))
}

func slugify(title string) string {
	var b strings.Builder
	dash := false
	n := 0
	for _, r := range strings.ToLower(title) {
		if n >= maxSlugLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			n++
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
			n++
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "note"
	}
	return slug
}
