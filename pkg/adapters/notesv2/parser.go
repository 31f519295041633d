// Package notesv2 reads notes_v2 JSON exports into core documents.
//
// Titles and texts are captured verbatim with gjson, quotes and escapes
// intact, so the escape decoder sees exactly what the exporter wrote.
package notesv2

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/aretw0/unmangle/pkg/core"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// RootKey is the top-level field holding the note list.
const RootKey = "notes_v2"

// Parser decodes the outer export document.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser. A nil logger falls back to slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse reads the whole of r and returns the document.
// Any deviation from the expected shape is reported as core.ErrMalformedDocument.
func (p *Parser) Parse(r io.Reader) (*core.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return p.ParseBytes(data)
}

// ParseBytes is Parse over an in-memory document.
func (p *Parser) ParseBytes(data []byte) (*core.Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(core.ErrMalformedDocument, "invalid json")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Wrap(core.ErrMalformedDocument, "top level is not an object")
	}

	list := root.Get(RootKey)
	if !list.Exists() {
		return nil, errors.Wrapf(core.ErrMalformedDocument, "missing field %q", RootKey)
	}
	if !list.IsArray() {
		return nil, errors.Wrapf(core.ErrMalformedDocument, "field %q is not an array", RootKey)
	}

	items := list.Array()
	doc := &core.Document{Notes: make([]core.Note, 0, len(items))}
	for i, item := range items {
		note, err := parseNote(item)
		if err != nil {
			return nil, errors.Wrapf(err, "note %d", i)
		}
		doc.Notes = append(doc.Notes, note)
	}

	p.logger.Debug("document parsed", "notes", len(doc.Notes), "bytes", len(data))
	return doc, nil
}

func parseNote(item gjson.Result) (core.Note, error) {
	var note core.Note
	if !item.IsObject() {
		return note, errors.Wrap(core.ErrMalformedDocument, "not an object")
	}

	title, err := rawField(item, "title")
	if err != nil {
		return note, err
	}
	text, err := rawField(item, "text")
	if err != nil {
		return note, err
	}
	created, err := intField(item, "created_timestamp")
	if err != nil {
		return note, err
	}
	updated, err := intField(item, "updated_timestamp")
	if err != nil {
		return note, err
	}
	tags, err := parseTags(item)
	if err != nil {
		return note, err
	}

	note.Title = title
	note.Text = text
	note.CreatedAt = created
	note.UpdatedAt = updated
	note.Tags = tags
	return note, nil
}

// rawField returns the field exactly as it appears in the source.
func rawField(item gjson.Result, key string) (core.RawFragment, error) {
	v := item.Get(key)
	if !v.Exists() {
		return "", errors.Wrapf(core.ErrMalformedDocument, "missing field %q", key)
	}
	return core.RawFragment(v.Raw), nil
}

func intField(item gjson.Result, key string) (int64, error) {
	v := item.Get(key)
	if !v.Exists() {
		return 0, errors.Wrapf(core.ErrMalformedDocument, "missing field %q", key)
	}
	if v.Type != gjson.Number {
		return 0, errors.Wrapf(core.ErrMalformedDocument, "field %q is not a number", key)
	}
	n, err := strconv.ParseInt(v.Raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(core.ErrMalformedDocument, "field %q is not a 64-bit integer: %s", key, v.Raw)
	}
	return n, nil
}

func parseTags(item gjson.Result) ([]core.Tag, error) {
	v := item.Get("tags")
	if !v.Exists() {
		return nil, errors.Wrap(core.ErrMalformedDocument, `missing field "tags"`)
	}
	if !v.IsArray() {
		return nil, errors.Wrap(core.ErrMalformedDocument, `field "tags" is not an array`)
	}

	entries := v.Array()
	tags := make([]core.Tag, 0, len(entries))
	for i, entry := range entries {
		if !entry.IsObject() {
			return nil, errors.Wrapf(core.ErrMalformedDocument, "tag %d is not an object", i)
		}
		name := entry.Get("name")
		if name.Type != gjson.String {
			return nil, errors.Wrapf(core.ErrMalformedDocument, "tag %d has no string name", i)
		}
		tags = append(tags, core.Tag{Name: name.Str})
	}
	return tags, nil
}
