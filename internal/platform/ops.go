package platform

import (
	"context"
	"io"

	"github.com/aretw0/unmangle/pkg/core"
	"github.com/aretw0/unmangle/pkg/escape"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Load reads a whole export from r.
func (s *Service) Load(r io.Reader) (*core.Document, error) {
	return s.parser.Parse(r)
}

// Decode decodes every note of doc that passes the tag filter.
// Notes are decoded concurrently; the result keeps document order.
// The first error cancels the remaining work and is returned alone.
func (s *Service) Decode(ctx context.Context, doc *core.Document) ([]core.Entry, error) {
	var selected []int
	for i, note := range doc.Notes {
		if s.filter.match(note) {
			selected = append(selected, i)
		}
	}
	s.logger.Debug("notes selected", "total", len(doc.Notes), "selected", len(selected))

	entries := make([]core.Entry, len(selected))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for slot, idx := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := s.DecodeNote(idx, doc.Notes[idx])
			if err != nil {
				return errors.Wrapf(err, "note %d", idx)
			}
			entries[slot] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DecodeNote converts one note. Both text fields are decoded independently.
func (s *Service) DecodeNote(index int, note core.Note) (core.Entry, error) {
	created, err := FormatTimestamp(note.CreatedAt)
	if err != nil {
		return core.Entry{}, errors.Wrap(err, "created_timestamp")
	}
	updated, err := FormatTimestamp(note.UpdatedAt)
	if err != nil {
		return core.Entry{}, errors.Wrap(err, "updated_timestamp")
	}
	title, err := s.decodeField(index, "title", note.Title)
	if err != nil {
		return core.Entry{}, err
	}
	text, err := s.decodeField(index, "text", note.Text)
	if err != nil {
		return core.Entry{}, err
	}

	return core.Entry{
		Index:   index,
		Created: created,
		Updated: updated,
		Title:   title,
		Text:    text,
		Tags:    note.TagNames(),
	}, nil
}

func (s *Service) decodeField(index int, field string, raw core.RawFragment) (string, error) {
	d := escape.NewDecoder()
	d.Write([]byte(raw))
	d.Close()
	if d.State() == escape.Error {
		s.logger.Debug("field truncated at invalid escape", "note", index, "field", field, "decoded", len(d.Bytes()))
	}
	text, err := d.Text()
	if err != nil {
		return "", errors.Wrap(err, field)
	}
	return text, nil
}

// Process loads and decodes an export.
func (s *Service) Process(ctx context.Context, r io.Reader) ([]core.Entry, error) {
	doc, err := s.Load(r)
	if err != nil {
		return nil, err
	}
	return s.Decode(ctx, doc)
}

// Render writes the text listing of the export read from r to w.
// Nothing is written unless every note decodes.
func (s *Service) Render(ctx context.Context, r io.Reader, w io.Writer) error {
	entries, err := s.Process(ctx, r)
	if err != nil {
		return err
	}
	return WriteText(w, entries)
}
