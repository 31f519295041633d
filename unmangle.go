package unmangle

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/unmangle/internal/platform"
	"github.com/aretw0/unmangle/pkg/adapters/fs"
	"github.com/aretw0/unmangle/pkg/core"
	"github.com/aretw0/unmangle/pkg/escape"
)

// Version of the unmangle module.
const Version = "0.3.0"

// --- Types ---

// Service is the decode pipeline: parse, filter, decode, render.
type Service = platform.Service

// Entry is a decoded note.
type Entry = core.Entry

// --- Configuration ---

// Option defines a functional option for configuring the Service.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithConcurrency limits how many notes are decoded at the same time.
func WithConcurrency(n int) Option {
	return platform.WithConcurrency(n)
}

// WithTagFilter keeps only notes with a tag matching the doublestar pattern.
func WithTagFilter(pattern string) Option {
	return platform.WithTagFilter(pattern)
}

// --- Factory ---

// New creates a new Service.
func New(opts ...Option) (*Service, error) {
	return platform.New(opts...)
}

// --- Operations ---

// Decode decodes one raw escaped fragment and validates the result as UTF-8.
func Decode(fragment string) (string, error) {
	return escape.DecodeString(fragment)
}

// Render reads an export from r and writes the text listing to w.
func Render(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	svc, err := New(opts...)
	if err != nil {
		return err
	}
	return svc.Render(ctx, r, w)
}

// ExportVault reads an export from r and writes one Markdown file per note into dir.
// It returns the written paths in document order.
func ExportVault(ctx context.Context, r io.Reader, dir string, opts ...Option) ([]string, error) {
	svc, err := New(opts...)
	if err != nil {
		return nil, err
	}
	entries, err := svc.Process(ctx, r)
	if err != nil {
		return nil, err
	}
	return fs.NewExporter(dir, svc.Logger()).Export(ctx, entries)
}
