package platform

import (
	"log/slog"

	"github.com/aretw0/unmangle/pkg/adapters/notesv2"
)

// Service turns notes_v2 exports into decoded entries.
type Service struct {
	parser      *notesv2.Parser
	filter      *tagFilter
	logger      *slog.Logger
	concurrency int
}

// New builds a Service from functional options.
//
//	svc, err := unmangle.New(unmangle.WithTagFilter("work/**"))
func New(opts ...Option) (*Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	filter, err := newTagFilter(o.tagPattern)
	if err != nil {
		return nil, err
	}

	return &Service{
		parser:      notesv2.NewParser(logger),
		filter:      filter,
		logger:      logger,
		concurrency: o.concurrency,
	}, nil
}

// Logger returns the logger the service writes to.
func (s *Service) Logger() *slog.Logger {
	return s.logger
}
