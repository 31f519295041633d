package core

import "github.com/pkg/errors"

// Common errors.
var (
	ErrMalformedDocument = errors.New("malformed notes document")
	ErrTimestampRange    = errors.New("timestamp out of representable range")
)
