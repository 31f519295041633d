package platform

import (
	"github.com/aretw0/unmangle/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// tagFilter selects notes by tag name.
type tagFilter struct {
	pattern string
}

func newTagFilter(pattern string) (*tagFilter, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, errors.Wrapf(doublestar.ErrBadPattern, "tag filter %q", pattern)
	}
	return &tagFilter{pattern: pattern}, nil
}

func (f *tagFilter) match(note core.Note) bool {
	if f.pattern == "" {
		return true
	}
	for _, tag := range note.Tags {
		if ok, _ := doublestar.Match(f.pattern, tag.Name); ok {
			return true
		}
	}
	return false
}
