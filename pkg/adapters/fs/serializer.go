package fs

import (
	"bytes"
	"strings"

	"github.com/aretw0/unmangle/pkg/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header of an exported note.
type frontmatter struct {
	Title   string   `yaml:"title"`
	Created string   `yaml:"created"`
	Updated string   `yaml:"updated"`
	Tags    []string `yaml:"tags,omitempty"`
}

// MarkdownSerializer writes entries as Markdown with YAML frontmatter.
type MarkdownSerializer struct{}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{}
}

func (s *MarkdownSerializer) Serialize(entry core.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(frontmatter{
		Title:   entry.Title,
		Created: entry.Created,
		Updated: entry.Updated,
		Tags:    entry.Tags,
	}); err != nil {
		return nil, errors.Wrap(err, "encode frontmatter")
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(err, "encode frontmatter")
	}
	buf.WriteString("---\n")
	buf.WriteString(entry.Text)
	return buf.Bytes(), nil
}

// Parse reads back a file produced by Serialize. Index is left zero.
// The exporter uses it to detect notes that are already up to date.
func (s *MarkdownSerializer) Parse(data []byte) (*core.Entry, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return nil, errors.New("missing frontmatter")
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("\n---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(parts[0], &fm); err != nil {
		return nil, errors.Wrap(err, "failed to parse frontmatter")
	}

	text := strings.TrimPrefix(string(parts[1]), "\n")

	return &core.Entry{
		Created: fm.Created,
		Updated: fm.Updated,
		Title:   fm.Title,
		Text:    text,
		Tags:    fm.Tags,
	}, nil
}
