package core

// RawFragment is the verbatim JSON text of a field, quotes and escapes included.
// It is never unescaped by a JSON parser; see package escape.
type RawFragment string

// Tag labels a note.
type Tag struct {
	Name string
}

// Note is one record of a notes_v2 export.
// Title and Text are still encoded; CreatedAt and UpdatedAt are Unix seconds.
type Note struct {
	Title     RawFragment
	Text      RawFragment
	CreatedAt int64
	UpdatedAt int64
	Tags      []Tag
}

// TagNames returns the names of the note's tags in order.
func (n Note) TagNames() []string {
	names := make([]string, 0, len(n.Tags))
	for _, t := range n.Tags {
		names = append(names, t.Name)
	}
	return names
}

// Document is a whole export. It is read-only once parsed.
type Document struct {
	Notes []Note
}
