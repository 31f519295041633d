// Package core holds the domain types shared by the decoder pipeline and its adapters.
package core

// Entry is a decoded note, ready to be rendered or exported.
type Entry struct {
	// Index is the position of the note in its Document.
	Index   int
	Created string
	Updated string
	Title   string
	Text    string
	Tags    []string
}
