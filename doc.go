// Package unmangle recovers readable text from notes_v2 JSON exports.
//
// The exporting application stores each note's title and body as a JSON
// string written with its own escape convention: UTF-8 text is spelled out
// one byte per character, often as \u00XX escapes. A standard JSON decoder
// turns such a field into mojibake; unmangle reads the field verbatim and
// reverses the convention instead.
//
// Features:
//
//   - **Faithful decoding**: package escape reproduces the exporter's escape
//     rules, quirks included.
//   - **Raw capture**: fields are taken from the source document untouched.
//   - **Fail-fast**: malformed input aborts the run before anything is written.
//   - **Vault export**: notes can be written as Markdown files with YAML frontmatter.
//
// Usage:
//
//	f, _ := os.Open("notes.json")
//	err := unmangle.Render(ctx, f, os.Stdout, unmangle.WithTagFilter("work/**"))
package unmangle
