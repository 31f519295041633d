// Package escape decodes the escaped text fragments found in notes_v2 exports.
//
// The exporting application writes note titles and bodies as JSON strings but
// escapes them with its own convention: every character is treated as a single
// byte, and \uXXXX escapes carry one byte each (so UTF-8 text appears as a run
// of escapes like \u00c2\u00a9). Decoding reverses that convention, producing
// the original UTF-8 bytes:
//
//	s, err := escape.DecodeString(`"\u00c2\u00a9 2024"`)
//	// s == "© 2024"
//
// The decoder keeps the application's quirks, including its failure modes:
// an invalid hex digit silently truncates the field, and a fragment that does
// not start with a quote loses its first character.
package escape
