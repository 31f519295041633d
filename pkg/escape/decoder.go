package escape

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrInvalidText is returned when the decoded bytes are not valid UTF-8.
var ErrInvalidText = errors.New("decoded text is not valid utf-8")

// State is the position of a Decoder in its state machine.
type State int

const (
	// Begin is the initial state. The first character decides quoted mode and is dropped.
	Begin State = iota
	// Normal copies characters to the output.
	Normal
	// Escaping follows a backslash.
	Escaping
	// Unicode reads the four hex digits of a \u escape.
	Unicode
	// Error is reached on a non-hex digit inside a \u escape. Absorbing.
	Error
	// End is reached on the closing quote in quoted mode. Absorbing.
	End
)

func (s State) String() string {
	switch s {
	case Begin:
		return "begin"
	case Normal:
		return "normal"
	case Escaping:
		return "escaping"
	case Unicode:
		return "unicode"
	case Error:
		return "error"
	case End:
		return "end"
	}
	return "unknown"
}

// Decoder is a streaming decoder for raw escaped text fragments.
//
// It consumes one Unicode scalar value at a time and appends the decoded
// bytes to an internal buffer. Every character written to the buffer,
// whether literal or produced by a \uXXXX escape, is truncated to its low
// 8 bits. This is NOT a UTF-8 encoding: it is the exporting application's
// convention and consumers of the decoded text depend on it. Do not replace
// it with a standard JSON unescape.
type Decoder struct {
	state  State
	quoted bool
	count  int
	value  uint32
	buf    []byte

	// pending holds the leading bytes of a rune cut off by the end of a Write.
	pending []byte
}

// NewDecoder returns a Decoder in the Begin state.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Reset discards the output and returns the decoder to Begin.
func (d *Decoder) Reset() {
	d.state = Begin
	d.quoted = false
	d.count = 0
	d.value = 0
	d.buf = d.buf[:0]
	d.pending = d.pending[:0]
}

// State reports the current state.
func (d *Decoder) State() State { return d.state }

// Quoted reports whether the fragment opened with a double quote.
func (d *Decoder) Quoted() bool { return d.quoted }

// Done reports whether the decoder reached an absorbing state.
func (d *Decoder) Done() bool { return d.state == End || d.state == Error }

// Bytes returns the decoded output so far. The slice aliases the decoder's buffer.
func (d *Decoder) Bytes() []byte { return d.buf }

// Write feeds every rune of p to the decoder. It never fails.
// A rune split across writes is held back until its remaining bytes arrive,
// so the output does not depend on how the input is chunked.
func (d *Decoder) Write(p []byte) (int, error) {
	data := p
	if len(d.pending) > 0 {
		data = append(append([]byte(nil), d.pending...), p...)
		d.pending = d.pending[:0]
	}
	for i := 0; i < len(data); {
		if !utf8.FullRune(data[i:]) {
			d.pending = append(d.pending, data[i:]...)
			break
		}
		r, size := utf8.DecodeRune(data[i:])
		d.Feed(r)
		i += size
	}
	return len(p), nil
}

// Close ends the stream. Bytes still held back by Write can no longer form a
// rune and are fed as one utf8.RuneError each, as ranging over a string does.
func (d *Decoder) Close() error {
	for range d.pending {
		d.Feed(utf8.RuneError)
	}
	d.pending = d.pending[:0]
	return nil
}

// Feed advances the state machine by one character.
func (d *Decoder) Feed(c rune) {
	switch d.state {
	case Begin:
		d.quoted = c == '"'
		d.state = Normal
	case Normal:
		switch c {
		case '\\':
			d.state = Escaping
		case '"':
			// Outside quoted mode a bare quote is swallowed, not emitted.
			if d.quoted {
				d.state = End
			}
		default:
			d.emit(uint32(c))
		}
	case Escaping:
		switch c {
		case 'u':
			d.state = Unicode
			d.count = 0
			d.value = 0
			return
		case 'n':
			d.buf = append(d.buf, '\n')
		case 't':
			d.buf = append(d.buf, '\t')
		case 'r':
			d.buf = append(d.buf, '\r')
		default:
			d.emit(uint32(c))
		}
		d.state = Normal
	case Unicode:
		digit, ok := hexDigit(c)
		if !ok {
			d.state = Error
			return
		}
		d.value = d.value<<4 + digit
		d.count++
		if d.count == 4 {
			// Each code unit is truncated on its own; surrogate pairs are
			// never joined back into one scalar value.
			d.emit(d.value)
			d.state = Normal
		}
	case Error, End:
	}
}

// emit appends the low 8 bits of v. The truncation is intentional and must be
// kept: exported text is UTF-8 spelled out one byte per character.
func (d *Decoder) emit(v uint32) {
	d.buf = append(d.buf, byte(v))
}

func hexDigit(c rune) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// Decode runs a fresh Decoder over fragment and returns the raw output bytes.
func Decode(fragment string) []byte {
	d := NewDecoder()
	for _, c := range fragment {
		if d.Done() {
			break
		}
		d.Feed(c)
	}
	return d.Bytes()
}

// Text returns the decoded output as a string, failing with ErrInvalidText
// when it is not valid UTF-8.
func (d *Decoder) Text() (string, error) {
	if !utf8.Valid(d.buf) {
		return "", errors.Wrapf(ErrInvalidText, "% x", d.buf)
	}
	return string(d.buf), nil
}

// DecodeString decodes fragment and validates the result as UTF-8.
func DecodeString(fragment string) (string, error) {
	d := NewDecoder()
	d.Write([]byte(fragment))
	d.Close()
	return d.Text()
}
