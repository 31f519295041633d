package platform

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aretw0/unmangle/pkg/core"
)

// WriteText renders entries in the plain text listing format:
//
//	[created]-[updated]
//	title
//
//	text
//
// followed by three blank lines. The whole listing is built before the
// first byte reaches w.
func WriteText(w io.Writer, entries []core.Entry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&buf, "[%s]-[%s]\n%s\n\n%s\n\n\n\n", e.Created, e.Updated, e.Title, e.Text)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
