package eac

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// SerializeOptions controls rendering.
type SerializeOptions struct {
	// Indent is the number of spaces per nesting level; 0 writes compact output.
	Indent int
}

// Spliced SNAC markup that upstream stored as escaped text comes out of the
// writer as entities; they are turned back into markup after rendering.
var angleBrackets = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// Serialize renders doc as UTF-8 XML. doc itself is not modified.
func Serialize(doc *etree.Document, opts SerializeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, doc, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteTo renders doc to w. See Serialize.
func WriteTo(w io.Writer, doc *etree.Document, opts SerializeOptions) error {
	if doc == nil || doc.Root() == nil {
		return ErrEmptyDocument
	}

	cp := doc.Copy()
	if opts.Indent > 0 {
		cp.Indent(opts.Indent)
	}

	text, err := cp.WriteToString()
	if err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}

	if _, err := io.WriteString(w, angleBrackets.Replace(text)); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}

	return nil
}
