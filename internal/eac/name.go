package eac

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// ExtractName returns the text of the first <part> element of doc in
// depth-first document order.
func ExtractName(doc *etree.Document) (string, error) {
	if doc == nil {
		return "", ErrNameNotFound
	}

	part := firstElement(&doc.Element, "part")
	if part == nil {
		return "", ErrNameNotFound
	}

	return part.Text(), nil
}

func firstElement(e *etree.Element, tag string) *etree.Element {
	for _, child := range e.ChildElements() {
		if child.Tag == tag {
			return child
		}

		if found := firstElement(child, tag); found != nil {
			return found
		}
	}

	return nil
}

// ReadDocument parses a finished EAC-CPF document.
func ReadDocument(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing EAC-CPF document: %w", err)
	}

	return doc, nil
}
