package eac

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// MarkupKind classifies the content of a text field.
type MarkupKind int

const (
	// PlainText has no recognised markup and gets wrapped in a <p>.
	PlainText MarkupKind = iota
	// ParagraphMarkup already holds <p> elements; they become the children
	// of a synthesized element.
	ParagraphMarkup
	// FullElementMarkup holds the complete element, closing tag included,
	// and is spliced in as-is.
	FullElementMarkup
)

// String returns a human-readable kind name.
func (k MarkupKind) String() string {
	switch k {
	case PlainText:
		return "plain"
	case ParagraphMarkup:
		return "paragraph"
	case FullElementMarkup:
		return "element"
	default:
		return "unknown"
	}
}

var paragraphMarker = regexp.MustCompile(`(?i)<p[\s>/]|</p>`)

// Classify decides how text destined for an <element> must be inserted.
// A closing </element> tag (any case) wins over paragraph tags.
func Classify(text, element string) MarkupKind {
	closing := "</" + strings.ToLower(element) + ">"

	switch {
	case strings.Contains(strings.ToLower(text), closing):
		return FullElementMarkup
	case paragraphMarker.MatchString(text):
		return ParagraphMarkup
	default:
		return PlainText
	}
}

// Reconcile appends an <element> holding text to parent. Plain text is
// wrapped in a single <p>; markup is parsed and spliced. The appended
// element and the classification are returned. Markup that does not parse
// yields a *MarkupError and parent is left untouched.
func Reconcile(parent *etree.Element, element, text string) (*etree.Element, MarkupKind, error) {
	kind := Classify(text, element)

	var el *etree.Element

	switch kind {
	case FullElementMarkup:
		parsed, err := parseElement(element, strings.TrimSpace(text))
		if err != nil {
			return nil, kind, err
		}

		el = parsed
	case ParagraphMarkup:
		parsed, err := parseElement(element, "<"+element+">"+text+"</"+element+">")
		if err != nil {
			return nil, kind, err
		}

		el = parsed
	default:
		el = etree.NewElement(element)
		el.CreateElement("p").SetText(text)
	}

	parent.AddChild(el)

	return el, kind, nil
}

// parseElement parses src and returns its root, which must be an <element>.
// The root is renamed to the canonical casing of element.
func parseElement(element, src string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(src); err != nil {
		return nil, &MarkupError{Element: element, Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &MarkupError{Element: element, Err: errors.New("no root element")}
	}

	if !strings.EqualFold(root.Tag, element) {
		return nil, &MarkupError{
			Element: element,
			Err:     fmt.Errorf("unexpected root <%s>", root.FullTag()),
		}
	}

	if err := checkSingleRoot(doc, root); err != nil {
		return nil, &MarkupError{Element: element, Err: err}
	}

	root.Space = ""
	root.Tag = element

	return root, nil
}

// checkSingleRoot rejects text or elements next to root. Whitespace,
// comments and processing instructions are allowed.
func checkSingleRoot(doc *etree.Document, root *etree.Element) error {
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			if t != root {
				return fmt.Errorf("second root element <%s>", t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("text outside <%s>: %q", root.FullTag(), strings.TrimSpace(t.Data))
			}
		case *etree.Comment, *etree.ProcInst:
		default:
			return fmt.Errorf("unexpected %T outside <%s>", tok, root.FullTag())
		}
	}

	return nil
}
