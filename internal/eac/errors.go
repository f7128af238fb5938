package eac

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is returned when a mapper is given a document without a root.
	ErrEmptyDocument = errors.New("eac: document has no root element")
	// ErrUnmappablePlace marks a place with neither a geoplace nor an original form.
	ErrUnmappablePlace = errors.New("eac: unmappable place")
	// ErrMalformedMarkup is matched by every *MarkupError.
	ErrMalformedMarkup = errors.New("eac: malformed embedded markup")
	// ErrNameNotFound is returned by ExtractName when no <part> element exists.
	ErrNameNotFound = errors.New("eac: name part not found")
)

// MarkupError reports a text field that looked like markup but did not parse.
type MarkupError struct {
	Element string
	Err     error
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("%s in <%s>: %v", ErrMalformedMarkup, e.Element, e.Err)
}

func (e *MarkupError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrMalformedMarkup) succeed.
func (e *MarkupError) Is(target error) bool {
	return target == ErrMalformedMarkup
}

// placeError carries the index of the first unmappable place.
type placeError struct {
	index int
}

func (e *placeError) Error() string {
	return fmt.Sprintf("%s at places[%d]", ErrUnmappablePlace, e.index)
}

func (e *placeError) Is(target error) bool {
	return target == ErrUnmappablePlace
}
