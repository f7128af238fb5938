package eac

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"snac2eac/internal/constellation"
	"snac2eac/internal/diagnostic"
)

// Result is a successful conversion.
type Result struct {
	Document    *etree.Document
	Diagnostics diagnostic.Diagnostics
}

// Converter turns constellations into EAC-CPF documents. It holds no
// per-conversion state and is safe for concurrent use.
type Converter struct {
	logger *zap.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(cv *Converter) {
		if logger != nil {
			cv.logger = logger
		}
	}
}

// NewConverter creates a Converter.
func NewConverter(opts ...Option) *Converter {
	cv := &Converter{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cv)
	}

	return cv
}

// Convert builds the EAC-CPF document for c. On error no document is
// returned.
func (cv *Converter) Convert(c *constellation.Constellation) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	record := c.RecordID()
	log := cv.logger.With(zap.String("record", record))

	doc := NewDocument()
	res := &Result{Document: doc}

	if err := MapControl(c, doc); err != nil {
		return nil, fmt.Errorf("mapping control block of %s: %w", record, err)
	}

	if err := MapDescription(c, doc, &res.Diagnostics); err != nil {
		return nil, fmt.Errorf("mapping description of %s: %w", record, err)
	}

	for _, w := range res.Diagnostics.Warnings {
		log.Warn(w.Message, zap.String("code", w.Code), zap.String("field", w.Field))
	}

	for _, i := range res.Diagnostics.Infos {
		log.Debug(i.Message, zap.String("code", i.Code), zap.String("field", i.Field))
	}

	return res, nil
}
