// Package report collects per-record conversion outcomes and exports them
// as YAML for review.
package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"snac2eac/internal/diagnostic"
)

// Status of a record conversion.
type Status string

const (
	StatusConverted Status = "converted"
	StatusFailed    Status = "failed"
)

// Report is the top-level YAML document.
type Report struct {
	Version   string   `yaml:"version"`
	Converted int      `yaml:"converted"`
	Failed    int      `yaml:"failed"`
	Records   []Record `yaml:"records"`
}

// Record is the outcome for one input.
type Record struct {
	Input       string                 `yaml:"input"`
	Record      string                 `yaml:"record,omitempty"`
	Output      string                 `yaml:"output,omitempty"`
	Status      Status                 `yaml:"status"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty"`
}

// New creates an empty report.
func New() *Report {
	return &Report{Version: "1", Records: []Record{}}
}

// AddConverted records a successful conversion.
func (r *Report) AddConverted(input, record, output string, diags diagnostic.Diagnostics) {
	r.Converted++
	r.Records = append(r.Records, Record{
		Input:       input,
		Record:      record,
		Output:      output,
		Status:      StatusConverted,
		Diagnostics: diags,
	})
}

// AddFailed records a failed conversion. The error becomes an error
// diagnostic with the given code.
func (r *Report) AddFailed(input, record, code string, err error) {
	var diags diagnostic.Diagnostics
	diags.AddError(code, err.Error(), record, "")

	r.Failed++
	r.Records = append(r.Records, Record{
		Input:       input,
		Record:      record,
		Status:      StatusFailed,
		Diagnostics: diags,
	})
}

// Marshal serializes the report to YAML.
func Marshal(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteFile writes the report to the given path.
func WriteFile(r *Report, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
