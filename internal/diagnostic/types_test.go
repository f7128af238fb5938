package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsAdd(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeExtraDates, "2 additional dates dropped", "ark:/1", "dates")
	d.AddWarning(CodeUnmappablePlace, "place has no usable form", "ark:/1", "places[1]")
	d.AddError(CodeMissingField, "missing required field", "ark:/1", "ark")

	require.Len(t, d.Infos, 1)
	require.Len(t, d.Warnings, 1)
	require.Len(t, d.Errors, 1)
	assert.True(t, d.HasErrors())
	assert.Equal(t, SeverityWarning, d.Warnings[0].Severity)

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[ark:/1] ark: [missing_required_field] missing required field", err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddWarning(CodeUnmappablePlace, "w", "", "")
	b.AddWarning(CodeUnmappablePlace, "w2", "", "")
	b.AddInfo(CodeNameComponents, "i", "", "")

	a.Merge(b)

	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{name: "message only", diag: Diagnostic{Message: "m"}, want: "m"},
		{name: "with code", diag: Diagnostic{Code: "c", Message: "m"}, want: "[c] m"},
		{name: "with field", diag: Diagnostic{Field: "places[0]", Message: "m"}, want: "places[0]: m"},
		{
			name: "full",
			diag: Diagnostic{Record: "r", Field: "f", Code: "c", Message: "m"},
			want: "[r] f: [c] m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
