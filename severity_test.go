package logsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeverityString verifies display forms used in export rows
func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "Info"},
		{SeverityWarning, "Warning"},
		{SeverityError, "Error"},
		{SeverityException, "Exception"},
		{SeveritySuccess, "Success"},
		{Severity(42), "Severity(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.severity.String())
	}
}

// TestParseSeverity checks string to severity conversion including aliases and errors
func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Severity
		wantError bool
	}{
		{name: "info", input: "info", want: SeverityInfo},
		{name: "mixed case", input: "Warning", want: SeverityWarning},
		{name: "warn alias", input: "warn", want: SeverityWarning},
		{name: "error", input: "error", want: SeverityError},
		{name: "exception", input: "exception", want: SeverityException},
		{name: "success with spaces", input: "  success  ", want: SeveritySuccess},
		{name: "unknown", input: "verbose", wantError: true},
		{name: "empty", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
