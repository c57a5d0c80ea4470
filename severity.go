package logsink

import (
	"fmt"
	"strings"
)

// Severity classifies an entry. The set is closed: callers pick one of the
// five members, and filtering matches members exactly with no ordering or
// threshold semantics between them.
type Severity int64

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityException
	SeveritySuccess
)

// String returns the display form used in export rows.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityException:
		return "Exception"
	case SeveritySuccess:
		return "Success"
	default:
		return fmt.Sprintf("Severity(%d)", int64(s))
	}
}

// ParseSeverity converts a string to a Severity. Matching is
// case-insensitive and tolerates surrounding whitespace.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "exception":
		return SeverityException, nil
	case "success":
		return SeveritySuccess, nil
	default:
		return SeverityInfo, fmtErrorf("unknown severity '%s'", s)
	}
}
