package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/logsink"
)

// FastHTTPAdapter wraps logsink.Sink to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	sink             *logsink.Sink
	defaultSeverity  logsink.Severity
	severityDetector func(string) (logsink.Severity, bool) // Detects severity from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(sink *logsink.Sink, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		sink:             sink,
		defaultSeverity:  logsink.SeverityInfo,
		severityDetector: DetectSeverity, // Default severity detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultSeverity sets the default severity for Printf calls
func WithDefaultSeverity(severity logsink.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultSeverity = severity
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) (logsink.Severity, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.severityDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	severity := a.defaultSeverity
	if a.severityDetector != nil {
		if detected, ok := a.severityDetector(msg); ok {
			severity = detected
		}
	}

	a.sink.Log(msg, severity, "fasthttp")
}

// DetectSeverity attempts to detect entry severity from message content.
// The second return is false when no indicator matched.
func DetectSeverity(msg string) (logsink.Severity, bool) {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") {
		return logsink.SeverityError, true
	}

	// Check for exception indicators
	if strings.Contains(msgLower, "panic") ||
		strings.Contains(msgLower, "exception") {
		return logsink.SeverityException, true
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return logsink.SeverityWarning, true
	}

	// Check for success indicators
	if strings.Contains(msgLower, "success") ||
		strings.Contains(msgLower, "completed") {
		return logsink.SeveritySuccess, true
	}

	return logsink.SeverityInfo, false
}
