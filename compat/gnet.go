package compat

import (
	"fmt"
	"os"

	"github.com/lixenwraith/logsink"
)

// GnetAdapter wraps logsink.Sink to implement gnet logging.Logger interface
type GnetAdapter struct {
	sink         *logsink.Sink
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(sink *logsink.Sink, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		sink: sink,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs with printf-style formatting. gnet's debug output maps to
// info severity: the sink's severity set has no debug member.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.sink.Log(fmt.Sprintf(format, args...), logsink.SeverityInfo, "gnet")
}

// Infof logs at info severity with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.sink.Log(fmt.Sprintf(format, args...), logsink.SeverityInfo, "gnet")
}

// Warnf logs at warning severity with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.sink.Log(fmt.Sprintf(format, args...), logsink.SeverityWarning, "gnet")
}

// Errorf logs at error severity with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.sink.Log(fmt.Sprintf(format, args...), logsink.SeverityError, "gnet")
}

// Fatalf logs at exception severity and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.sink.Log(msg, logsink.SeverityException, "gnet")

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
