package logsink

import "time"

// Builder provides a fluent API for building sink configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Sink instance with the specified configuration.
func (b *Builder) Build() (*Sink, error) {
	if b.err != nil {
		return nil, b.err
	}

	sink := NewSink()

	// ApplyConfig handles validation.
	if err := sink.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return sink, nil
}

// MaxEntries sets the count cap on the buffer.
func (b *Builder) MaxEntries(n int64) *Builder {
	b.cfg.MaxEntries = n
	return b
}

// RetentionPeriod sets the age cap on buffered entries.
func (b *Builder) RetentionPeriod(d time.Duration) *Builder {
	b.cfg.RetentionPeriodHrs = d.Hours()
	return b
}

// RetentionPeriodHrs sets the age cap in hours. Convenience.
func (b *Builder) RetentionPeriodHrs(hrs float64) *Builder {
	b.cfg.RetentionPeriodHrs = hrs
	return b
}

// TimestampFormat sets the time format used in export rows.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// SubscriberBuffer sets the channel buffer size handed to new subscribers.
func (b *Builder) SubscriberBuffer(size int64) *Builder {
	b.cfg.SubscriberBuffer = size
	return b
}

// InternalErrorsToStderr enables internal diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// sink, err := logsink.NewBuilder().
//
//	MaxEntries(500).
//	RetentionPeriod(6 * time.Hour).
//	SubscriberBuffer(128).
//	Build()
//
// if err == nil {
//
//	 sink.Log("sink initialized", logsink.SeverityInfo, "main")
//
// }
