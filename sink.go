package logsink

import (
	"sync"
	"sync/atomic"
	"time"
)

// Sink is the public entry point. It owns the retention-policed buffer,
// composes the operation timer registry, serializes mutation, and exposes
// query and export operations. A single instance is constructed explicitly
// and passed by handle to every consumer; there is no package-level state.
type Sink struct {
	currentConfig atomic.Value // stores *Config

	// mu guards the buffer. Append followed by retention enforcement is one
	// critical section: reading the count and mutating based on that read
	// must not interleave between concurrent Log calls.
	mu  sync.RWMutex
	buf *buffer

	timers operationTimers
	state  State

	subMu sync.Mutex
	subs  []chan Entry
}

// NewSink creates a new Sink instance with default settings
func NewSink() *Sink {
	s := &Sink{buf: newBuffer()}
	s.currentConfig.Store(DefaultConfig())
	s.state.StartTime.Store(time.Now())
	return s
}

// ApplyConfig applies a validated configuration to the sink.
// This is the primary way applications should configure the sink.
// The new retention pair is consulted by the next append's enforcement pass;
// a tightened policy does not trigger an immediate re-eviction.
func (s *Sink) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	s.currentConfig.Store(cfg.Clone())
	return nil
}

// GetConfig returns a copy of current configuration
func (s *Sink) GetConfig() *Config {
	return s.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (s *Sink) getConfig() *Config {
	return s.currentConfig.Load().(*Config)
}

// Log records a message at the given severity. Ingestion never fails
// outward: logging must not be able to crash or error the caller.
func (s *Sink) Log(message string, severity Severity, source string) {
	s.log(message, severity, source, "", 0, false)
}

// LogWithStack records a message carrying a caller-supplied diagnostic trace.
func (s *Sink) LogWithStack(message string, severity Severity, source, callStack string) {
	s.log(message, severity, source, callStack, 0, false)
}

// LogTrace records a message with a call trace of up to depth frames
// captured from the caller.
func (s *Sink) LogTrace(depth int, message string, severity Severity, source string) {
	const skipTrace = 2 // Sink.LogTrace -> getTrace
	s.log(message, severity, source, getTrace(int64(depth), skipTrace), 0, false)
}

// StartOperation records the current instant as the start of the named
// operation. A second start with the same id overwrites the first.
func (s *Sink) StartOperation(operationID string) {
	s.timers.start(operationID, time.Now())
	s.state.TimersStarted.Add(1)
}

// EndOperation resolves the named operation's pending start and logs the
// caller's message with the computed elapsed duration. When no start is
// pending, a fixed error-severity entry is logged instead and the caller's
// message and severity are discarded.
func (s *Sink) EndOperation(operationID, message string, severity Severity, source string) {
	elapsed, err := s.timers.end(operationID, time.Now())
	if err != nil {
		s.state.TimersMissed.Add(1)
		s.internalLog("no pending start for operation '%s'\n", operationID)
		s.log(operationNotFoundMessage, SeverityError, source, "", 0, false)
		return
	}

	s.state.TimersCompleted.Add(1)
	s.log(message, severity, source, "", elapsed, true)
}

// log constructs the entry and runs the append-then-enforce critical section.
func (s *Sink) log(message string, severity Severity, source, callStack string, elapsed time.Duration, timed bool) {
	cfg := s.getConfig()

	entry := Entry{
		Message:   message,
		Severity:  severity,
		Source:    source,
		CallStack: callStack,
		Elapsed:   elapsed,
		Timed:     timed,
	}

	s.mu.Lock()
	// Timestamp assignment happens under the lock so insertion order and
	// timestamp order never diverge.
	entry.Time = time.Now()
	s.buf.append(entry)
	byCount, byAge := s.buf.enforceRetention(cfg.MaxEntries, cfg.RetentionPeriod(), entry.Time)
	s.mu.Unlock()

	s.state.TotalLogged.Add(1)
	if byCount > 0 {
		s.state.CountEvictions.Add(uint64(byCount))
	}
	if byAge > 0 {
		s.state.AgeEvictions.Add(uint64(byAge))
	}

	s.notify(entry)
}

// All returns a full ordered snapshot of the buffer contents.
func (s *Sink) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.all()
}

// FilterBySeverity returns entries matching the severity exactly,
// preserving buffer order.
func (s *Sink) FilterBySeverity(severity Severity) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.filterBySeverity(severity)
}

// FilterBySource returns entries whose source matches exactly,
// preserving buffer order.
func (s *Sink) FilterBySource(source string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.filterBySource(source)
}

// Len reports the number of currently buffered entries.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.len()
}
