package logsink

import "time"

// Entry is one immutable log record. Entries are plain values: the sink
// hands out copies from queries, exports, and subscriptions, so a received
// Entry can never mutate the buffer's contents.
//
// Elapsed is meaningful only when Timed is true. Untimed entries carry a
// zero Elapsed that is never displayed; the export writes an empty column
// for them.
type Entry struct {
	Time      time.Time
	Message   string
	Severity  Severity
	Source    string
	CallStack string

	Elapsed time.Duration
	Timed   bool
}
