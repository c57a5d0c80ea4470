package logsink

import "time"

// buffer is the ordered, retention-policed store of entries. Insertion order
// is display and export order. The buffer is owned exclusively by the Sink
// and carries no locking of its own: every call below happens under the
// sink's mutex.
type buffer struct {
	entries []Entry
}

func newBuffer() *buffer {
	return &buffer{entries: make([]Entry, 0, initialBufferCapacity)}
}

// append inserts the entry at the tail. Insertion never fails; retention is
// enforced after the fact, not as a precondition.
func (b *buffer) append(e Entry) {
	b.entries = append(b.entries, e)
}

// enforceRetention applies both eviction passes and reports how many entries
// each pass removed. Both passes run unconditionally on every call: an entry
// may be old yet within the count cap, or recent yet over it.
func (b *buffer) enforceRetention(maxEntries int64, retentionPeriod time.Duration, now time.Time) (byCount, byAge int) {
	// Count pass: strict FIFO, oldest inserted entries removed first.
	if over := int64(len(b.entries)) - maxEntries; over > 0 {
		byCount = int(over)
		b.entries = append(b.entries[:0], b.entries[over:]...)
	}

	// Age pass: removes every expired entry regardless of position.
	cutoff := now.Add(-retentionPeriod)
	kept := b.entries[:0]
	for _, e := range b.entries {
		if e.Time.Before(cutoff) {
			byAge++
			continue
		}
		kept = append(kept, e)
	}
	b.entries = kept

	return byCount, byAge
}

// filterBySeverity returns entries matching the severity exactly, in buffer order.
func (b *buffer) filterBySeverity(severity Severity) []Entry {
	var matched []Entry
	for _, e := range b.entries {
		if e.Severity == severity {
			matched = append(matched, e)
		}
	}
	return matched
}

// filterBySource returns entries whose source matches exactly, in buffer order.
func (b *buffer) filterBySource(source string) []Entry {
	var matched []Entry
	for _, e := range b.entries {
		if e.Source == source {
			matched = append(matched, e)
		}
	}
	return matched
}

// all returns a full ordered copy of the buffer contents.
func (b *buffer) all() []Entry {
	snapshot := make([]Entry, len(b.entries))
	copy(snapshot, b.entries)
	return snapshot
}

func (b *buffer) len() int {
	return len(b.entries)
}
