package logsink

import (
	"errors"
	"sync"
	"time"
)

// ErrOperationNotFound is returned by the timer registry when EndOperation
// is called with an id that has no pending start, or whose start was already
// consumed by an earlier end.
var ErrOperationNotFound = errors.New("logsink: no pending start for operation")

// operationTimers maps caller-chosen operation ids to start instants.
// sync.Map gives per-key atomicity: a concurrent start/end pair on the same
// id never observes a half-consumed slot, and distinct ids do not contend
// on a shared lock.
type operationTimers struct {
	pending sync.Map // operation id (string) -> start instant (time.Time)
}

// start records now as the pending start for id, overwriting any earlier
// pending start with the same id. Overwrite is deliberate last-write-wins;
// a duplicate start is not a detected conflict. Always succeeds.
func (t *operationTimers) start(id string, now time.Time) {
	t.pending.Store(id, now)
}

// end consumes the pending start for id and returns the elapsed duration.
// Lookup and removal are a single atomic step. Returns ErrOperationNotFound
// when no start is pending; no registry state changes in that case.
func (t *operationTimers) end(id string, now time.Time) (time.Duration, error) {
	started, ok := t.pending.LoadAndDelete(id)
	if !ok {
		return 0, ErrOperationNotFound
	}
	return now.Sub(started.(time.Time)), nil
}

// pendingCount reports how many operations currently have an unconsumed start.
func (t *operationTimers) pendingCount() int {
	count := 0
	t.pending.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
