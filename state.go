package logsink

import (
	"sync/atomic"
	"time"
)

// State encapsulates the runtime counters of a sink instance
type State struct {
	StartTime atomic.Value // stores time.Time for uptime calculation

	TotalLogged    atomic.Uint64 // Entries accepted through the log path
	CountEvictions atomic.Uint64 // Entries removed by the count pass
	AgeEvictions   atomic.Uint64 // Entries removed by the age pass

	TimersStarted   atomic.Uint64 // StartOperation calls
	TimersCompleted atomic.Uint64 // EndOperation calls that found a start
	TimersMissed    atomic.Uint64 // EndOperation calls with no pending start

	DroppedNotifications atomic.Uint64 // Subscriber sends skipped on full channels
}

// Stats is a point-in-time snapshot of sink counters
type Stats struct {
	Uptime          time.Duration
	BufferedEntries int
	PendingTimers   int

	TotalLogged    uint64
	CountEvictions uint64
	AgeEvictions   uint64

	TimersStarted   uint64
	TimersCompleted uint64
	TimersMissed    uint64

	DroppedNotifications uint64
}

// Stats returns a snapshot of the sink's counters. Counters are read
// individually; the snapshot is consistent per counter, not across them.
func (s *Sink) Stats() Stats {
	var uptime time.Duration
	if startTime, ok := s.state.StartTime.Load().(time.Time); ok && !startTime.IsZero() {
		uptime = time.Since(startTime)
	}

	return Stats{
		Uptime:          uptime,
		BufferedEntries: s.Len(),
		PendingTimers:   s.timers.pendingCount(),

		TotalLogged:    s.state.TotalLogged.Load(),
		CountEvictions: s.state.CountEvictions.Load(),
		AgeEvictions:   s.state.AgeEvictions.Load(),

		TimersStarted:   s.state.TimersStarted.Load(),
		TimersCompleted: s.state.TimersCompleted.Load(),
		TimersMissed:    s.state.TimersMissed.Load(),

		DroppedNotifications: s.state.DroppedNotifications.Load(),
	}
}
