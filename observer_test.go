package logsink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubscribeReceivesEntries verifies subscribers get copies of accepted entries
func TestSubscribeReceivesEntries(t *testing.T) {
	sink := createTestSink(t)
	ch := sink.Subscribe()

	sink.Log("observed", SeverityWarning, "ui")

	select {
	case e := <-ch:
		assert.Equal(t, "observed", e.Message)
		assert.Equal(t, SeverityWarning, e.Severity)
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

// TestSubscribeMultiple checks fan-out to independent subscribers
func TestSubscribeMultiple(t *testing.T) {
	sink := createTestSink(t)
	first := sink.Subscribe()
	second := sink.Subscribe()

	sink.Log("broadcast", SeverityInfo, "test")

	for _, ch := range []<-chan Entry{first, second} {
		select {
		case e := <-ch:
			assert.Equal(t, "broadcast", e.Message)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the entry")
		}
	}
}

// TestUnsubscribeClosesChannel verifies removal closes the channel and stops delivery
func TestUnsubscribeClosesChannel(t *testing.T) {
	sink := createTestSink(t)
	ch := sink.Subscribe()

	sink.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Safe to call again
	sink.Unsubscribe(ch)

	// Logging after unsubscribe must not panic on the closed channel
	sink.Log("after", SeverityInfo, "test")
}

// TestSlowSubscriberDropsNotifications checks a full channel never blocks Log
func TestSlowSubscriberDropsNotifications(t *testing.T) {
	sink := NewSink()
	require.NoError(t, sink.ApplyConfigString("subscriber_buffer=2"))

	// Never drained
	_ = sink.Subscribe()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			sink.Log("flood", SeverityInfo, "test")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Log blocked on a slow subscriber")
	}

	stats := sink.Stats()
	assert.Equal(t, uint64(8), stats.DroppedNotifications)
	assert.Equal(t, 10, sink.Len())
}

// TestSubscriberGetsValueCopies ensures mutating a received entry cannot
// affect the buffer
func TestSubscriberGetsValueCopies(t *testing.T) {
	sink := createTestSink(t)
	ch := sink.Subscribe()

	sink.Log("immutable", SeverityInfo, "test")

	e := <-ch
	e.Message = "mutated"

	assert.Equal(t, "immutable", sink.All()[0].Message)
}
