package logsink

// Observation interface: passive subscribers receive value copies of every
// entry the sink accepts. Subscribers never get a mutable handle to the
// buffer; display layers re-render from the copies.

// Subscribe registers an observer and returns a buffered read-only channel
// of accepted entries. Delivery is non-blocking: when a subscriber's channel
// is full the entry is skipped for that subscriber and the dropped
// notification counter is incremented. A slow consumer never stalls callers
// of Log.
func (s *Sink) Subscribe() <-chan Entry {
	cfg := s.getConfig()
	ch := make(chan Entry, cfg.SubscriberBuffer)

	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()

	return ch
}

// Unsubscribe removes the observer and closes its channel. Safe to call with
// a channel that was already unsubscribed.
func (s *Sink) Unsubscribe(ch <-chan Entry) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subs {
		if ch == (<-chan Entry)(sub) {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

// notify fans the entry out to all subscribers without blocking.
func (s *Sink) notify(e Entry) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, sub := range s.subs {
		select {
		case sub <- e:
		default:
			s.state.DroppedNotifications.Add(1)
		}
	}
}
