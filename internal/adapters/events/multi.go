package events

import "fleet-cargo-service/internal/domain"

type multiSink []domain.EventSink

// Multi fans every event out to each non-nil sink, in order.
func Multi(sinks ...domain.EventSink) domain.EventSink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multiSink) Emit(e domain.Event) {
	for _, s := range m {
		s.Emit(e)
	}
}
