package circulation

import (
	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// Journal records the domain events of the System, e.g. as audit history.
type Journal interface {
	Record(event core.DomainEvent) error
}

// record hands event to the journal. A failing journal never undoes the recorded state change.
func (s *System) record(event core.DomainEvent) {
	if s.journal == nil {
		return
	}

	if err := s.journal.Record(event); err != nil {
		s.logError(logMsgJournalFailed, err, logAttrEventType, event.EventType())
		s.incrementCounter(metricJournalFailures, map[string]string{logAttrEventType: event.EventType()})
	}
}
