package shell

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// EventStore is what EventJournal needs from an event store engine.
// It is implemented by memengine.EventStore.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error)
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvent eventstore.StorableEvent,
		storableEvents ...eventstore.StorableEvent,
	) error
}

// Logger interface for operational and error logging. It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting retry and journal metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}
