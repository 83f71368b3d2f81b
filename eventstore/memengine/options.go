package memengine

import (
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// ErrNilOption is returned when an option gets a nil logger or metrics collector.
var ErrNilOption = errors.New("option value must not be nil")

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: filter evaluation results
// Info level: event counts, durations, concurrency conflicts
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilOption
		}

		es.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
// It receives query/append durations, event counts and concurrency conflicts.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		if collector == nil {
			return ErrNilOption
		}

		es.metricsCollector = collector

		return nil
	}
}
