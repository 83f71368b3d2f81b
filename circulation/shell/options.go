package shell

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNilLogger is returned when a nil logger is provided to WithLogger.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrInvalidRecordTimeout is returned when the record timeout is not positive.
	ErrInvalidRecordTimeout = errors.New("record timeout must be positive")
)

// JournalOption defines a functional option for configuring an EventJournal.
type JournalOption func(*EventJournal) error

// WithLogger sets the logger for the EventJournal.
//
// Debug level: recorded events with message ID and duration
// Warn level: events which could not be recorded
func WithLogger(logger Logger) JournalOption {
	return func(j *EventJournal) error {
		if logger == nil {
			return ErrNilLogger
		}

		j.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the EventJournal and its retries.
func WithMetrics(collector MetricsCollector) JournalOption {
	return func(j *EventJournal) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		j.metricsCollector = collector

		return nil
	}
}

// WithCorrelationID sets the correlation ID written into the metadata of every recorded event.
func WithCorrelationID(correlationID uuid.UUID) JournalOption {
	return func(j *EventJournal) error {
		j.correlationID = correlationID

		return nil
	}
}

// WithRecordTimeout bounds how long Record may take, retries included.
func WithRecordTimeout(timeout time.Duration) JournalOption {
	return func(j *EventJournal) error {
		if timeout <= 0 {
			return ErrInvalidRecordTimeout
		}

		j.recordTimeout = timeout

		return nil
	}
}

// WithRetry configures the retries of concurrency conflicts, see RetryWithExponentialBackoff.
func WithRetry(options ...RetryOption) JournalOption {
	return func(j *EventJournal) error {
		j.retryOptions = append(j.retryOptions, options...)

		return nil
	}
}
