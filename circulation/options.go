package circulation

import (
	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// Option defines a functional option for configuring a System.
type Option func(*System) error

// WithClock sets the clock used for loan dates, fee computation and event timestamps.
func WithClock(clock core.Clock) Option {
	return func(s *System) error {
		if clock == nil {
			return ErrNilCollaborator
		}

		s.clock = clock

		return nil
	}
}

// WithLogger sets the logger for the System.
//
// Info level: successful operations and rejected requests with their reason
// Error level: journal failures
func WithLogger(logger Logger) Option {
	return func(s *System) error {
		if logger == nil {
			return ErrNilCollaborator
		}

		s.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the System.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *System) error {
		if collector == nil {
			return ErrNilCollaborator
		}

		s.metricsCollector = collector

		return nil
	}
}

// WithJournal sets the Journal every state change and rejected loan or return is recorded into.
func WithJournal(journal Journal) Option {
	return func(s *System) error {
		if journal == nil {
			return ErrNilCollaborator
		}

		s.journal = journal

		return nil
	}
}

// WithDailyLateFee overrides core.DefaultDailyLateFee for all loans issued by the System.
func WithDailyLateFee(amount int) Option {
	return func(s *System) error {
		if amount < 0 {
			return ErrNegativeDailyLateFee
		}

		s.dailyLateFee = amount

		return nil
	}
}
