package memengine

import (
	"math"
	"time"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgOperationCanceled   = "operation canceled"
	logAttrError              = "error"
	logAttrOperation          = "operation"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"

	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess = "success"
	statusError   = "error"
)

func (es *EventStore) logInfo(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

func (es *EventStore) logWarn(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Warn(msg, args...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (es *EventStore) recordDuration(metric string, duration time.Duration, operation, status string) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordDuration(metric, duration, map[string]string{
			logAttrOperation: operation,
			"status":         status,
		})
	}
}

func (es *EventStore) recordEventCount(metric string, count int, operation string) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordValue(metric, float64(count), map[string]string{
			logAttrOperation: operation,
		})
	}
}

func (es *EventStore) recordConcurrencyConflict() {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(metricConcurrencyConflicts, map[string]string{
			logAttrOperation: operationAppend,
			"conflict_type":  "concurrency",
		})
	}
}
