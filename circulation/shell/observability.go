package shell

import (
	"math"
	"time"
)

const (
	operationRecord = "journal_record"

	statusSuccess = "success"
	statusError   = "error"

	metricRecordDuration    = "circulation_journal_record_duration_seconds"
	metricEventsRecorded    = "circulation_journal_events_recorded_total"
	metricRetries           = "circulation_journal_retries_total"
	metricRetryDelay        = "circulation_journal_retry_delay_seconds"
	metricMaxRetriesReached = "circulation_journal_max_retries_reached_total"

	labelAttemptNumber  = "attempt_number"
	labelErrorType      = "error_type"
	labelFinalErrorType = "final_error_type"

	logMsgEventRecorded = "journal event recorded"
	logMsgRecordFailed  = "journal event could not be recorded"

	logAttrOperation  = "operation"
	logAttrStatus     = "status"
	logAttrEventType  = "event_type"
	logAttrMessageID  = "message_id"
	logAttrError      = "error"
	logAttrDurationMS = "duration_ms"
)

func (j *EventJournal) logDebug(msg string, args ...any) {
	if j.logger != nil {
		j.logger.Debug(msg, args...)
	}
}

func (j *EventJournal) logWarn(msg string, args ...any) {
	if j.logger != nil {
		j.logger.Warn(msg, args...)
	}
}

func (j *EventJournal) recordOutcome(eventType, status string, duration time.Duration) {
	if j.metricsCollector == nil {
		return
	}

	j.metricsCollector.RecordDuration(metricRecordDuration, duration, map[string]string{
		logAttrOperation: operationRecord,
		logAttrStatus:    status,
	})

	j.metricsCollector.IncrementCounter(metricEventsRecorded, map[string]string{
		logAttrEventType: eventType,
		logAttrStatus:    status,
	})
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
