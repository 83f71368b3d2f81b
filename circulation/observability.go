package circulation

import (
	"errors"
	"math"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// Logger interface for operational and error logging. It is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

const (
	operationCreatePerson  = "create_person"
	operationEditPerson    = "edit_person"
	operationDeletePerson  = "delete_person"
	operationCreateBook    = "create_book"
	operationDeleteBook    = "delete_book"
	operationIssueLoan     = "issue_loan"
	operationProcessReturn = "process_return"

	statusSuccess  = "success"
	statusRejected = "rejected"
	statusInvalid  = "invalid"

	metricOperations        = "circulation_operations_total"
	metricOperationDuration = "circulation_operation_duration_seconds"
	metricLateFeeAmount     = "circulation_late_fee_amount"
	metricJournalFailures   = "circulation_journal_failures_total"

	logMsgOperationSucceeded = "circulation operation succeeded"
	logMsgOperationRejected  = "circulation operation rejected"
	logMsgOperationInvalid   = "circulation operation failed validation"
	logMsgJournalFailed      = "recording to the circulation journal failed"

	logAttrOperation  = "operation"
	logAttrStatus     = "status"
	logAttrReason     = "reason"
	logAttrError      = "error"
	logAttrISBN       = "isbn"
	logAttrPersonID   = "person_id"
	logAttrLoanDays   = "loan_days"
	logAttrDueDate    = "due_date"
	logAttrLateFee    = "late_fee"
	logAttrEventType  = "event_type"
	logAttrDurationMS = "duration_ms"
)

func (s *System) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *System) logError(msg string, err error, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

func (s *System) incrementCounter(metric string, labels map[string]string) {
	if s.metricsCollector != nil {
		s.metricsCollector.IncrementCounter(metric, labels)
	}
}

// observeSuccess logs and counts a successful operation. args are extra log attributes.
func (s *System) observeSuccess(operation string, start time.Time, args ...any) {
	duration := time.Since(start)

	s.logInfo(
		logMsgOperationSucceeded,
		append([]any{logAttrOperation, operation, logAttrDurationMS, toMilliseconds(duration)}, args...)...,
	)
	s.recordOperation(operation, statusSuccess, "", duration)
}

// observeFailure logs and counts a rejected or invalid operation and returns err unchanged.
func (s *System) observeFailure(operation string, err error, start time.Time, args ...any) error {
	duration := time.Since(start)
	status, msg := statusRejected, logMsgOperationRejected

	if errors.Is(err, core.ErrValidation) {
		status, msg = statusInvalid, logMsgOperationInvalid
	}

	reason := reasonOf(err)

	s.logInfo(msg, append([]any{logAttrOperation, operation, logAttrReason, reason}, args...)...)
	s.recordOperation(operation, status, reason, duration)

	return err
}

func (s *System) recordOperation(operation, status, reason string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	s.metricsCollector.IncrementCounter(metricOperations, map[string]string{
		logAttrOperation: operation,
		logAttrStatus:    status,
		logAttrReason:    reason,
	})

	s.metricsCollector.RecordDuration(metricOperationDuration, duration, map[string]string{
		logAttrOperation: operation,
		logAttrStatus:    status,
	})
}

func (s *System) recordLateFee(fee int) {
	if s.metricsCollector != nil {
		s.metricsCollector.RecordValue(metricLateFeeAmount, float64(fee), map[string]string{
			logAttrOperation: operationProcessReturn,
		})
	}
}

// reasonOf returns the business reason text of an OperationFailure, or the full error text otherwise.
func reasonOf(err error) string {
	var failure *OperationFailure
	if errors.As(err, &failure) {
		return failure.Reason.Error()
	}

	return err.Error()
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
