package core

import (
	"time"
)

// ReturningBookFromPersonFailedEventType is the event type identifier.
const ReturningBookFromPersonFailedEventType = "ReturningBookFromPersonFailed"

// ReturningBookFromPersonFailed represents when returning a copy from a person was rejected by a business rule.
type ReturningBookFromPersonFailed struct {
	ISBN        ISBNString
	PersonID    PersonIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBookFromPersonFailed creates a new ReturningBookFromPersonFailed event.
func BuildReturningBookFromPersonFailed(
	isbn ISBNString,
	personID PersonIDString,
	failureInfo string,
	occurredAt time.Time,
) ReturningBookFromPersonFailed {

	return ReturningBookFromPersonFailed{
		ISBN:        isbn,
		PersonID:    personID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e ReturningBookFromPersonFailed) EventType() string {
	return ReturningBookFromPersonFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFromPersonFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e ReturningBookFromPersonFailed) IsErrorEvent() bool {
	return true
}
