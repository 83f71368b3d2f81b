package core

import (
	"time"
)

// LendingBookToPersonFailedEventType is the event type identifier.
const LendingBookToPersonFailedEventType = "LendingBookToPersonFailed"

// LendingBookToPersonFailed represents when lending a copy to a person was rejected by a business rule.
type LendingBookToPersonFailed struct {
	ISBN        ISBNString
	PersonID    PersonIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingBookToPersonFailed creates a new LendingBookToPersonFailed event.
func BuildLendingBookToPersonFailed(
	isbn ISBNString,
	personID PersonIDString,
	failureInfo string,
	occurredAt time.Time,
) LendingBookToPersonFailed {

	return LendingBookToPersonFailed{
		ISBN:        isbn,
		PersonID:    personID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e LendingBookToPersonFailed) EventType() string {
	return LendingBookToPersonFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToPersonFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e LendingBookToPersonFailed) IsErrorEvent() bool {
	return true
}
