package core

import (
	"time"
)

// BookCopyReturnedByPersonEventType is the event type identifier.
const BookCopyReturnedByPersonEventType = "BookCopyReturnedByPerson"

// BookCopyReturnedByPerson represents when a person returned a lent copy.
type BookCopyReturnedByPerson struct {
	ISBN       ISBNString
	PersonID   PersonIDString
	DaysLate   int
	LateFee    int
	OccurredAt OccurredAtTS
}

// BuildBookCopyReturnedByPerson creates a new BookCopyReturnedByPerson event.
func BuildBookCopyReturnedByPerson(
	isbn ISBNString,
	personID PersonIDString,
	daysLate int,
	lateFee int,
	occurredAt time.Time,
) BookCopyReturnedByPerson {

	return BookCopyReturnedByPerson{
		ISBN:       isbn,
		PersonID:   personID,
		DaysLate:   max(daysLate, 0),
		LateFee:    lateFee,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// EventType returns the event type identifier.
func (e BookCopyReturnedByPerson) EventType() string {
	return BookCopyReturnedByPersonEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookCopyReturnedByPerson) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookCopyReturnedByPerson) IsErrorEvent() bool {
	return false
}
